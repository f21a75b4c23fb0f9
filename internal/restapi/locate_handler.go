package restapi

import (
	"net/http"

	"atlas.healthmap.org/internal/models"
	"atlas.healthmap.org/internal/utils"
)

// locateHandler resolves a map interaction to a canonical country key.
// Accepts either a coordinate pair (lat, lon) or a clicked feature
// (feature, name). Resolution misses are a Found=false payload, never an
// error: a click on the open ocean is a normal outcome.
func (api *RestAPI) locateHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.Manager.Snapshot()
	resolver := snapshot.Resolver()
	params := r.URL.Query()

	var key string
	var found bool

	switch {
	case params.Get("lat") != "" || params.Get("lon") != "":
		fieldErrors := make(map[string][]string)
		lat, fieldErrors := utils.ParseFloatParam(params, "lat", fieldErrors)
		lon, fieldErrors := utils.ParseFloatParam(params, "lon", fieldErrors)
		if params.Get("lat") == "" {
			fieldErrors["lat"] = append(fieldErrors["lat"], "lat is required with lon")
		}
		if params.Get("lon") == "" {
			fieldErrors["lon"] = append(fieldErrors["lon"], "lon is required with lat")
		}
		if len(fieldErrors) > 0 {
			api.validationErrorResponse(w, r, fieldErrors)
			return
		}
		if coordErrors := utils.ValidateCoordinateParams(lat, lon); len(coordErrors) > 0 {
			api.validationErrorResponse(w, r, coordErrors)
			return
		}
		key, found = resolver.ByCoordinate(lat, lon)

	case params.Get("feature") != "" || params.Get("name") != "":
		key, found = resolver.ByFeature(params.Get("feature"), params.Get("name"))

	default:
		api.validationErrorResponse(w, r, map[string][]string{
			"lat": {"Either lat/lon or feature/name is required."},
		})
		return
	}

	data := models.LocateData{Found: found, Key: key}
	if found {
		if label, ok := snapshot.LabelFor(key); ok {
			data.Label = label
		}
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
