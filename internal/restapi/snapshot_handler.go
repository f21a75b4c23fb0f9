package restapi

import (
	"net/http"

	"atlas.healthmap.org/internal/dataset"
	"atlas.healthmap.org/internal/models"
	"atlas.healthmap.org/internal/narrative"
	"atlas.healthmap.org/internal/utils"
)

// snapshotHandler serves the KPI popup for one country: every indicator
// formatted and grouped into the narrative report. The path key may be a
// canonical key or a display label; the nearest-year fallback substitutes a
// neighboring year when the requested one has no row.
func (api *RestAPI) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	rawKey := utils.ExtractKeyFromParams(r)
	if err := utils.ValidateKey(rawKey); err != nil {
		fieldErrors := map[string][]string{
			"key": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snapshot := api.Manager.Snapshot()
	minYear, maxYear, _ := snapshot.YearRange()

	state, fieldErrors := models.ParseViewState(r.URL.Query(), minYear, maxYear)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	key, ok := snapshot.Resolver().ByName(rawKey)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	label, _ := snapshot.LabelFor(key)

	rec, servedYear, found := snapshot.RowNear(key, state.Year)
	if !found {
		// The country exists but has no data near the requested year; the
		// report degrades to all-sentinel entries rather than erroring.
		rec = dataset.Record{Country: label, ISO3: key, Year: state.Year}
		servedYear = state.Year
	}

	data := models.SnapshotData{
		Key:             key,
		Label:           label,
		Color:           snapshot.ColorFor(key),
		RequestedYear:   state.Year,
		Year:            servedYear,
		ApproximateYear: servedYear != state.Year,
		Report:          narrative.Build(rec, servedYear),
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
