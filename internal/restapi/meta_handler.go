package restapi

import (
	"net/http"
	"time"

	"atlas.healthmap.org/internal/catalog"
	"atlas.healthmap.org/internal/models"
)

func (api *RestAPI) metaHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.Manager.Snapshot()
	minYear, maxYear, _ := snapshot.YearRange()

	data := models.MetaData{
		MinYear:     minYear,
		MaxYear:     maxYear,
		Rows:        len(snapshot.Rows),
		Countries:   len(snapshot.Countries()),
		GeoFeatures: snapshot.GeoIndex.Len(),
		Indicators:  len(catalog.All()),
		LoadedAt:    snapshot.LoadedAt.Format(time.RFC3339),
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
