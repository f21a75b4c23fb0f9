package restapi

import (
	"net/http"

	"atlas.healthmap.org/internal/models"
)

func (api *RestAPI) yearsHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.Manager.Snapshot()
	minYear, maxYear, _ := snapshot.YearRange()

	data := struct {
		Years   []int `json:"years"`
		MinYear int   `json:"minYear"`
		MaxYear int   `json:"maxYear"`
	}{
		Years:   snapshot.Years(),
		MinYear: minYear,
		MaxYear: maxYear,
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
