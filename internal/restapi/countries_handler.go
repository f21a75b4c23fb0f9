package restapi

import (
	"net/http"

	"atlas.healthmap.org/internal/dataset"
	"atlas.healthmap.org/internal/models"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.Manager.Snapshot()
	minYear, maxYear, _ := snapshot.YearRange()

	state, fieldErrors := models.ParseViewState(r.URL.Query(), minYear, maxYear)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	countries := snapshot.CountriesForYear(state.Year)
	if countries == nil {
		countries = []dataset.CountryRef{}
	}

	data := models.CountriesData{
		Year:      state.Year,
		Countries: countries,
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
