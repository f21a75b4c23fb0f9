package restapi

import (
	"net/http"

	"atlas.healthmap.org/internal/catalog"
	"atlas.healthmap.org/internal/dataset"
	"atlas.healthmap.org/internal/format"
	"atlas.healthmap.org/internal/models"
	"atlas.healthmap.org/internal/utils"
)

func (api *RestAPI) trendHandler(w http.ResponseWriter, r *http.Request) {
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

	ind, fieldErrors := indicatorFromParams(r, catalog.HDI)
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

	data := models.TrendData{
		Key:       key,
		Label:     label,
		Indicator: models.NewIndicatorRef(ind),
		Range:     state.Trend,
		Points:    trendPoints(snapshot.SeriesFor(key), ind, state.Trend),
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}

// trendPoints projects a country's year-sorted rows into chart points,
// trimmed to the requested trailing window.
func trendPoints(series []dataset.Record, ind catalog.Indicator, trend models.TrendRange) []models.TrendPoint {
	if window := trend.Window(); window > 0 && len(series) > window {
		series = series[len(series)-window:]
	}

	points := make([]models.TrendPoint, 0, len(series))
	for _, rec := range series {
		value := rec.ValuePtr(ind.Key)
		points = append(points, models.TrendPoint{
			Year:      rec.Year,
			Value:     value,
			Formatted: format.Indicator(value, ind),
		})
	}
	return points
}
