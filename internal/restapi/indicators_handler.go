package restapi

import (
	"net/http"

	"atlas.healthmap.org/internal/catalog"
	"atlas.healthmap.org/internal/models"
)

func (api *RestAPI) indicatorsHandler(w http.ResponseWriter, r *http.Request) {
	all := catalog.All()
	refs := make([]models.IndicatorRef, 0, len(all))
	for _, ind := range all {
		refs = append(refs, models.NewIndicatorRef(ind))
	}

	api.sendResponse(w, r, models.NewOKResponse(refs))
}
