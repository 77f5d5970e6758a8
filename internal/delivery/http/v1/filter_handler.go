package v1

import (
	"net/http"

	"artmarket-backend/internal/catalog"
	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/utils"
)

// maxFilterItems caps the stateless filter request.
const maxFilterItems = 5000

type filterRequest struct {
	Items    []catalog.Record       `json:"items"`
	Criteria catalog.FilterCriteria `json:"criteria"`
}

// FilterHandler runs the catalog engine over client-supplied records.
type FilterHandler struct{}

func NewFilterHandler() *FilterHandler {
	return &FilterHandler{}
}

// POST /api/v1/catalog/filter
func (h *FilterHandler) Filter(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 8<<20)

	var req filterRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	if len(req.Items) > maxFilterItems {
		utils.WriteAppError(w, r, apperr.TooLarge("Too many items"))
		return
	}

	c := catalog.ParseCriteria(req.Criteria.Style, string(req.Criteria.PriceOrder),
		string(req.Criteria.HeightBand), string(req.Criteria.WidthBand))
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": catalog.Apply(req.Items, c),
	})
}
