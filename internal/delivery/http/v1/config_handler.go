package v1

import (
	"net/http"
	"time"

	"artmarket-backend/internal/catalog"
	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/cache"
	"artmarket-backend/pkg/utils"
)

type ConfigHandler struct {
	cache cache.CacheService
}

func NewConfigHandler(cache cache.CacheService) *ConfigHandler {
	return &ConfigHandler{cache: cache}
}

// GET /api/v1/config/enums
func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	cacheKey := "system:config:enums"
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if val, found := h.cache.Get(cacheKey); found {
		utils.WriteJSON(w, http.StatusOK, val)
		return
	}

	response := map[string]interface{}{
		"styles":       domain.Styles,
		"listingModes": domain.ListingModes,
		"priceOrders":  catalog.PriceOrders,
		"sizeBands":    catalog.Bands,
	}
	h.cache.Set(cacheKey, response, 1*time.Hour)
	utils.WriteJSON(w, http.StatusOK, response)
}
