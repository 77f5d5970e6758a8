package v1

import (
	"net/http"

	"artmarket-backend/internal/catalog"
	"artmarket-backend/internal/delivery/http/middleware"
	"artmarket-backend/internal/domain"
	"artmarket-backend/internal/usecase"
	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/utils"
)

type ArtworkHandler struct {
	artworkUC     *usecase.ArtworkUsecase
	maxUploadSize int64
}

func NewArtworkHandler(uc *usecase.ArtworkUsecase, maxUploadSizeMB int64) *ArtworkHandler {
	return &ArtworkHandler{artworkUC: uc, maxUploadSize: maxUploadSizeMB << 20}
}

// criteriaFromQuery reads the filter engine parameters shared by the artwork
// and artist endpoints.
func criteriaFromQuery(r *http.Request) catalog.FilterCriteria {
	q := r.URL.Query()
	return catalog.ParseCriteria(q.Get("style"), q.Get("priceOrder"), q.Get("heightBand"), q.Get("widthBand"))
}

// POST /api/v1/artworks (multipart)
func (h *ArtworkHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.WriteAppError(w, r, apperr.Unauthorized("Unauthorized"))
		return
	}

	img, cleanup, err := readImageForm(w, r, h.maxUploadSize)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	defer cleanup()

	in := domain.ArtworkInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Style:       r.FormValue("style"),
		Category:    r.FormValue("category"),
		Price:       r.FormValue("price"),
		Dimension:   r.FormValue("dimension"),
		Mode:        r.FormValue("mode"),
	}

	artwork, err := h.artworkUC.CreateArtwork(r.Context(), user.ID, in, img)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      artwork.ID,
		"image":   artwork.Image,
		"artwork": artwork,
	})
}

// GET /api/v1/artworks
func (h *ArtworkHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	artworks, pagination, err := h.artworkUC.ListArtworks(r.Context(), usecase.ArtworkListParams{
		Mode:     q.Get("mode"),
		OwnerID:  q.Get("artistId"),
		Search:   q.Get("q"),
		Criteria: criteriaFromQuery(r),
		Page:     utils.ParseInt(q.Get("page"), 1),
		Limit:    utils.ParseInt(q.Get("limit"), 20),
	})
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"data":       artworks,
		"pagination": pagination,
	})
}

// GET /api/v1/artworks/{id}
func (h *ArtworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	artwork, err := h.artworkUC.GetArtwork(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artwork)
}

// PUT /api/v1/artworks/{id}
func (h *ArtworkHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.WriteAppError(w, r, apperr.Unauthorized("Unauthorized"))
		return
	}

	var patch domain.ArtworkPatch
	if err := utils.DecodeAndValidate(r, &patch); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	artwork, err := h.artworkUC.UpdateArtwork(r.Context(), user.ID, r.PathValue("id"), patch)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artwork)
}

// DELETE /api/v1/artworks/{id}
func (h *ArtworkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.WriteAppError(w, r, apperr.Unauthorized("Unauthorized"))
		return
	}
	if err := h.artworkUC.DeleteArtwork(r.Context(), user.ID, r.PathValue("id")); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/artists
func (h *ArtworkHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artworkUC.ListArtists(r.Context())
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": artists})
}

// GET /api/v1/artists/{id}
func (h *ArtworkHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := h.artworkUC.GetArtist(r.Context(), r.PathValue("id"), criteriaFromQuery(r))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artist)
}
