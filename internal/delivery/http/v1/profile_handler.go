package v1

import (
	"errors"
	"net/http"

	"artmarket-backend/internal/delivery/http/middleware"
	"artmarket-backend/internal/domain"
	"artmarket-backend/internal/usecase"
	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/utils"
)

type ProfileHandler struct {
	profileUC     *usecase.ProfileUsecase
	maxUploadSize int64
}

func NewProfileHandler(uc *usecase.ProfileUsecase, maxUploadSizeMB int64) *ProfileHandler {
	return &ProfileHandler{profileUC: uc, maxUploadSize: maxUploadSizeMB << 20}
}

// GET /api/v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.WriteAppError(w, r, apperr.Unauthorized("Unauthorized"))
		return
	}
	profile, err := h.profileUC.GetProfile(r.Context(), user.ID)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

// PUT /api/v1/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.WriteAppError(w, r, apperr.Unauthorized("Unauthorized"))
		return
	}

	var req domain.ProfileUpdate
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	profile, err := h.profileUC.UpdateProfile(r.Context(), user.ID, req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

// POST /api/v1/profile/avatar (multipart, field "file")
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
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

	profile, err := h.profileUC.UpdateAvatar(r.Context(), user.ID, img)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

// readImageForm parses a multipart form capped at maxSize and returns the
// "file" part.
func readImageForm(w http.ResponseWriter, r *http.Request, maxSize int64) (domain.ImageUpload, func(), error) {
	// Leave room for the other form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1<<20)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.ImageUpload{}, nil, apperr.TooLarge("File too large")
		}
		return domain.ImageUpload{}, nil, apperr.BadRequest("Invalid multipart form").WithCause(err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return domain.ImageUpload{}, nil, apperr.Validation("Validation failed", apperr.FieldError{Field: "file", Message: "is required"})
	}

	return domain.ImageUpload{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, func() {
		_ = file.Close()
		_ = r.MultipartForm.RemoveAll()
	}, nil
}
