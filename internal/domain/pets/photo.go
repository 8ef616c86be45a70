package pets

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"petcare-companion/internal/platform/httpx"

	"github.com/rs/zerolog/log"
)

// maxPhotoBytes is the hard ceiling for an uploaded photo file.
const maxPhotoBytes = 5 << 20

// multipartHeadroom covers multipart framing so a file just under the limit
// still fits in the request body.
const multipartHeadroom = 64 << 10

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// @Summary Upload a pet photo
// @Description Accepts one image file (jpeg, png, gif or webp, max 5MB) in a
// multipart field named "photo" and stores it inline as a base64 data URL.
// @Tags pets
// @Accept multipart/form-data
// @Produce json
// @Param petID path int true "Pet ID"
// @Param photo formData file true "Image file"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/photo [post]
func uploadPhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		if _, err := svc.GetByID(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteError(w, http.StatusNotFound, "Pet not found")
				return
			}
			log.Error().Err(err).Int64("petId", id).Msg("fetch pet for photo upload")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to upload photo")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes+multipartHeadroom)
		if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Photo too large or invalid multipart form")
			return
		}

		file, header, err := r.FormFile("photo")
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "No photo uploaded")
			return
		}
		defer file.Close()

		mime := header.Header.Get("Content-Type")
		if !allowedPhotoTypes[mime] {
			httpx.WriteError(w, http.StatusBadRequest, "Only image files are allowed")
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Photo too large or invalid multipart form")
			return
		}
		if len(data) > maxPhotoBytes {
			httpx.WriteError(w, http.StatusBadRequest, "Photo too large or invalid multipart form")
			return
		}

		photoURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))

		p, err := svc.UpdatePhoto(r.Context(), id, photoURL)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteError(w, http.StatusNotFound, "Pet not found")
				return
			}
			log.Error().Err(err).Int64("petId", id).Msg("store pet photo")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to upload photo")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}
