package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"petcare-companion/internal/platform/httpx"
	"petcare-companion/internal/platform/validate"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/health-records", func(hr chi.Router) {
		hr.Get("/", listRecordsHandler(svc))
	})
	r.Post("/health-records", createRecordHandler(svc))
}

type createRecordRequest struct {
	PetID        *int64     `json:"petId" validate:"required,gte=1"`
	Type         *string    `json:"type" validate:"required"`
	Title        *string    `json:"title" validate:"required"`
	Notes        *string    `json:"notes"`
	Veterinarian *string    `json:"veterinarian"`
	Date         *time.Time `json:"date" validate:"required"`
}

type recordResponse struct {
	ID           int64     `json:"id"`
	PetID        int64     `json:"petId"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Notes        *string   `json:"notes"`
	Veterinarian *string   `json:"veterinarian"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

// @Summary List health records for a pet
// @Tags health-records
// @Produce json
// @Param petID path int true "Pet ID"
// @Success 200 {array} recordResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /pets/{petID}/health-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid pet id")
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			log.Error().Err(err).Int64("petId", petID).Msg("list health records")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch health records")
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Create a health record
// @Tags health-records
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Record data"
// @Success 201 {object} recordResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /health-records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteValidationError(w, "Invalid health record data", "invalid json payload")
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteValidationError(w, "Invalid health record data", validate.Detail(err))
			return
		}

		in := InsertHealthRecord{
			PetID:        *req.PetID,
			Type:         *req.Type,
			Title:        *req.Title,
			Notes:        req.Notes,
			Veterinarian: req.Veterinarian,
			Date:         *req.Date,
		}

		rec, err := svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteValidationError(w, "Invalid health record data", err.Error())
				return
			}
			log.Error().Err(err).Msg("create health record")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to create health record")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

func toRecordResponse(rec HealthRecord) recordResponse {
	return recordResponse{
		ID:           rec.ID,
		PetID:        rec.PetID,
		Type:         rec.Type,
		Title:        rec.Title,
		Notes:        rec.Notes,
		Veterinarian: rec.Veterinarian,
		Date:         rec.Date,
		CreatedAt:    rec.CreatedAt,
	}
}
