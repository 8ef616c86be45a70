package activities

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
	r.Route("/care-activities", func(ar chi.Router) {
		ar.Get("/", listActivitiesHandler(svc))
		ar.Post("/", createActivityHandler(svc))
		ar.Put("/{activityID}", updateActivityHandler(svc))
	})
}

type createActivityRequest struct {
	PetID         *int64     `json:"petId" validate:"required,gte=1"`
	Type          *string    `json:"type" validate:"required"`
	Title         *string    `json:"title" validate:"required"`
	Description   *string    `json:"description"`
	Completed     *bool      `json:"completed"`
	ScheduledDate *time.Time `json:"scheduledDate" validate:"required"`
}

type updateActivityRequest struct {
	PetID         *int64     `json:"petId" validate:"omitempty,gte=1"`
	Type          *string    `json:"type"`
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Completed     *bool      `json:"completed"`
	CompletedDate *time.Time `json:"completedDate"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

type activityResponse struct {
	ID            int64      `json:"id"`
	PetID         int64      `json:"petId"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Completed     bool       `json:"completed"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// @Summary List care activities
// @Description Lists all activities, or only those for one pet when the
// petId query parameter is present.
// @Tags care-activities
// @Produce json
// @Param petId query int false "Filter by pet ID"
// @Success 200 {array} activityResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /care-activities [get]
func listActivitiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter ListFilter
		if raw := r.URL.Query().Get("petId"); raw != "" {
			petID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "Invalid petId")
				return
			}
			filter.PetID = &petID
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			log.Error().Err(err).Msg("list care activities")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch care activities")
			return
		}

		out := make([]activityResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toActivityResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Create a care activity
// @Description completedDate is not accepted on creation; activities start
// out pending unless completed is sent as true.
// @Tags care-activities
// @Accept json
// @Produce json
// @Param payload body createActivityRequest true "Activity data"
// @Success 201 {object} activityResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /care-activities [post]
func createActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteValidationError(w, "Invalid care activity data", "invalid json payload")
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteValidationError(w, "Invalid care activity data", validate.Detail(err))
			return
		}

		in := InsertCareActivity{
			PetID:         *req.PetID,
			Type:          *req.Type,
			Title:         *req.Title,
			Description:   req.Description,
			ScheduledDate: *req.ScheduledDate,
		}
		if req.Completed != nil {
			in.Completed = *req.Completed
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteValidationError(w, "Invalid care activity data", err.Error())
				return
			}
			log.Error().Err(err).Msg("create care activity")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to create care activity")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toActivityResponse(a))
	}
}

// @Summary Update a care activity
// @Description Partial update. Setting completed to true without a
// completedDate stamps the current server time.
// @Tags care-activities
// @Accept json
// @Produce json
// @Param activityID path int true "Activity ID"
// @Param payload body updateActivityRequest true "Fields to update"
// @Success 200 {object} activityResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /care-activities/{activityID} [put]
func updateActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "activityID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid care activity id")
			return
		}

		var req updateActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteValidationError(w, "Invalid care activity data", "invalid json payload")
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteValidationError(w, "Invalid care activity data", validate.Detail(err))
			return
		}

		in := UpdateCareActivity{
			PetID:         req.PetID,
			Type:          req.Type,
			Title:         req.Title,
			Description:   req.Description,
			Completed:     req.Completed,
			CompletedDate: req.CompletedDate,
			ScheduledDate: req.ScheduledDate,
		}

		a, err := svc.Update(r.Context(), id, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "Care activity not found")
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteValidationError(w, "Invalid care activity data", err.Error())
			default:
				log.Error().Err(err).Int64("activityId", id).Msg("update care activity")
				httpx.WriteError(w, http.StatusInternalServerError, "Failed to update care activity")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toActivityResponse(a))
	}
}

func toActivityResponse(a CareActivity) activityResponse {
	return activityResponse{
		ID:            a.ID,
		PetID:         a.PetID,
		Type:          a.Type,
		Title:         a.Title,
		Description:   a.Description,
		Completed:     a.Completed,
		ScheduledDate: a.ScheduledDate,
		CompletedDate: a.CompletedDate,
		CreatedAt:     a.CreatedAt,
	}
}
