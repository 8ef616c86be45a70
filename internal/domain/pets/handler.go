package pets

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
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Post("/{petID}/photo", uploadPhotoHandler(svc))
	})
}

type createPetRequest struct {
	Name         *string    `json:"name" validate:"required"`
	Species      *string    `json:"species" validate:"required"`
	Breed        *string    `json:"breed" validate:"required"`
	Age          *int       `json:"age" validate:"required,gte=0"`
	Weight       *int       `json:"weight" validate:"required,gte=0"`
	PhotoURL     *string    `json:"photoUrl"`
	HealthStatus *string    `json:"healthStatus" validate:"omitempty,oneof=healthy needs_attention sick"`
	NextCheckup  *time.Time `json:"nextCheckup"`
}

type updatePetRequest struct {
	// Pointers for a real partial update: nil = leave untouched.
	Name         *string    `json:"name"`
	Species      *string    `json:"species"`
	Breed        *string    `json:"breed"`
	Age          *int       `json:"age" validate:"omitempty,gte=0"`
	Weight       *int       `json:"weight" validate:"omitempty,gte=0"`
	PhotoURL     *string    `json:"photoUrl"`
	HealthStatus *string    `json:"healthStatus" validate:"omitempty,oneof=healthy needs_attention sick"`
	NextCheckup  *time.Time `json:"nextCheckup"`
}

type petResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	Breed        string     `json:"breed"`
	Age          int        `json:"age"`
	Weight       int        `json:"weight"`
	PhotoURL     *string    `json:"photoUrl"`
	HealthStatus string     `json:"healthStatus"`
	NextCheckup  *time.Time `json:"nextCheckup"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// @Summary List pets
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("list pets")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch pets")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Get a pet
// @Tags pets
// @Produce json
// @Param petID path int true "Pet ID"
// @Success 200 {object} petResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteError(w, http.StatusNotFound, "Pet not found")
				return
			}
			log.Error().Err(err).Int64("petId", id).Msg("fetch pet")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch pet")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary Create a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Pet data"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteValidationError(w, "Invalid pet data", "invalid json payload")
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteValidationError(w, "Invalid pet data", validate.Detail(err))
			return
		}

		in := InsertPet{
			Name:        *req.Name,
			Species:     *req.Species,
			Breed:       *req.Breed,
			Age:         *req.Age,
			Weight:      *req.Weight,
			PhotoURL:    req.PhotoURL,
			NextCheckup: req.NextCheckup,
		}
		if req.HealthStatus != nil {
			in.HealthStatus = HealthStatus(*req.HealthStatus)
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteValidationError(w, "Invalid pet data", err.Error())
				return
			}
			log.Error().Err(err).Msg("create pet")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to create pet")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// @Summary Update a pet
// @Description Applies a partial update; only the supplied fields change.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "Pet ID"
// @Param payload body updatePetRequest true "Fields to update"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteValidationError(w, "Invalid pet data", "invalid json payload")
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteValidationError(w, "Invalid pet data", validate.Detail(err))
			return
		}

		in := UpdatePet{
			Name:        req.Name,
			Species:     req.Species,
			Breed:       req.Breed,
			Age:         req.Age,
			Weight:      req.Weight,
			PhotoURL:    req.PhotoURL,
			NextCheckup: req.NextCheckup,
		}
		if req.HealthStatus != nil {
			hs := HealthStatus(*req.HealthStatus)
			in.HealthStatus = &hs
		}

		p, err := svc.Update(r.Context(), id, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "Pet not found")
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteValidationError(w, "Invalid pet data", err.Error())
			default:
				log.Error().Err(err).Int64("petId", id).Msg("update pet")
				httpx.WriteError(w, http.StatusInternalServerError, "Failed to update pet")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary Delete a pet
// @Description Dependent care activities, health records and daily stats are
// not removed. Known data-integrity gap, kept for compatibility.
// @Tags pets
// @Produce json
// @Param petID path int true "Pet ID"
// @Success 200 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			log.Error().Err(err).Int64("petId", id).Msg("delete pet")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to delete pet")
			return
		}
		if !deleted {
			httpx.WriteError(w, http.StatusNotFound, "Pet not found")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Pet deleted successfully"})
	}
}

func petIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid pet id")
		return 0, false
	}
	return id, true
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:           p.ID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Age:          p.Age,
		Weight:       p.Weight,
		PhotoURL:     p.PhotoURL,
		HealthStatus: string(p.HealthStatus),
		NextCheckup:  p.NextCheckup,
		CreatedAt:    p.CreatedAt,
	}
}
