package stats

import (
	"net/http"
	"strconv"
	"time"

	"petcare-companion/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/stats", func(sr chi.Router) {
		sr.Get("/", listStatsHandler(svc))
	})
}

type statsResponse struct {
	ID              int64     `json:"id"`
	PetID           int64     `json:"petId"`
	Date            time.Time `json:"date"`
	Steps           int       `json:"steps"`
	ExerciseMinutes int       `json:"exerciseMinutes"`
	SleepHours      int       `json:"sleepHours"`
	Meals           int       `json:"meals"`
	CreatedAt       time.Time `json:"createdAt"`
}

// @Summary List daily stats for a pet
// @Description Optionally filtered to an exact date with the date query
// parameter (RFC3339 or YYYY-MM-DD).
// @Tags stats
// @Produce json
// @Param petID path int true "Pet ID"
// @Param date query string false "Exact date filter"
// @Success 200 {array} statsResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /pets/{petID}/stats [get]
func listStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid pet id")
			return
		}

		var date *time.Time
		if raw := r.URL.Query().Get("date"); raw != "" {
			t, err := parseDate(raw)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "Invalid date")
				return
			}
			date = &t
		}

		items, err := svc.ListByPet(r.Context(), petID, date)
		if err != nil {
			log.Error().Err(err).Int64("petId", petID).Msg("list daily stats")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch daily stats")
			return
		}

		out := make([]statsResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toStatsResponse(d))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func toStatsResponse(d DailyStats) statsResponse {
	return statsResponse{
		ID:              d.ID,
		PetID:           d.PetID,
		Date:            d.Date,
		Steps:           d.Steps,
		ExerciseMinutes: d.ExerciseMinutes,
		SleepHours:      d.SleepHours,
		Meals:           d.Meals,
		CreatedAt:       d.CreatedAt,
	}
}
