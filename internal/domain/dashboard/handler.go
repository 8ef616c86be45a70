package dashboard

import (
	"net/http"

	"petcare-companion/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard/stats", statsHandler(svc))
}

type statsResponse struct {
	TotalPets        int `json:"totalPets"`
	HealthyPets      int `json:"healthyPets"`
	PendingTasks     int `json:"pendingTasks"`
	DailySteps       int `json:"dailySteps"`
	HealthScore      int `json:"healthScore"`
	StepGoalProgress int `json:"stepGoalProgress"`
}

// @Summary Dashboard aggregate stats
// @Tags dashboard
// @Produce json
// @Success 200 {object} statsResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /dashboard/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("dashboard stats")
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch dashboard stats")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, statsResponse{
			TotalPets:        st.TotalPets,
			HealthyPets:      st.HealthyPets,
			PendingTasks:     st.PendingTasks,
			DailySteps:       st.DailySteps,
			HealthScore:      st.HealthScore,
			StepGoalProgress: st.StepGoalProgress,
		})
	}
}
