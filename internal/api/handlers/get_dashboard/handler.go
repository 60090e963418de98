package get_dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	reservationsService "github.com/m04kA/SMC-AgendaService/internal/service/reservations"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgAccessDenied          = "доступ к чужой сводке запрещён"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /dashboard - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID != professionalID {
		h.logger.Warn("GET /dashboard - Access denied: user_id=%d, professional_id=%d", userID, professionalID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.Dashboard(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /dashboard - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /dashboard - Failed to build summary: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard - Summary built: professional_id=%d, today=%d, total=%d, blocked=%d",
		professionalID, result.TodayCount, result.TotalCount, result.BlockedCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
