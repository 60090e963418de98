package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	scheduleService "github.com/m04kA/SMC-AgendaService/internal/service/schedule"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgAccessDenied          = "доступ к чужому расписанию запрещён"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /schedule - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID != professionalID {
		h.logger.Warn("GET /schedule - Access denied: user_id=%d, professional_id=%d", userID, professionalID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.Get(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /schedule - Failed to fetch config: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Config fetched: professional_id=%d, labels=%d",
		professionalID, len(result.TimeLabels))
	handlers.RespondJSON(w, http.StatusOK, result)
}
