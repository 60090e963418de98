package add_time_label

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
	msgDayExhausted          = "в сутки больше не помещается временная метка"
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

// Handle POST /api/v1/professionals/{professionalId}/schedule/time-labels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("POST /schedule/time-labels - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID != professionalID {
		h.logger.Warn("POST /schedule/time-labels - Access denied: user_id=%d, professional_id=%d",
			userID, professionalID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.AddTimeLabel(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrDayExhausted):
			h.logger.Warn("POST /schedule/time-labels - Day exhausted: professional_id=%d", professionalID)
			handlers.RespondError(w, http.StatusConflict, msgDayExhausted)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("POST /schedule/time-labels - Invalid input: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("POST /schedule/time-labels - Failed to add label: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/time-labels - Label added: professional_id=%d, labels=%d",
		professionalID, len(result.TimeLabels))
	handlers.RespondJSON(w, http.StatusOK, result)
}
