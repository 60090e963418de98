package update_schedule_window

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
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidWindow         = "некорректное окно месяц/год"
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

// Handle PUT /api/v1/professionals/{professionalId}/schedule/window
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("PUT /schedule/window - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID != professionalID {
		h.logger.Warn("PUT /schedule/window - Access denied: user_id=%d, professional_id=%d",
			userID, professionalID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req UpdateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/window - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetWindow(r.Context(), professionalID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/window - Invalid window: professional_id=%d, year=%d, month=%d",
				professionalID, req.Year, req.Month)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("PUT /schedule/window - Failed to set window: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/window - Window set: professional_id=%d, year=%d, month=%d",
		professionalID, result.YearSelected, result.MonthSelected)
	handlers.RespondJSON(w, http.StatusOK, result)
}
