package list_week_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	listWeekSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/list_week_slots"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidWeekStart      = "некорректный параметр weekStart, ожидается YYYY-MM-DD"
	msgNoTimeLabels          = "расписание не содержит временных меток"
)

type Handler struct {
	useCase ListWeekSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListWeekSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/slots?weekStart=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /slots - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// weekStart опционален: без него отдаётся текущая неделя
	weekStart := time.Now()
	if raw := r.URL.Query().Get("weekStart"); raw != "" {
		weekStart, err = time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid weekStart %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidWeekStart)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &listWeekSlots.Request{
		ProfessionalID: professionalID,
		WeekStart:      weekStart,
	})
	if err != nil {
		switch {
		case errors.Is(err, listWeekSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		case errors.Is(err, listWeekSlots.ErrNoTimeLabels):
			h.logger.Error("GET /slots - No time labels configured: professional_id=%d", professionalID)
			handlers.RespondError(w, http.StatusConflict, msgNoTimeLabels)

		default:
			h.logger.Error("GET /slots - Failed to list slots: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Returned %d slots: professional_id=%d, week_start=%s",
		len(result.Slots), professionalID, result.WeekStart.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
