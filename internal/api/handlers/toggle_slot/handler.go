package toggle_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	toggleSlot "github.com/m04kA/SMC-AgendaService/internal/usecase/toggle_slot"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidSlotID         = "некорректный ID слота, ожидается YYYY-MM-DD_HH:MM"
	msgAccessDenied          = "доступ к чужому расписанию запрещён"
)

type Handler struct {
	useCase ToggleSlotUseCase
	logger  Logger
}

func NewHandler(useCase ToggleSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/professionals/{professionalId}/slots/{slotId}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("PATCH /slots/toggle - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Расписание может менять только его владелец
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID != professionalID {
		h.logger.Warn("PATCH /slots/toggle - Access denied: user_id=%d, professional_id=%d", userID, professionalID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	slotID := vars["slotId"]

	result, err := h.useCase.Execute(r.Context(), &toggleSlot.Request{
		ProfessionalID: professionalID,
		SlotID:         slotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, toggleSlot.ErrInvalidSlotID):
			h.logger.Warn("PATCH /slots/toggle - Invalid slot id: professional_id=%d, slot_id=%s",
				professionalID, slotID)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		case errors.Is(err, toggleSlot.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/toggle - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("PATCH /slots/toggle - Failed to toggle slot: professional_id=%d, slot_id=%s, error=%v",
				professionalID, slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/toggle - Slot toggled: professional_id=%d, slot_id=%s, status=%s, changed=%v",
		professionalID, slotID, result.Slot.Status, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
