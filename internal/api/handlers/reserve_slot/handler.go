package reserve_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	reserveSlot "github.com/m04kA/SMC-AgendaService/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidSlotID         = "некорректный ID слота, ожидается YYYY-MM-DD_HH:MM"
	msgSlotNotFree           = "выбранный слот недоступен для записи"
	msgValidationFailed      = "данные формы не прошли проверку"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/professionals/{professionalId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("POST /reservations - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(professionalID))
	if err != nil {
		// Ошибки валидации формы отдаются по полям, чтобы клиент показал все сразу
		if fieldErrs, ok := reserveSlot.AsFieldErrors(err); ok {
			h.logger.Warn("POST /reservations - Validation failed: professional_id=%d, fields=%v",
				professionalID, fieldErrs)
			handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrs)
			return
		}

		switch {
		case errors.Is(err, reserveSlot.ErrInvalidSlotID):
			h.logger.Warn("POST /reservations - Invalid slot id: professional_id=%d, slot_id=%s",
				professionalID, req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reserveSlot.ErrSlotNotFree):
			h.logger.Warn("POST /reservations - Slot not free: professional_id=%d, slot_id=%s",
				professionalID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotFree)

		default:
			h.logger.Error("POST /reservations - Failed to reserve slot: professional_id=%d, slot_id=%s, error=%v",
				professionalID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, professional_id=%d, slot_id=%s",
		result.ReservationID, professionalID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
