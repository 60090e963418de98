package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	cancelReservation "github.com/m04kA/SMC-AgendaService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgReservationNotFound   = "бронь не найдена"
	msgAccessDenied          = "доступ к чужой брони запрещён"
	msgAlreadyCancelled      = "бронь уже отменена"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/professionals/{professionalId}/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("PATCH /reservations/cancel - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID != professionalID {
		h.logger.Warn("PATCH /reservations/cancel - Access denied: user_id=%d, professional_id=%d",
			userID, professionalID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	reservationID := vars["reservationId"]

	result, err := h.useCase.Execute(r.Context(), &cancelReservation.Request{
		ProfessionalID: professionalID,
		ReservationID:  reservationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/cancel - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/cancel - Access denied: professional_id=%d, reservation_id=%s",
				professionalID, reservationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelReservation.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /reservations/cancel - Already cancelled: reservation_id=%s", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/cancel - Invalid input: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("PATCH /reservations/cancel - Failed to cancel: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/cancel - Reservation cancelled: reservation_id=%s, slot_id=%s",
		result.Reservation.ID, result.Slot.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
