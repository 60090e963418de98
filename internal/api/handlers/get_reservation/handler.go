package get_reservation

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
	msgReservationNotFound   = "бронь не найдена"
	msgAccessDenied          = "доступ к чужой брони запрещён"
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

// Handle GET /api/v1/professionals/{professionalId}/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /reservations/{id} - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID != professionalID {
		h.logger.Warn("GET /reservations/{id} - Access denied: user_id=%d, professional_id=%d",
			userID, professionalID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	reservationID := vars["reservationId"]

	result, err := h.service.GetByID(r.Context(), professionalID, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("GET /reservations/{id} - Access denied: professional_id=%d, reservation_id=%s",
				professionalID, reservationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /reservations/{id} - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to fetch: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Fetched: reservation_id=%s, professional_id=%d",
		reservationID, professionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
