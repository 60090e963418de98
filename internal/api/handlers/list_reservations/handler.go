package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	reservationsService "github.com/m04kA/SMC-AgendaService/internal/service/reservations"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidDate           = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidStatus         = "некорректный параметр status, ожидается confirmed или cancelled"
	msgInvalidLimit          = "некорректный параметр limit"
	msgAccessDenied          = "доступ к чужим броням запрещён"
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

// Handle GET /api/v1/professionals/{professionalId}/reservations?date=&status=&upcoming=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /reservations - Invalid professional id: %v", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID != professionalID {
		h.logger.Warn("GET /reservations - Access denied: user_id=%d, professional_id=%d", userID, professionalID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.ListRequest{ProfessionalID: professionalID}

	query := r.URL.Query()
	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.ReservationStatus(raw)
		if status != domain.ReservationConfirmed && status != domain.ReservationCancelled {
			h.logger.Warn("GET /reservations - Invalid status %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		req.Status = &status
	}

	if raw := query.Get("upcoming"); raw != "" {
		req.UpcomingOnly = raw == "true" || raw == "1"
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid limit %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /reservations - Failed to list: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Returned %d reservations: professional_id=%d",
		len(result.Reservations), professionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
