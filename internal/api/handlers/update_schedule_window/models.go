package update_schedule_window

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
)

// UpdateWindowRequest HTTP request model
type UpdateWindowRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateWindowRequest) ToServiceRequest() *models.SetWindowRequest {
	return &models.SetWindowRequest{
		Year:  r.Year,
		Month: time.Month(r.Month),
	}
}
