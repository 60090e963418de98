package reserve_slot

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	ProfessionalID int64   // ID профессионала
	SlotID         string  // ID слота вида "2025-01-06_07:00"
	ClientName     string  // Имя клиента (минимум 3 символа без пробелов по краям)
	ClientPhone    string  // Телефон клиента (минимум 10 цифр)
	ClientEmail    *string // E-mail клиента (опционально)
	ServiceType    string  // Услуга из каталога
}

// Response модель ответа с созданной бронью
type Response struct {
	ReservationID  string                   // ID созданной брони
	ProfessionalID int64                    // ID профессионала
	SlotID         string                   // ID забронированного слота
	ClientName     string                   // Имя клиента
	ClientPhone    string                   // Телефон клиента (отформатированный)
	ClientEmail    *string                  // E-mail клиента
	ServiceType    string                   // Услуга
	Date           time.Time                // Дата слота
	TimeLabel      types.TimeString         // Время слота
	Status         domain.ReservationStatus // Статус брони (confirmed)
	CreatedAt      time.Time                // Время создания
}
