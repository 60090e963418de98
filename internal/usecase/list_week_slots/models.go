package list_week_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модель запроса слотов недели
type Request struct {
	ProfessionalID int64     // ID профессионала
	WeekStart      time.Time // Любая дата внутри интересующей недели
}

// Response модель ответа со слотами недели
type Response struct {
	ProfessionalID int64          // ID профессионала
	WeekStart      time.Time      // Понедельник недели
	WeekEnd        time.Time      // Воскресенье недели
	Slots          []*domain.Slot // Слоты недели в порядке день-время
}
