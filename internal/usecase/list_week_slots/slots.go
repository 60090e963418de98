package list_week_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// generateWeekSlots материализует сетку слотов недели: каждая пара
// (день, временная метка) в порядке день-время. Воскресенья исключаются.
// Для слотов, сохранённых в хранилище, берётся сохранённое состояние;
// остальные получают статус по умолчанию (заблокирован).
// Функция чистая: хранилище не мутируется.
func generateWeekSlots(
	professionalID int64,
	weekStart, weekEnd time.Time,
	timeLabels []types.TimeString,
	stored []*domain.Slot,
) []*domain.Slot {
	storedByID := make(map[string]*domain.Slot, len(stored))
	for _, s := range stored {
		storedByID[s.ID] = s
	}

	days := domain.BookableDays(weekStart, weekEnd)

	slots := make([]*domain.Slot, 0, len(days)*len(timeLabels))
	for _, day := range days {
		for _, label := range timeLabels {
			id := domain.NewSlotID(day, label)
			if existing, ok := storedByID[id]; ok {
				slots = append(slots, existing)
				continue
			}
			slots = append(slots, domain.DefaultSlot(professionalID, day, label))
		}
	}

	return slots
}
