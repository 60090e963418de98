package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func TestNewSlotID(t *testing.T) {
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	id := NewSlotID(date, types.TimeString("07:00"))
	assert.Equal(t, "2025-01-06_07:00", id)

	// Одинаковые пары (дата, метка) всегда дают одинаковый ID
	again := NewSlotID(date, types.TimeString("07:00"))
	assert.Equal(t, id, again)
}

func TestParseSlotID(t *testing.T) {
	date, label, err := ParseSlotID("2025-01-06_07:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, types.TimeString("07:00"), label)
}

func TestParseSlotID_RoundTrip(t *testing.T) {
	original := "2025-12-31_23:30"
	date, label, err := ParseSlotID(original)
	require.NoError(t, err)
	assert.Equal(t, original, NewSlotID(date, label))
}

func TestParseSlotID_Malformed(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"no separator", "2025-01-06"},
		{"bad date", "2025-13-40_07:00"},
		{"bad time", "2025-01-06_25:99"},
		{"garbage", "not-a-slot-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseSlotID(tt.id)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSlotID)
		})
	}
}

func TestDefaultSlot(t *testing.T) {
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	slot := DefaultSlot(42, date, types.TimeString("09:00"))

	assert.Equal(t, "2025-01-06_09:00", slot.ID)
	assert.Equal(t, int64(42), slot.ProfessionalID)
	assert.Equal(t, SlotBlocked, slot.Status)
	assert.Nil(t, slot.ClientName)
}

func TestSlot_Toggled(t *testing.T) {
	tests := []struct {
		status SlotStatus
		want   SlotStatus
	}{
		{SlotBlocked, SlotFree},
		{SlotFree, SlotBlocked},
		{SlotBooked, SlotBooked},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			s := &Slot{Status: tt.status}
			assert.Equal(t, tt.want, s.Toggled())
		})
	}
}

func TestSlot_CanToggle(t *testing.T) {
	assert.True(t, (&Slot{Status: SlotBlocked}).CanToggle())
	assert.True(t, (&Slot{Status: SlotFree}).CanToggle())
	assert.False(t, (&Slot{Status: SlotBooked}).CanToggle())
}

func TestSlot_IsBookable(t *testing.T) {
	assert.False(t, (&Slot{Status: SlotBlocked}).IsBookable())
	assert.True(t, (&Slot{Status: SlotFree}).IsBookable())
	assert.False(t, (&Slot{Status: SlotBooked}).IsBookable())
}

func TestSlot_ClearClientFields(t *testing.T) {
	name := "Ana Silva"
	phone := "(11) 99999-9999"
	service := "Corte Feminino"

	s := &Slot{
		Status:      SlotBooked,
		ClientName:  &name,
		ClientPhone: &phone,
		ServiceType: &service,
	}

	s.ClearClientFields()

	assert.Nil(t, s.ClientName)
	assert.Nil(t, s.ClientPhone)
	assert.Nil(t, s.ClientEmail)
	assert.Nil(t, s.ServiceType)
}
