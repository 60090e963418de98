package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func TestDefaultTimeLabels(t *testing.T) {
	labels := DefaultTimeLabels()

	require.Len(t, labels, 12)
	assert.Equal(t, types.TimeString("07:00"), labels[0])
	assert.Equal(t, types.TimeString("18:00"), labels[len(labels)-1])
}

func TestDefaultScheduleConfig(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	cfg := DefaultScheduleConfig(7, now)

	assert.Equal(t, int64(7), cfg.ProfessionalID)
	assert.Equal(t, 2025, cfg.YearSelected)
	assert.Equal(t, time.January, cfg.MonthSelected)
	require.NoError(t, cfg.Validate())
}

func TestScheduleConfig_Validate(t *testing.T) {
	now := time.Now()

	t.Run("empty labels", func(t *testing.T) {
		cfg := DefaultScheduleConfig(1, now)
		cfg.TimeLabels = nil
		assert.ErrorIs(t, cfg.Validate(), ErrNoTimeLabels)
	})

	t.Run("duplicate label", func(t *testing.T) {
		cfg := DefaultScheduleConfig(1, now)
		cfg.TimeLabels = append(cfg.TimeLabels, cfg.TimeLabels[0])
		assert.ErrorIs(t, cfg.Validate(), ErrDuplicateTimeLabel)
	})

	t.Run("malformed label", func(t *testing.T) {
		cfg := DefaultScheduleConfig(1, now)
		cfg.TimeLabels = []types.TimeString{"7am"}
		assert.Error(t, cfg.Validate())
	})
}

func TestScheduleConfig_NextTimeLabel(t *testing.T) {
	now := time.Now()

	t.Run("appends one hour after last", func(t *testing.T) {
		cfg := DefaultScheduleConfig(1, now)

		next, err := cfg.NextTimeLabel()
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("19:00"), next)
	})

	t.Run("day exhausted past 23", func(t *testing.T) {
		cfg := &ScheduleConfig{
			ProfessionalID: 1,
			TimeLabels:     []types.TimeString{"23:00"},
			YearSelected:   2025,
			MonthSelected:  time.January,
		}

		_, err := cfg.NextTimeLabel()
		assert.ErrorIs(t, err, ErrDayExhausted)
	})

	t.Run("empty list", func(t *testing.T) {
		cfg := &ScheduleConfig{ProfessionalID: 1}
		_, err := cfg.NextTimeLabel()
		assert.ErrorIs(t, err, ErrNoTimeLabels)
	})
}
