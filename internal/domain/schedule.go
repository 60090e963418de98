package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

var (
	// ErrNoTimeLabels is returned when slot generation is attempted with an
	// empty time label list; this is a configuration error and fails fast
	ErrNoTimeLabels = errors.New("domain: schedule has no time labels")

	// ErrDuplicateTimeLabel is returned when a time label would appear twice
	ErrDuplicateTimeLabel = errors.New("domain: duplicate time label")

	// ErrDayExhausted is returned when no further time label fits into the day
	ErrDayExhausted = errors.New("domain: no room for another time label")
)

// ScheduleConfig holds the professional-controlled time-window configuration:
// the ordered list of time-of-day labels the weekly grid is generated from,
// and the month/year window presented in the management view.
type ScheduleConfig struct {
	ProfessionalID int64
	TimeLabels     []types.TimeString
	YearSelected   int
	MonthSelected  time.Month

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultScheduleConfig returns the configuration a professional starts with:
// hourly labels from 07:00 to 18:00 and the current month selected.
func DefaultScheduleConfig(professionalID int64, now time.Time) *ScheduleConfig {
	return &ScheduleConfig{
		ProfessionalID: professionalID,
		TimeLabels:     DefaultTimeLabels(),
		YearSelected:   now.Year(),
		MonthSelected:  now.Month(),
	}
}

// DefaultTimeLabels returns a fresh copy of the default hourly grid
func DefaultTimeLabels() []types.TimeString {
	labels := make([]types.TimeString, 0, DefaultLastHour-DefaultFirstHour+1)
	for h := DefaultFirstHour; h <= DefaultLastHour; h++ {
		labels = append(labels, types.TimeString(fmt.Sprintf("%02d:00", h)))
	}
	return labels
}

// Validate checks the structural invariants of the configuration:
// labels present, well-formed and unique
func (c *ScheduleConfig) Validate() error {
	if len(c.TimeLabels) == 0 {
		return ErrNoTimeLabels
	}

	seen := make(map[types.TimeString]struct{}, len(c.TimeLabels))
	for _, label := range c.TimeLabels {
		if err := label.Validate(); err != nil {
			return err
		}
		if _, ok := seen[label]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateTimeLabel, label)
		}
		seen[label] = struct{}{}
	}

	if c.MonthSelected < time.January || c.MonthSelected > time.December {
		return fmt.Errorf("domain: invalid month %d", c.MonthSelected)
	}

	return nil
}

// NextTimeLabel computes the label AddTimeLabel appends: one hour past the
// last configured label, on the full hour. The list only ever grows.
func (c *ScheduleConfig) NextTimeLabel() (types.TimeString, error) {
	if len(c.TimeLabels) == 0 {
		return "", ErrNoTimeLabels
	}

	last := c.TimeLabels[len(c.TimeLabels)-1]
	hour, err := last.Hour()
	if err != nil {
		return "", err
	}
	if hour >= 23 {
		return "", ErrDayExhausted
	}

	next := types.TimeString(fmt.Sprintf("%02d:00", hour+1))
	for _, label := range c.TimeLabels {
		if label == next {
			return "", fmt.Errorf("%w: %s", ErrDuplicateTimeLabel, next)
		}
	}

	return next, nil
}
