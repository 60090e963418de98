package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"digits only", "11999999999", "11999999999"},
		{"formatted", "(11) 99999-9999", "11999999999"},
		{"with spaces", "11 9 9999 9999", "11999999999"},
		{"with country code", "+55 11 99999-9999", "5511999999999"},
		{"empty", "", ""},
		{"letters stripped", "tel: 11999999999", "11999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.phone))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"eleven digits", "11999999999", "(11) 99999-9999"},
		{"eleven digits with noise", "11 99999 9999", "(11) 99999-9999"},
		{"ten digits kept as entered", "1139999999", "1139999999"},
		{"twelve digits kept as entered", "551199999999", "551199999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.phone))
		})
	}
}

func TestReservation_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: ReservationConfirmed}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: ReservationCancelled}).CanBeCancelled())
}
