package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default time grid bounds (hourly labels, inclusive)
const (
	DefaultFirstHour = 7
	DefaultLastHour  = 18
)

// Reservation input validation constants
const (
	MinClientNameLength  = 3
	MinPhoneDigits       = 10
	MaxClientNameLength  = 120
	MaxServiceTypeLength = 80
)

// ServiceCatalog список услуг салона, доступных при бронировании.
// Клиент обязан выбрать услугу из этого списка.
var ServiceCatalog = []string{
	"Corte Feminino",
	"Corte Masculino",
	"Hidratação",
	"Reconstrução",
	"Coloração",
	"Reflexo/Luzes",
	"Escova",
	"Prancha",
	"Penteado",
	"Sobrancelha",
}

// InServiceCatalog returns true if the given service is offered
func InServiceCatalog(service string) bool {
	for _, s := range ServiceCatalog {
		if s == service {
			return true
		}
	}
	return false
}
