package reserve_slot

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Ключи полей в ошибках валидации
const (
	FieldClientName  = "clientName"
	FieldClientPhone = "clientPhone"
	FieldServiceType = "serviceType"
)

// validateRequest валидирует обязательные параметры запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}
	return nil
}

// validateClientInput валидирует данные клиента. Все проверки выполняются
// до любой мутации; ошибки собираются по всем полям сразу.
// E-mail опционален и сверх типизации поля никак не проверяется.
func validateClientInput(req *Request) FieldErrors {
	fieldErrs := make(FieldErrors)

	if len(strings.TrimSpace(req.ClientName)) < domain.MinClientNameLength {
		fieldErrs[FieldClientName] = fmt.Sprintf("nome deve ter pelo menos %d caracteres", domain.MinClientNameLength)
	} else if len(req.ClientName) > domain.MaxClientNameLength {
		fieldErrs[FieldClientName] = fmt.Sprintf("nome deve ter no máximo %d caracteres", domain.MaxClientNameLength)
	}

	if len(domain.NormalizePhone(req.ClientPhone)) < domain.MinPhoneDigits {
		fieldErrs[FieldClientPhone] = fmt.Sprintf("telefone deve ter pelo menos %d dígitos", domain.MinPhoneDigits)
	}

	if req.ServiceType == "" {
		fieldErrs[FieldServiceType] = "selecione um tipo de serviço"
	} else if !domain.InServiceCatalog(req.ServiceType) {
		fieldErrs[FieldServiceType] = "serviço não disponível"
	}

	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}
