package intelligence

import (
	"errors"
	"fmt"

	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
)

var (
	ErrSameMonth          = errors.New("não é possível comparar um mês com ele mesmo")
	ErrMissingMonth       = errors.New("mês obrigatório não informado")
	ErrInvalidMonth       = errors.New("mês inválido")
	ErrSnapshotNotFound   = errors.New("snapshot do mês não encontrado")
	ErrDatasetUnavailable = errors.New("conjunto de dados indisponível")
)

// IntelligenceError é um erro com contexto adicional para as consultas de mercado
type IntelligenceError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Month   string // Mês envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *IntelligenceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *IntelligenceError) Unwrap() error {
	return e.Err
}

// IsValidationError indica erros causados pelos parâmetros da requisição
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSameMonth) ||
		errors.Is(err, ErrMissingMonth) ||
		errors.Is(err, ErrInvalidMonth)
}

func newMonthError(baseErr error, code, month, details string) *IntelligenceError {
	return &IntelligenceError{
		Err:     baseErr,
		Code:    code,
		Month:   month,
		Details: details,
	}
}

func newDatasetError(err error) *IntelligenceError {
	return &IntelligenceError{
		Err:     ErrDatasetUnavailable,
		Code:    apiErrors.ErrDatasetUnavailable,
		Details: err.Error(),
	}
}
