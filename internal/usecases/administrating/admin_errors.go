package administrating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrInvalidInput      = errors.New("dados inválidos")
	ErrConflict          = errors.New("registro em conflito")
	ErrInvalidGoalPeriod = errors.New("período de meta inválido")
	ErrInvalidImage      = errors.New("formato de imagem não suportado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AdminError é um erro do painel administrativo com o código da API
type AdminError struct {
	Err     error
	Code    string
	Details any
}

func (e *AdminError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AdminError) Unwrap() error {
	return e.Err
}

func (e *AdminError) APICode() string {
	return e.Code
}

func NewAdminError(baseErr error, code string, details any) *AdminError {
	return &AdminError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func notFound(entity string) *AdminError {
	return NewAdminError(ErrNotFound, apiErrors.ErrResourceNotFound, entity+" não encontrado(a)")
}

func invalidInput(details any) *AdminError {
	return NewAdminError(ErrInvalidInput, apiErrors.ErrInvalidRequest, details)
}

func databaseError(err error) *AdminError {
	return NewAdminError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, nil)
}

// validationDetails traduz os erros do validator em "campo: regra"
func validationDetails(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		details = append(details, strings.ToLower(fieldErr.Field())+": "+rule)
	}

	return details
}
