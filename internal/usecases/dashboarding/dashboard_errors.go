package dashboarding

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var (
	// ErrTransientFetch indica falha temporária ao consultar o banco de relatórios
	ErrTransientFetch = errors.New("falha temporária ao consultar relatórios")
	// ErrSnapshotUnavailable indica falha no banco sem snapshot anterior para servir
	ErrSnapshotUnavailable = errors.New("dashboard indisponível")
	ErrInvalidRankingType  = errors.New("tipo de ranking desconhecido")
)

// DashboardError carrega o código de API do erro
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func (e *DashboardError) APICode() string {
	return e.Code
}

func NewDashboardError(baseErr error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// fetchError marca a falha de leitura como transitória, preservando a causa
func fetchError(operation string, err error) *DashboardError {
	return &DashboardError{
		Err:     fmt.Errorf("%w: %s: %w", ErrTransientFetch, operation, err),
		Code:    apiErrors.ErrDatabaseOperation,
		Details: operation,
	}
}
