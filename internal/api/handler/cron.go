package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobType define qual tarefa agendada será executada manualmente
const (
	CronJobTypeRefresh       = "refresh"
	CronJobTypeChartRotation = "chart-rotation"
)

type RefreshJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

type ChartRotationJob interface {
	Rotate() domain.ChartMode
	GetStatus() map[string]any
}

// CronJobServices contém as tarefas agendadas que podem ser executadas manualmente
type CronJobServices struct {
	DashboardRefresh RefreshJob
	ChartRotation    ChartRotationJob
}

// RunCronJob executa manualmente uma tarefa agendada
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")
		logger := log.Component(r.Context(), "cron").WithField("job", cronType)

		response := map[string]any{"type": cronType}

		switch cronType {
		case CronJobTypeRefresh:
			if services.DashboardRefresh == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do dashboard não disponível", nil)
				return
			}
			started := services.DashboardRefresh.TriggerManualSync(r.Context())
			response["started"] = started
			if started {
				response["message"] = "Atualização do dashboard iniciada"
			} else {
				response["message"] = "Atualização do dashboard já está em andamento"
			}

		case CronJobTypeChartRotation:
			if services.ChartRotation == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de rotação do gráfico não disponível", nil)
				return
			}
			response["started"] = true
			response["mode"] = services.ChartRotation.Rotate()
			response["message"] = "Gráfico rotacionado"

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: refresh, chart-rotation", nil)
			return
		}

		logger.Info("Cron job executada manualmente")
		writeJSON(w, http.StatusAccepted, response)
	}
}

// GetCronStatus retorna o status das tarefas agendadas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DashboardRefresh != nil {
			status[CronJobTypeRefresh] = services.DashboardRefresh.GetStatus()
		}
		if services.ChartRotation != nil {
			status[CronJobTypeChartRotation] = services.ChartRotation.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
