package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ChartModeController é o controle manual do modo do card previsto x efetivado
type ChartModeController interface {
	Current() domain.ChartMode
	Set(mode domain.ChartMode) error
}

type ChartModeRequest struct {
	Mode domain.ChartMode `json:"mode"`
}

type ChartModeResponse struct {
	Mode domain.ChartMode `json:"mode"`
}

// DashboardHandlers agrupa as dependências das rotas do dashboard
type DashboardHandlers struct {
	Service  dashboarding.Dashboard
	Chart    ChartModeController
	Location *time.Location
	Now      func() time.Time
}

func (h DashboardHandlers) now() time.Time {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	if h.Location == nil {
		return now()
	}
	return now().In(h.Location)
}

// rankingDate lê ?date=YYYY-MM-DD no fuso do negócio; sem parâmetro usa hoje
func (h DashboardHandlers) rankingDate(w http.ResponseWriter, r *http.Request, now time.Time) (time.Time, bool) {
	loc := h.Location
	if loc == nil {
		loc = now.Location()
	}

	date, err := utils.ParseDateIn(r.URL.Query().Get("date"), loc, now)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return time.Time{}, false
	}
	return date, true
}

// GetSnapshot retorna o dashboard completo. Com o banco fora do ar devolve o
// último snapshot válido marcado como stale.
func (h DashboardHandlers) GetSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := h.now()
		date, ok := h.rankingDate(w, r, now)
		if !ok {
			return
		}

		snapshot, err := h.Service.GetSnapshot(r.Context(), now, date)
		if err != nil {
			respondError(w, r, err, "Dashboard indisponível")
			return
		}

		if snapshot.Stale {
			w.Header().Set("Warning", `110 - "snapshot desatualizado"`)
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

func (h DashboardHandlers) GetGoalProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress, err := h.Service.GetGoalProgress(r.Context(), h.now())
		if err != nil {
			respondError(w, r, err, "Erro ao calcular o progresso da meta")
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}

func (h DashboardHandlers) GetTrend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trend, err := h.Service.GetTrend(r.Context(), h.now())
		if err != nil {
			respondError(w, r, err, "Erro ao montar a série previsto x efetivado")
			return
		}

		writeJSON(w, http.StatusOK, trend)
	}
}

func (h DashboardHandlers) GetRanking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rankingType := domain.RankingType(httprouter.ParamsFromContext(r.Context()).ByName("type"))

		now := h.now()
		date, ok := h.rankingDate(w, r, now)
		if !ok {
			return
		}

		board, err := h.Service.GetRanking(r.Context(), rankingType, date)
		if err != nil {
			respondError(w, r, err, "Erro ao montar o ranking")
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}

func (h DashboardHandlers) GetChartMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ChartModeResponse{Mode: h.Chart.Current()})
	}
}

// SetChartMode fixa o modo do card até a próxima rotação
func (h DashboardHandlers) SetChartMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChartModeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := h.Chart.Set(req.Mode); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidChartMode, err.Error(), map[string]any{
				"allowed": []domain.ChartMode{domain.ChartModeLine, domain.ChartModePie, domain.ChartModeGauge},
			})
			return
		}

		writeJSON(w, http.StatusOK, ChartModeResponse{Mode: h.Chart.Current()})
	}
}
