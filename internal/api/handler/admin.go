package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/administrating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

const maxLogoSize = 2 << 20

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// Equipes

func ListTeams(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := service.ListTeams(r.Context())
		if err != nil {
			respondError(w, r, err, "Erro ao listar equipes")
			return
		}
		writeJSON(w, http.StatusOK, teams)
	}
}

func CreateTeam(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.TeamInput
		if !decodeJSON(w, r, &input) {
			return
		}

		team, err := service.CreateTeam(r.Context(), input)
		if err != nil {
			respondError(w, r, err, "Erro ao criar equipe")
			return
		}
		writeJSON(w, http.StatusCreated, team)
	}
}

func UpdateTeam(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.TeamInput
		if !decodeJSON(w, r, &input) {
			return
		}

		team, err := service.UpdateTeam(r.Context(), pathParam(r, "id"), input)
		if err != nil {
			respondError(w, r, err, "Erro ao atualizar equipe")
			return
		}
		writeJSON(w, http.StatusOK, team)
	}
}

func DeleteTeam(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteTeam(r.Context(), pathParam(r, "id")); err != nil {
			respondError(w, r, err, "Erro ao remover equipe")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// Vendedores

func ListSellers(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellers, err := service.ListSellers(r.Context())
		if err != nil {
			respondError(w, r, err, "Erro ao listar vendedores")
			return
		}
		writeJSON(w, http.StatusOK, sellers)
	}
}

func CreateSeller(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.SellerInput
		if !decodeJSON(w, r, &input) {
			return
		}

		seller, err := service.CreateSeller(r.Context(), input)
		if err != nil {
			respondError(w, r, err, "Erro ao criar vendedor")
			return
		}
		writeJSON(w, http.StatusCreated, seller)
	}
}

func UpdateSeller(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.SellerInput
		if !decodeJSON(w, r, &input) {
			return
		}

		seller, err := service.UpdateSeller(r.Context(), pathParam(r, "id"), input)
		if err != nil {
			respondError(w, r, err, "Erro ao atualizar vendedor")
			return
		}
		writeJSON(w, http.StatusOK, seller)
	}
}

func DeleteSeller(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteSeller(r.Context(), pathParam(r, "id")); err != nil {
			respondError(w, r, err, "Erro ao remover vendedor")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// Metas

func ListGoals(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := service.ListGoals(r.Context())
		if err != nil {
			respondError(w, r, err, "Erro ao listar metas")
			return
		}
		writeJSON(w, http.StatusOK, goals)
	}
}

func CreateGoal(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.GoalInput
		if !decodeJSON(w, r, &input) {
			return
		}

		goal, err := service.CreateGoal(r.Context(), input)
		if err != nil {
			respondError(w, r, err, "Erro ao criar meta")
			return
		}
		writeJSON(w, http.StatusCreated, goal)
	}
}

func UpdateGoal(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.GoalInput
		if !decodeJSON(w, r, &input) {
			return
		}

		goal, err := service.UpdateGoal(r.Context(), pathParam(r, "id"), input)
		if err != nil {
			respondError(w, r, err, "Erro ao atualizar meta")
			return
		}
		writeJSON(w, http.StatusOK, goal)
	}
}

func DeleteGoal(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteGoal(r.Context(), pathParam(r, "id")); err != nil {
			respondError(w, r, err, "Erro ao remover meta")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// Relatórios diários

// ListReports exige ?month=YYYY-MM
func ListReports(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		if month == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro month é obrigatório", nil)
			return
		}

		reports, err := service.ListReports(r.Context(), month)
		if err != nil {
			respondError(w, r, err, "Erro ao listar relatórios")
			return
		}
		writeJSON(w, http.StatusOK, reports)
	}
}

func GetReport(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := service.GetReport(r.Context(), pathParam(r, "date"))
		if err != nil {
			respondError(w, r, err, "Erro ao buscar relatório")
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

// SaveReport grava o relatório do dia, substituindo os rankings existentes
func SaveReport(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.DailyReportInput
		if !decodeJSON(w, r, &input) {
			return
		}

		detail, err := service.SaveReport(r.Context(), input)
		if err != nil {
			respondError(w, r, err, "Erro ao salvar relatório")
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func DeleteReport(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteReport(r.Context(), pathParam(r, "date")); err != nil {
			respondError(w, r, err, "Erro ao remover relatório")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// Configuração

func GetConfiguration(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := service.GetConfiguration(r.Context())
		if err != nil {
			respondError(w, r, err, "Erro ao buscar configuração")
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

func UpdateConfiguration(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.ConfigurationInput
		if !decodeJSON(w, r, &input) {
			return
		}

		cfg, err := service.UpdateConfiguration(r.Context(), input)
		if err != nil {
			respondError(w, r, err, "Erro ao atualizar configuração")
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

// UploadLogo recebe multipart/form-data com o arquivo no campo "logo"
func UploadLogo(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxLogoSize+1024)
		if err := r.ParseMultipartForm(maxLogoSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo ausente ou maior que 2MB", nil)
			return
		}

		file, header, err := r.FormFile("logo")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo logo é obrigatório", nil)
			return
		}
		defer file.Close()

		cfg, err := service.UploadLogo(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			respondError(w, r, err, "Erro ao enviar logo")
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

// Auditoria

func ListAuditLogs(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logs, err := service.ListAuditLogs(r.Context())
		if err != nil {
			respondError(w, r, err, "Erro ao listar auditoria")
			return
		}
		writeJSON(w, http.StatusOK, logs)
	}
}
