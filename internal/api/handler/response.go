package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/administrating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// codedError é implementado pelos erros dos casos de uso que já sabem seu código de API
type codedError interface {
	error
	APICode() string
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// respondError converte o erro do caso de uso na resposta padronizada. Erros
// 5xx não expõem a mensagem interna.
func respondError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var coded codedError
	if !errors.As(err, &coded) {
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
		return
	}

	code := coded.APICode()
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	var details any
	var adminErr *administrating.AdminError
	if errors.As(err, &adminErr) {
		details = adminErr.Details
	}

	apiErrors.WriteError(w, code, coded.Error(), details)
}
