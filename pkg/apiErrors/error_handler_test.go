package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrInvalidRankingType, http.StatusBadRequest},
		{ErrSnapshotUnavailable, http.StatusServiceUnavailable},
		{ErrResourceNotFound, http.StatusNotFound},
		{ErrInsufficientPrivilege, http.StatusForbidden},
		{"DESCONHECIDO", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestAPIErrorImplementsError(t *testing.T) {
	var err error = APIError{Code: ErrDatabaseOperation, Message: "falhou"}

	var apiErr APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "SRV_002: falhou", err.Error())
}

func TestStatusForUnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
	assert.Equal(t, http.StatusServiceUnavailable, StatusFor(ErrSnapshotUnavailable))
}
