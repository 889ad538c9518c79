package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return Wrap(db), mock
}

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commit quando fn termina sem erro", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM rankings").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, "DELETE FROM rankings WHERE report_id = $1", "r1")
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback devolve o erro de fn", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		failure := errors.New("posição duplicada")
		err := conn.RunInTransaction(ctx, func(*sql.Tx) error { return failure })

		assert.ErrorIs(t, err, failure)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha no rollback é anexada", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(errors.New("conexão perdida"))

		failure := errors.New("posição duplicada")
		err := conn.RunInTransaction(ctx, func(*sql.Tx) error { return failure })

		assert.ErrorIs(t, err, failure)
		assert.Contains(t, err.Error(), "conexão perdida")
	})

	t.Run("panic desfaz e é repassado", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = conn.RunInTransaction(ctx, func(*sql.Tx) error { panic("boom") })
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro ao iniciar", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool esgotado"))

		err := conn.RunInTransaction(ctx, func(*sql.Tx) error { return nil })

		assert.ErrorContains(t, err, "erro ao iniciar transação")
	})
}
