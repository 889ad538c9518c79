// Package migration aplica o schema do banco com golang-migrate. Os scripts
// SQL são embarcados no binário.
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var scripts embed.FS

type Migrator struct {
	migrate *migrate.Migrate
}

func New(db *sql.DB) (*Migrator, error) {
	source, err := iofs.New(scripts, "sql")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir scripts de migração: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar driver postgres: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar instância de migração: %w", err)
	}

	return &Migrator{migrate: m}, nil
}

func (m *Migrator) Up() error {
	logrus.Info("migration: aplicando migrações")

	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logrus.Info("migration: nenhuma migração pendente")
		return nil
	}
	if err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration: migrações aplicadas")

	return nil
}

func (m *Migrator) Down() error {
	logrus.Warn("migration: revertendo todas as migrações")

	err := m.migrate.Down()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao reverter migrações: %w", err)
	}

	return nil
}

// Version retorna 0 quando nenhuma migração foi aplicada
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("erro ao obter versão da migração: %w", err)
	}
	return version, dirty, nil
}

// Force marca a versão sem executar scripts, usado para corrigir estado dirty
func (m *Migrator) Force(version int) error {
	logrus.WithField("version", version).Warn("migration: forçando versão")

	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("erro ao forçar versão %d: %w", version, err)
	}
	return nil
}

func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return fmt.Errorf("erro ao fechar origem: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("erro ao fechar banco: %w", dbErr)
	}
	return nil
}
