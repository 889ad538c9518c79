package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const usage = `uso: migrate <comando>

comandos:
  up             aplica as migrações pendentes
  down           reverte todas as migrações
  version        mostra a versão atual
  force <versão> marca a versão sem executar scripts
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel, cfg.App.Environment)

	conn, err := postgres.NewConnection(context.Background(), cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	migrator, err := migration.New(conn.DB)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar migrações")
	}
	defer migrator.Close()

	if err := run(migrator, flag.Args()); err != nil {
		logrus.WithError(err).Error("Erro ao executar migração")
		os.Exit(1)
	}
}

// runner é o subconjunto de *migration.Migrator usado pelos comandos
type runner interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Force(version int) error
}

func run(migrator runner, args []string) error {
	if len(args) == 0 {
		return errors.New("comando ausente")
	}

	switch args[0] {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("migration: versão atual")
		return nil
	case "force":
		if len(args) < 2 {
			return errors.New("force exige a versão")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("versão inválida %q: %w", args[1], err)
		}
		return migrator.Force(version)
	default:
		return fmt.Errorf("comando desconhecido: %s", args[0])
	}
}
