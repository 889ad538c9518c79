package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

type options struct {
	adminEmail    string
	adminPassword string
	teams         int
	sellers       int
	seed          uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.adminEmail, "admin-email", "admin@dashboard.local", "e-mail do administrador")
	flag.StringVar(&opts.adminPassword, "admin-password", "admin123", "senha do administrador")
	flag.IntVar(&opts.teams, "teams", 3, "quantidade de equipes")
	flag.IntVar(&opts.sellers, "sellers", 12, "quantidade de vendedores")
	flag.Uint64Var(&opts.seed, "seed", 0, "semente do gerador, 0 para aleatória")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel, cfg.App.Environment)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	now := time.Now().In(cfg.Location)
	if err := seed(ctx, conn, opts, newGenerator(opts.seed, now)); err != nil {
		logrus.WithError(err).Fatal("Erro ao popular o banco")
	}

	logrus.Info("seed: dados de demonstração gravados")
}

func seed(ctx context.Context, conn *postgres.Connection, opts options, gen *generator) error {
	if err := seedAdmin(ctx, repository.NewUserRepository(conn), opts); err != nil {
		return err
	}

	teamRepo := repository.NewTeamRepository(conn)
	teams := gen.teams(opts.teams)
	for _, team := range teams {
		if _, err := teamRepo.Create(ctx, team); err != nil {
			return err
		}
	}
	logrus.WithField("count", len(teams)).Info("seed: equipes criadas")

	sellerRepo := repository.NewSellerRepository(conn)
	sellers := gen.sellers(opts.sellers, teams)
	for _, seller := range sellers {
		if _, err := sellerRepo.Create(ctx, seller); err != nil {
			return err
		}
	}
	logrus.WithField("count", len(sellers)).Info("seed: vendedores criados")

	goal, err := repository.NewGoalRepository(conn).Create(ctx, gen.goal())
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"period": goal.Period,
		"target": goal.TargetValue.String(),
	}).Info("seed: meta criada")

	reportRepo := repository.NewDailyReportRepository(conn)
	reports := gen.reports(sellers)
	for _, r := range reports {
		if _, err := reportRepo.Upsert(ctx, r.report, r.rankings); err != nil {
			return err
		}
	}
	logrus.WithField("count", len(reports)).Info("seed: relatórios diários gravados")

	return nil
}

// seedAdmin não recria o administrador quando o e-mail já existe
func seedAdmin(ctx context.Context, users repository.UserRepository, opts options) error {
	email := strings.ToLower(strings.TrimSpace(opts.adminEmail))

	existing, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		logrus.WithField("email", email).Info("seed: administrador já existe")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.CreateUser(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logrus.WithField("email", email).Info("seed: administrador criado")
	return nil
}
