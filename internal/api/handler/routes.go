package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/administrating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

var (
	adminOnly = []func(http.Handler) http.Handler{middleware.AdminOnly()}
	allRoles  = []func(http.Handler) http.Handler{middleware.AllRoles()}
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}

// Uploads serve os arquivos gravados pelo storage local
func Uploads(dir string) []router.Route {
	return []router.Route{
		{
			Path:    middleware.UploadsPrefix + "*filepath",
			Method:  http.MethodGet,
			Handler: http.StripPrefix(strings.TrimSuffix(middleware.UploadsPrefix, "/"), http.FileServer(http.Dir(dir))),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: allRoles,
		},
	}
}

func Dashboard(h DashboardHandlers) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     h.GetSnapshot(),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/goal",
			Method:      http.MethodGet,
			Handler:     h.GetGoalProgress(),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/trend",
			Method:      http.MethodGet,
			Handler:     h.GetTrend(),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/rankings/:type",
			Method:      http.MethodGet,
			Handler:     h.GetRanking(),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/chart-mode",
			Method:      http.MethodGet,
			Handler:     h.GetChartMode(),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/chart-mode",
			Method:      http.MethodPut,
			Handler:     h.SetChartMode(),
			Middlewares: allRoles,
		},
	}
}

func Admin(service administrating.Administrator) []router.Route {
	return []router.Route{
		{Path: "/v1/admin/teams", Method: http.MethodGet, Handler: ListTeams(service), Middlewares: adminOnly},
		{Path: "/v1/admin/teams", Method: http.MethodPost, Handler: CreateTeam(service), Middlewares: adminOnly},
		{Path: "/v1/admin/teams/:id", Method: http.MethodPut, Handler: UpdateTeam(service), Middlewares: adminOnly},
		{Path: "/v1/admin/teams/:id", Method: http.MethodDelete, Handler: DeleteTeam(service), Middlewares: adminOnly},

		{Path: "/v1/admin/sellers", Method: http.MethodGet, Handler: ListSellers(service), Middlewares: adminOnly},
		{Path: "/v1/admin/sellers", Method: http.MethodPost, Handler: CreateSeller(service), Middlewares: adminOnly},
		{Path: "/v1/admin/sellers/:id", Method: http.MethodPut, Handler: UpdateSeller(service), Middlewares: adminOnly},
		{Path: "/v1/admin/sellers/:id", Method: http.MethodDelete, Handler: DeleteSeller(service), Middlewares: adminOnly},

		{Path: "/v1/admin/goals", Method: http.MethodGet, Handler: ListGoals(service), Middlewares: adminOnly},
		{Path: "/v1/admin/goals", Method: http.MethodPost, Handler: CreateGoal(service), Middlewares: adminOnly},
		{Path: "/v1/admin/goals/:id", Method: http.MethodPut, Handler: UpdateGoal(service), Middlewares: adminOnly},
		{Path: "/v1/admin/goals/:id", Method: http.MethodDelete, Handler: DeleteGoal(service), Middlewares: adminOnly},

		{Path: "/v1/admin/reports", Method: http.MethodGet, Handler: ListReports(service), Middlewares: adminOnly},
		{Path: "/v1/admin/reports", Method: http.MethodPut, Handler: SaveReport(service), Middlewares: adminOnly},
		{Path: "/v1/admin/reports/:date", Method: http.MethodGet, Handler: GetReport(service), Middlewares: adminOnly},
		{Path: "/v1/admin/reports/:date", Method: http.MethodDelete, Handler: DeleteReport(service), Middlewares: adminOnly},

		{Path: "/v1/admin/configuration", Method: http.MethodGet, Handler: GetConfiguration(service), Middlewares: adminOnly},
		{Path: "/v1/admin/configuration", Method: http.MethodPut, Handler: UpdateConfiguration(service), Middlewares: adminOnly},
		{Path: "/v1/admin/configuration/logo", Method: http.MethodPost, Handler: UploadLogo(service), Middlewares: adminOnly},

		{Path: "/v1/admin/audit-logs", Method: http.MethodGet, Handler: ListAuditLogs(service), Middlewares: adminOnly},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
