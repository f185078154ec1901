package handler

import (
	"net/http"

	"github.com/vfg2006/market-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence"
	"github.com/vfg2006/market-intelligence-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/unlock",
			Method:  http.MethodPost,
			Handler: Unlock(service),
		},
	}
}

func Market(service intelligence.MarketIntelligence) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/market/filters",
			Method:      http.MethodGet,
			Handler:     GetFilterOptions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/market/aggregates",
			Method:      http.MethodGet,
			Handler:     GetAggregates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/market/compare",
			Method:      http.MethodGet,
			Handler:     CompareMonths(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/market/snapshots",
			Method:      http.MethodGet,
			Handler:     ListSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/market/brands/ranking",
			Method:      http.MethodGet,
			Handler:     GetBrandRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
