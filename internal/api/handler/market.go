package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/market-intelligence-api/pkg/log"
)

// splitList separa valores informados como "a,b" ou repetidos na query
func splitList(values []string) []string {
	var items []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// GetFilterOptions retorna meses, países, cidades, marcas e tipos de serviço disponíveis
func GetFilterOptions(service intelligence.MarketIntelligence) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := service.GetFilterOptions(r.Context())
		if err != nil {
			handleIntelligenceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	})
}

// GetAggregates calcula o pacote de agregados para o período e a geografia informados
func GetAggregates(service intelligence.MarketIntelligence) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		req := intelligence.AggregateRequest{
			MonthFrom: strings.TrimSpace(query.Get("from")),
			MonthTo:   strings.TrimSpace(query.Get("to")),
			Countries: splitList(query["countries"]),
			Cities:    splitList(query["cities"]),
		}

		bundle, err := service.GetAggregates(r.Context(), req)
		if err != nil {
			handleIntelligenceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"filter_from": req.MonthFrom,
			"filter_to":   req.MonthTo,
			"rows":        bundle.RowCount,
		}).Debug("market-aggregates: agregados calculados")

		writeJSON(w, r, http.StatusOK, bundle)
	})
}

// CompareMonths compara dois snapshots mensais. O filtro de saúde é ligado por padrão.
func CompareMonths(service intelligence.MarketIntelligence) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		monthA := strings.TrimSpace(query.Get("month_a"))
		monthB := strings.TrimSpace(query.Get("month_b"))

		healthFilter := true
		if raw := query.Get("health"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro health deve ser true ou false", nil)
				return
			}
			healthFilter = parsed
		}

		result, err := service.CompareMonths(r.Context(), monthA, monthB, healthFilter)
		if err != nil {
			handleIntelligenceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// ListSnapshots lista os meses disponíveis para comparação
func ListSnapshots(service intelligence.MarketIntelligence) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summaries, err := service.ListSnapshots(r.Context())
		if err != nil {
			handleIntelligenceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"snapshots": summaries,
			"total":     len(summaries),
		})
	})
}

// GetBrandRanking ranqueia as marcas do mês (último mês quando omitido)
func GetBrandRanking(service intelligence.MarketIntelligence) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := strings.TrimSpace(r.URL.Query().Get("month"))

		ranking, err := service.GetBrandRanking(r.Context(), month)
		if err != nil {
			handleIntelligenceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, ranking)
	})
}
