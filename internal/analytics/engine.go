// Package analytics implementa os redutores puros de inteligência de mercado
// e o comparador de snapshots mensais
package analytics

import (
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

// Engine aplica o filtro e executa os redutores sobre as linhas resultantes.
// Não guarda estado entre chamadas.
type Engine struct {
	opts Options
}

func NewEngine(opts ...Option) *Engine {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Engine{opts: options}
}

// Options retorna a configuração efetiva do motor
func (e *Engine) Options() Options {
	return e.opts
}

// Aggregate filtra as linhas e deriva todas as visões analíticas do recorte.
// Cada redutor escreve em um campo distinto do bundle, então a execução em
// paralelo não compartilha estado mutável.
func (e *Engine) Aggregate(rows []domain.RawRow, filter domain.FilterState) *domain.AggregateBundle {
	filtered := FilterRows(rows, filter)

	bundle := &domain.AggregateBundle{
		Filter:   filter,
		RowCount: len(filtered),
	}

	reducers := []func(){
		func() { bundle.MonthlyTrends = MonthlyTrends(filtered) },
		func() { bundle.BrandPerformance = BrandPerformance(filtered) },
		func() { bundle.BrandGrams = BrandGramsAnalysis(filtered) },
		func() { bundle.ServiceBreakdown = ServiceBreakdown(filtered) },
		func() { bundle.ServiceGrams = ServiceGramsAnalysis(filtered) },
		func() { bundle.BrandDominance = BrandDominance(filtered) },
		func() { bundle.Geography = Geography(filtered) },
		func() { bundle.PricingTrends = PricingTrends(filtered) },
		func() { bundle.SalonSizeBenchmarks = SalonSizeBenchmarks(filtered) },
		func() { bundle.MarketAnalysis = e.MarketAnalysis(filtered) },
	}

	if !e.opts.ParallelReducers {
		for _, reduce := range reducers {
			reduce()
		}
		return bundle
	}

	var g errgroup.Group
	for _, reduce := range reducers {
		reduce := reduce
		g.Go(func() error {
			reduce()
			return nil
		})
	}
	// os redutores são funções puras e não retornam erro
	g.Wait()

	return bundle
}
