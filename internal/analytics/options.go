package analytics

const (
	// DefaultDominanceThreshold é a fração dos serviços de um salão que uma única
	// marca precisa ultrapassar para o salão ser considerado fiel a ela.
	DefaultDominanceThreshold = 0.5

	// DefaultTopDecileFraction é a fração de salões usada como "top performers"
	// no benchmark por porte.
	DefaultTopDecileFraction = 0.1
)

// Options reúne os parâmetros ajustáveis do motor de agregação
type Options struct {
	DominanceThreshold float64
	TopDecileFraction  float64
	ParallelReducers   bool
}

// Option configura o Engine via functional options
type Option func(*Options)

// WithDominanceThreshold sobrescreve o limite de dominância de marca (0 < v <= 1)
func WithDominanceThreshold(v float64) Option {
	return func(o *Options) {
		if v > 0 && v <= 1 {
			o.DominanceThreshold = v
		}
	}
}

// WithTopDecileFraction sobrescreve a fração do decil superior (0 < v <= 1)
func WithTopDecileFraction(v float64) Option {
	return func(o *Options) {
		if v > 0 && v <= 1 {
			o.TopDecileFraction = v
		}
	}
}

// WithParallelReducers executa os redutores em goroutines separadas
func WithParallelReducers(enabled bool) Option {
	return func(o *Options) {
		o.ParallelReducers = enabled
	}
}

func defaultOptions() Options {
	return Options{
		DominanceThreshold: DefaultDominanceThreshold,
		TopDecileFraction:  DefaultTopDecileFraction,
	}
}
