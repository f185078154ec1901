package domain

// FilterState representa o filtro de período e geografia aplicado às linhas.
// MonthToIndex é inclusivo; listas vazias não restringem.
type FilterState struct {
	MonthFromIndex int      `json:"monthFromIndex"`
	MonthToIndex   int      `json:"monthToIndex"`
	Countries      []string `json:"countries,omitempty"`
	Cities         []string `json:"cities,omitempty"`
}

// FilterOptions lista os valores disponíveis para montar filtros
type FilterOptions struct {
	Months       []string `json:"months"` // Ordem cronológica
	Countries    []string `json:"countries"`
	Cities       []string `json:"cities"`
	Brands       []string `json:"brands"`
	ServiceTypes []string `json:"serviceTypes"`
}

// Dataset é o documento de entrada produzido pelo pipeline externo de ETL
type Dataset struct {
	RawRows          []RawRow                  `json:"rawRows"`
	MonthlySnapshots map[string]*MonthSnapshot `json:"monthlySnapshots"`
	FilterOptions    FilterOptions             `json:"filterOptions"`
}
