package domain

type BrandRankingItem struct {
	Brand            string  `json:"brand"`
	Month            string  `json:"month"`
	Services         float64 `json:"services"`
	Revenue          float64 `json:"revenue"`
	Position         int     `json:"position"`
	PositionChange   int     `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int     `json:"previous_position"`
}

type BrandRankingResponse struct {
	Month         string             `json:"month"`
	PreviousMonth string             `json:"previous_month,omitempty"`
	Ranking       []BrandRankingItem `json:"ranking"`
}
