package analytics

import "github.com/vfg2006/market-intelligence-api/pkg/utils"

// apportion arredonda para inteiro o campo indicado de cada item, na ordem do
// slice, de forma que a soma entre grupos bata com o total arredondado do recorte
func apportion[T any](items []T, field func(*T) *float64) {
	values := make([]float64, len(items))
	for i := range items {
		values[i] = *field(&items[i])
	}

	for i, rounded := range utils.ApportionRound(values) {
		*field(&items[i]) = rounded
	}
}
