// Package domain contém as estruturas de dados do domínio de inteligência de mercado
package domain

import "strings"

// UnknownLabel é o rótulo explícito usado para valores categóricos ausentes
const UnknownLabel = "Unknown"

type ServiceType string

const (
	ServiceColor         ServiceType = "color"
	ServiceHighlights    ServiceType = "highlights"
	ServiceToner         ServiceType = "toner"
	ServiceStraightening ServiceType = "straightening"
	ServiceOthers        ServiceType = "others"
)

// ServiceTypes lista os cinco tipos de serviço na ordem fixa de apresentação
var ServiceTypes = []ServiceType{
	ServiceColor,
	ServiceHighlights,
	ServiceToner,
	ServiceStraightening,
	ServiceOthers,
}

var serviceTypeLabels = map[ServiceType]string{
	ServiceColor:         "Color",
	ServiceHighlights:    "Highlights",
	ServiceToner:         "Toner",
	ServiceStraightening: "Straightening",
	ServiceOthers:        "Others",
}

// Label retorna o nome de exibição do tipo de serviço
func (t ServiceType) Label() string {
	if label, ok := serviceTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

type ServiceMetrics struct {
	Services float64 `json:"services"`
	Cost     float64 `json:"cost"`
	Grams    float64 `json:"grams"`
}

// ServiceTypeMetrics agrupa as métricas de uso por tipo de serviço de uma linha
type ServiceTypeMetrics struct {
	Color         ServiceMetrics `json:"color"`
	Highlights    ServiceMetrics `json:"highlights"`
	Toner         ServiceMetrics `json:"toner"`
	Straightening ServiceMetrics `json:"straightening"`
	Others        ServiceMetrics `json:"others"`
}

// Get retorna as métricas do tipo de serviço informado
func (m ServiceTypeMetrics) Get(t ServiceType) ServiceMetrics {
	switch t {
	case ServiceColor:
		return m.Color
	case ServiceHighlights:
		return m.Highlights
	case ServiceToner:
		return m.Toner
	case ServiceStraightening:
		return m.Straightening
	case ServiceOthers:
		return m.Others
	default:
		return ServiceMetrics{}
	}
}

// DeclaredPrices são os preços ao cliente informados pelo salão (0 = não informado)
type DeclaredPrices struct {
	RootColor  float64 `json:"rootColor"`
	Highlights float64 `json:"highlights"`
	Haircut    float64 `json:"haircut"`
}

// RawRow representa o uso de uma marca por um salão em um mês.
// Várias linhas podem compartilhar a mesma chave (mês, salão, marca).
type RawRow struct {
	MonthKey       string             `json:"monthKey"`
	SortIndex      int                `json:"sortIndex"`
	UserID         string             `json:"userId"`
	Country        string             `json:"country"`
	City           string             `json:"city"`
	SalonType      string             `json:"salonType"`
	EmployeeCount  int                `json:"employeeCount"`
	Brand          string             `json:"brand"`
	Visits         float64            `json:"visits"`
	Services       float64            `json:"services"`
	Cost           float64            `json:"cost"`
	Grams          float64            `json:"grams"`
	PerServiceType ServiceTypeMetrics `json:"perServiceType"`
	DeclaredPrices DeclaredPrices     `json:"declaredPrices"`
}

// CountryOrUnknown retorna o país da linha ou o rótulo Unknown
func (r RawRow) CountryOrUnknown() string {
	return orUnknown(r.Country)
}

// CityOrUnknown retorna a cidade da linha ou o rótulo Unknown
func (r RawRow) CityOrUnknown() string {
	return orUnknown(r.City)
}

// BrandOrUnknown retorna a marca da linha ou o rótulo Unknown
func (r RawRow) BrandOrUnknown() string {
	return orUnknown(r.Brand)
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return UnknownLabel
	}
	return value
}
