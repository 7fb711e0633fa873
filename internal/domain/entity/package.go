package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackageOption es una entrada del catálogo: la plantilla comprable a partir
// de la cual se crea un InternetPackage. El catálogo se fija al arranque y
// nunca se muta.
type PackageOption struct {
	ID           string
	Name         string
	DataLimitGB  float64 // > 0
	Price        decimal.Decimal
	ValidityDays int // > 0
	Popular      bool
}

// InternetPackage es un plan de datos activo, propiedad de un cliente.
// DataUsedGB solo se inicializa (0 en compra, aleatorio en seed); ninguna
// operación del núcleo lo incrementa ni lo acota a DataLimitGB.
type InternetPackage struct {
	ID           string
	Name         string
	DataLimitGB  float64
	DataUsedGB   float64
	Price        decimal.Decimal
	ValidityDays int
	PurchasedAt  time.Time
	ExpiresAt    time.Time // PurchasedAt + ValidityDays días
}

// Expired indica si el paquete ya venció respecto al instante dado.
func (p *InternetPackage) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
