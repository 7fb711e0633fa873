package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// PackageOptionResponse entrada del catálogo de paquetes.
type PackageOptionResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DataLimitGB  float64         `json:"data_limit_gb"`
	Price        decimal.Decimal `json:"price"`
	ValidityDays int             `json:"validity_days"`
	Popular      bool            `json:"popular,omitempty"`
}

// ToPackageOptionResponse convierte la opción de catálogo a su DTO.
func ToPackageOptionResponse(o *entity.PackageOption) *PackageOptionResponse {
	if o == nil {
		return nil
	}
	return &PackageOptionResponse{
		ID:           o.ID,
		Name:         o.Name,
		DataLimitGB:  o.DataLimitGB,
		Price:        o.Price,
		ValidityDays: o.ValidityDays,
		Popular:      o.Popular,
	}
}
