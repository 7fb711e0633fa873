package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// PackageResponse paquete activo de un cliente.
type PackageResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DataLimitGB  float64         `json:"data_limit_gb"`
	DataUsedGB   float64         `json:"data_used_gb"`
	Price        decimal.Decimal `json:"price"`
	ValidityDays int             `json:"validity_days"`
	PurchasedAt  time.Time       `json:"purchased_at"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

// TopUpResponse una recarga del historial.
type TopUpResponse struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Method string          `json:"method"`
	Status string          `json:"status"`
}

// ClientResponse cliente completo (perfil + saldo + paquete + recargas).
type ClientResponse struct {
	UserResponse
	Balance        decimal.Decimal  `json:"balance"`
	CurrentPackage *PackageResponse `json:"current_package,omitempty"`
	TopUps         []TopUpResponse  `json:"top_ups"`
}

// UpdateProfileRequest campos editables del perfil. Los punteros distinguen
// "no enviado" de "enviado vacío"; id y role no son alcanzables por esta vía.
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// PurchaseRequest compra de un paquete del catálogo.
type PurchaseRequest struct {
	PackageOptionID string `json:"package_option_id"`
}

// TopUpRequest recarga de saldo.
type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// RegisterClientRequest alta de un cliente por un asesor. El password llega
// en texto plano y se descarta de inmediato: nunca se almacena.
type RegisterClientRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Phone    string          `json:"phone"`
	Address  string          `json:"address"`
	Balance  decimal.Decimal `json:"balance"`
}

// ToPackageResponse convierte el paquete de dominio a su DTO.
func ToPackageResponse(p *entity.InternetPackage) *PackageResponse {
	if p == nil {
		return nil
	}
	return &PackageResponse{
		ID:           p.ID,
		Name:         p.Name,
		DataLimitGB:  p.DataLimitGB,
		DataUsedGB:   p.DataUsedGB,
		Price:        p.Price,
		ValidityDays: p.ValidityDays,
		PurchasedAt:  p.PurchasedAt,
		ExpiresAt:    p.ExpiresAt,
	}
}

// ToClientResponse convierte la entidad de dominio a su DTO.
func ToClientResponse(c *entity.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	topUps := make([]TopUpResponse, 0, len(c.TopUps))
	for _, t := range c.TopUps {
		topUps = append(topUps, TopUpResponse{
			ID:     t.ID,
			Amount: t.Amount,
			Date:   t.Date,
			Method: t.Method,
			Status: t.Status,
		})
	}
	return &ClientResponse{
		UserResponse:   *ToUserResponse(&c.User),
		Balance:        c.Balance,
		CurrentPackage: ToPackageResponse(c.CurrentPackage),
		TopUps:         topUps,
	}
}
