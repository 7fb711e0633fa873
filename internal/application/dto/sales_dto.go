package dto

import "github.com/jhoicas/portal-isp-api/internal/domain/entity"

// PerformanceResponse métricas de un asesor.
type PerformanceResponse struct {
	ClientsRegistered int `json:"clients_registered"`
	SalesMade         int `json:"sales_made"`
}

// SalesResponse asesor de ventas con sus clientes asignados.
type SalesResponse struct {
	UserResponse
	Clients     []string             `json:"clients"`
	Performance *PerformanceResponse `json:"performance,omitempty"`
}

// UpdateSalesRequest campos editables del perfil de un asesor.
type UpdateSalesRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ToSalesResponse convierte la entidad de dominio a su DTO.
func ToSalesResponse(s *entity.Sales) *SalesResponse {
	if s == nil {
		return nil
	}
	out := &SalesResponse{
		UserResponse: *ToUserResponse(&s.User),
		Clients:      append([]string(nil), s.Clients...),
	}
	if s.Performance != nil {
		out.Performance = &PerformanceResponse{
			ClientsRegistered: s.Performance.ClientsRegistered,
			SalesMade:         s.Performance.SalesMade,
		}
	}
	return out
}
