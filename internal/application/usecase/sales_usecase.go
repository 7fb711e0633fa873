package usecase

import (
	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/application/ports"
	"github.com/jhoicas/portal-isp-api/internal/domain/repository"
)

// SalesUseCase operaciones sobre el equipo de ventas.
type SalesUseCase struct {
	sales    repository.SalesRepository
	notifier ports.Notifier
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(sales repository.SalesRepository, notifier ports.Notifier) *SalesUseCase {
	return &SalesUseCase{sales: sales, notifier: notifier}
}

// GetByID devuelve el asesor o ErrSalesNotFound.
func (uc *SalesUseCase) GetByID(id string) (*dto.SalesResponse, error) {
	s, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToSalesResponse(s), nil
}

// List devuelve el equipo completo (vista de admin).
func (uc *SalesUseCase) List() ([]*dto.SalesResponse, error) {
	all, err := uc.sales.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SalesResponse, 0, len(all))
	for _, s := range all {
		out = append(out, dto.ToSalesResponse(s))
	}
	return out, nil
}

// Update fusiona los campos enviados sobre el asesor, con la misma semántica
// de merge que el perfil de cliente. Id no resuelto: ErrSalesNotFound.
func (uc *SalesUseCase) Update(salesID string, in dto.UpdateSalesRequest) (*dto.SalesResponse, error) {
	s, err := uc.sales.GetByID(salesID)
	if err != nil {
		return nil, err
	}

	merged := s.Clone()
	applyUserPatch(&merged.User, in.Name, in.Email, in.Phone, in.Address)
	if err := uc.sales.Update(merged); err != nil {
		return nil, err
	}

	uc.notifier.Success("Sales profile updated", "Sales profile has been updated successfully")
	return dto.ToSalesResponse(merged), nil
}
