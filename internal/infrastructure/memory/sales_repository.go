package memory

import (
	"sync"

	"github.com/jhoicas/portal-isp-api/internal/domain"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// SalesRepository almacena asesores de ventas en memoria, indexados por id.
type SalesRepository struct {
	mu    sync.RWMutex
	sales map[string]*entity.Sales
	order []string
}

// NewSalesRepository construye el repositorio, sembrado con los asesores dados.
func NewSalesRepository(seed []*entity.Sales) *SalesRepository {
	r := &SalesRepository{sales: make(map[string]*entity.Sales, len(seed))}
	for _, s := range seed {
		r.sales[s.ID] = s.Clone()
		r.order = append(r.order, s.ID)
	}
	return r
}

// Create agrega un asesor nuevo. El id no debe existir ya.
func (r *SalesRepository) Create(sales *entity.Sales) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sales[sales.ID]; ok {
		return domain.ErrInvalidInput
	}
	r.sales[sales.ID] = sales.Clone()
	r.order = append(r.order, sales.ID)
	return nil
}

// GetByID devuelve una copia del asesor o ErrSalesNotFound.
func (r *SalesRepository) GetByID(id string) (*entity.Sales, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, domain.ErrSalesNotFound
	}
	return s.Clone(), nil
}

// List devuelve copias de todos los asesores en orden de inserción.
func (r *SalesRepository) List() ([]*entity.Sales, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sales, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sales[id].Clone())
	}
	return out, nil
}

// Update reemplaza la entidad completa. El id debe existir.
func (r *SalesRepository) Update(sales *entity.Sales) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sales[sales.ID]; !ok {
		return domain.ErrSalesNotFound
	}
	r.sales[sales.ID] = sales.Clone()
	return nil
}
