package repository

import "github.com/jhoicas/portal-isp-api/internal/domain/entity"

// SalesRepository define el puerto de almacenamiento para Sales.
type SalesRepository interface {
	Create(sales *entity.Sales) error
	GetByID(id string) (*entity.Sales, error)
	List() ([]*entity.Sales, error)
	Update(sales *entity.Sales) error
}
