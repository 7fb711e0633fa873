package usecase

import (
	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/domain/repository"
)

// CatalogUseCase lectura del catálogo de paquetes.
type CatalogUseCase struct {
	catalog repository.PackageCatalog
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog repository.PackageCatalog) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List devuelve las opciones comprables.
func (uc *CatalogUseCase) List() ([]*dto.PackageOptionResponse, error) {
	options, err := uc.catalog.ListOptions()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PackageOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, dto.ToPackageOptionResponse(o))
	}
	return out, nil
}
