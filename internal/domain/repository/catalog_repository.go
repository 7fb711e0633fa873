package repository

import "github.com/jhoicas/portal-isp-api/internal/domain/entity"

// PackageCatalog define el puerto de lectura del catálogo de paquetes.
// El catálogo se carga una vez al arranque y es inmutable: no hay puerto
// de escritura.
type PackageCatalog interface {
	GetOption(id string) (*entity.PackageOption, error)
	ListOptions() ([]*entity.PackageOption, error)
}
