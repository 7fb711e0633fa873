package memory

import (
	"github.com/jhoicas/portal-isp-api/internal/domain"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// Catalog es el catálogo de paquetes en memoria. Se carga una vez al arranque
// y no tiene operaciones de escritura, así que no necesita lock.
type Catalog struct {
	options []*entity.PackageOption
	byID    map[string]*entity.PackageOption
}

// NewCatalog construye el catálogo con las opciones dadas.
func NewCatalog(options []*entity.PackageOption) *Catalog {
	c := &Catalog{byID: make(map[string]*entity.PackageOption, len(options))}
	for _, opt := range options {
		cp := *opt
		c.options = append(c.options, &cp)
		c.byID[opt.ID] = &cp
	}
	return c
}

// GetOption devuelve una copia de la opción o ErrPackageNotFound.
func (c *Catalog) GetOption(id string) (*entity.PackageOption, error) {
	opt, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	cp := *opt
	return &cp, nil
}

// ListOptions devuelve copias de todas las opciones en el orden del catálogo.
func (c *Catalog) ListOptions() ([]*entity.PackageOption, error) {
	out := make([]*entity.PackageOption, 0, len(c.options))
	for _, opt := range c.options {
		cp := *opt
		out = append(out, &cp)
	}
	return out, nil
}
