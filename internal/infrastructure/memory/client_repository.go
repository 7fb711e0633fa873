// Package memory implementa los puertos de repository sobre mapas en memoria.
// Todo el estado del portal vive aquí: se siembra al arranque y se pierde al
// apagar el proceso (no hay persistencia por diseño).
//
// Aunque el modelo lógico es una sola sesión activa, los handlers de Fiber
// corren en goroutines, así que cada repositorio protege su mapa con un
// RWMutex y entrega/recibe copias completas de las entidades.
package memory

import (
	"sync"

	"github.com/jhoicas/portal-isp-api/internal/domain"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// ClientRepository almacena clientes en memoria, indexados por id.
type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*entity.Client
	order   []string // ids en orden de inserción, para listados estables
}

// NewClientRepository construye el repositorio, sembrado con los clientes dados.
func NewClientRepository(seed []*entity.Client) *ClientRepository {
	r := &ClientRepository{clients: make(map[string]*entity.Client, len(seed))}
	for _, c := range seed {
		r.clients[c.ID] = c.Clone()
		r.order = append(r.order, c.ID)
	}
	return r
}

// Create agrega un cliente nuevo. El id no debe existir ya.
func (r *ClientRepository) Create(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ID]; ok {
		return domain.ErrInvalidInput
	}
	r.clients[client.ID] = client.Clone()
	r.order = append(r.order, client.ID)
	return nil
}

// GetByID devuelve una copia del cliente o ErrClientNotFound.
func (r *ClientRepository) GetByID(id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c.Clone(), nil
}

// GetByEmail busca por email exacto. Devuelve ErrClientNotFound si no hay coincidencia.
func (r *ClientRepository) GetByEmail(email string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.clients[id].Email == email {
			return r.clients[id].Clone(), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

// List devuelve copias de todos los clientes en orden de inserción.
func (r *ClientRepository) List() ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.clients[id].Clone())
	}
	return out, nil
}

// Update reemplaza la entidad completa. El id debe existir.
func (r *ClientRepository) Update(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	r.clients[client.ID] = client.Clone()
	return nil
}
