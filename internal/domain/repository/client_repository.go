package repository

import "github.com/jhoicas/portal-isp-api/internal/domain/entity"

// ClientRepository define el puerto de almacenamiento para Client.
// La implementación en memoria devuelve copias: el llamador nunca observa
// el puntero interno del store.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	// Update reemplaza la entidad completa por la copia entregada.
	Update(client *entity.Client) error
}
