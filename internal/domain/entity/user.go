package entity

import "time"

// Role es el rol de un usuario del portal.
type Role string

// Roles válidos para User.
const (
	RoleClient Role = "client"
	RoleSales  Role = "sales"
	RoleAdmin  Role = "admin"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleSales, RoleAdmin:
		return true
	}
	return false
}

// User representa la identidad base de cualquier usuario del portal.
// ID y Role son inmutables después de la creación; ninguna operación
// de actualización los toca.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	Phone     string // opcional, vacío = no informado
	Address   string // opcional
	CreatedAt time.Time
}

// Admin es un usuario con rol admin; no tiene campos propios:
// implícitamente administra todos los asesores y clientes.
type Admin struct {
	User
}
