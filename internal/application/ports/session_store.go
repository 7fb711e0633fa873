package ports

// SessionStore es el puerto de persistencia de la sesión: un registro JSON
// por clave. En el portal solo se usa la clave "user".
type SessionStore interface {
	// Get devuelve el valor crudo y si la clave existe.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
