package entity

// Performance agrega métricas de un asesor de ventas.
type Performance struct {
	ClientsRegistered int
	SalesMade         int
}

// Sales es un asesor de ventas que gestiona un subconjunto de clientes.
// Clients guarda referencias (ids) a clientes existentes; no es dueño de ellos.
type Sales struct {
	User
	Clients     []string // ids de Client; cada entrada debe referenciar un cliente existente
	Performance *Performance
}

// ManagesClient indica si el asesor tiene asignado el cliente dado.
func (s *Sales) ManagesClient(clientID string) bool {
	for _, id := range s.Clients {
		if id == clientID {
			return true
		}
	}
	return false
}

// Clone devuelve una copia profunda del asesor.
func (s *Sales) Clone() *Sales {
	cp := *s
	cp.Clients = make([]string, len(s.Clients))
	copy(cp.Clients, s.Clients)
	if s.Performance != nil {
		perf := *s.Performance
		cp.Performance = &perf
	}
	return &cp
}
