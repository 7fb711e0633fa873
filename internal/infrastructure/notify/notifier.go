// Package notify implementa el puerto Notifier: cada evento se registra con
// zerolog y se retiene en un anillo en memoria con los últimos N, que el
// handler de /api/notifications expone para que la UI pueda mostrarlos.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/portal-isp-api/pkg/logger"
)

// DefaultCapacity eventos retenidos por defecto.
const DefaultCapacity = 50

// Event es una notificación efímera hacia el usuario.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Destructive bool      `json:"destructive"` // true = fallo visible
	At          time.Time `json:"at"`
}

// Notifier retiene los últimos eventos y los escribe al log.
type Notifier struct {
	mu     sync.Mutex
	log    *logger.Logger
	events []Event // más reciente primero
	cap    int
}

// New construye el notifier con la capacidad dada (<=0 usa DefaultCapacity).
func New(log *logger.Logger, capacity int) *Notifier {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Notifier{log: log, cap: capacity}
}

// Success registra una notificación de operación completada.
func (n *Notifier) Success(title, description string) {
	n.push(title, description, false)
	n.log.Info().Str("title", title).Str("description", description).Msg("notificación")
}

// Failure registra una notificación de fallo visible para el usuario.
func (n *Notifier) Failure(title, description string) {
	n.push(title, description, true)
	n.log.Warn().Str("title", title).Str("description", description).Msg("notificación")
}

func (n *Notifier) push(title, description string, destructive bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	ev := Event{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Destructive: destructive,
		At:          time.Now(),
	}
	n.events = append([]Event{ev}, n.events...)
	if len(n.events) > n.cap {
		n.events = n.events[:n.cap]
	}
}

// Recent devuelve los eventos retenidos, más reciente primero.
func (n *Notifier) Recent() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Event, len(n.events))
	copy(out, n.events)
	return out
}
