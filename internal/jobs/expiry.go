// Package jobs agrupa las tareas programadas del portal. Son solo de
// observación: reportan estado al log sin mutar el dataset.
package jobs

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/portal-isp-api/internal/domain/repository"
	"github.com/jhoicas/portal-isp-api/pkg/logger"
)

// ExpiryReportSchedule corre el reporte cada medianoche UTC.
const ExpiryReportSchedule = "0 0 * * *"

// Scheduler registra y ejecuta las tareas cron del portal.
type Scheduler struct {
	cron    *cron.Cron
	clients repository.ClientRepository
	log     *logger.Logger
}

// NewScheduler construye el scheduler con el reporte de vencimientos registrado.
func NewScheduler(clients repository.ClientRepository, log *logger.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		clients: clients,
		log:     log,
	}
	if _, err := s.cron.AddFunc(ExpiryReportSchedule, s.ReportExpiredPackages); err != nil {
		return nil, err
	}
	return s, nil
}

// Start arranca el cron en su propia goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop detiene el cron y espera a que terminen las tareas en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// ReportExpiredPackages cuenta cuántos clientes tienen paquete vencido y lo
// registra. No marca ni muta nada: el vencimiento se deriva de ExpiresAt.
func (s *Scheduler) ReportExpiredPackages() {
	clients, err := s.clients.List()
	if err != nil {
		s.log.Error().Err(err).Msg("reporte de vencimientos: listar clientes")
		return
	}
	now := time.Now()
	var active, expired, none int
	for _, c := range clients {
		switch {
		case c.CurrentPackage == nil:
			none++
		case c.CurrentPackage.Expired(now):
			expired++
		default:
			active++
		}
	}
	s.log.Info().
		Int("active", active).
		Int("expired", expired).
		Int("without_package", none).
		Msg("reporte de paquetes")
}
