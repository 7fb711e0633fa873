package usecase

import (
	"context"

	"github.com/jhoicas/portal-isp-api/internal/application/ports"
	"github.com/jhoicas/portal-isp-api/internal/domain"
	"github.com/jhoicas/portal-isp-api/internal/domain/repository"
)

// StatementUseCase genera el extracto de recargas de un cliente en PDF.
type StatementUseCase struct {
	clients   repository.ClientRepository
	generator ports.StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(clients repository.ClientRepository, generator ports.StatementPDFGenerator) *StatementUseCase {
	return &StatementUseCase{clients: clients, generator: generator}
}

// Generate devuelve los bytes del PDF del extracto del cliente.
func (uc *StatementUseCase) Generate(ctx context.Context, clientID string) ([]byte, error) {
	c, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateStatement(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return pdf, nil
}
