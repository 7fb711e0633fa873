package ports

import (
	"context"

	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// StatementPDFGenerator genera el extracto de recargas de un cliente en PDF.
type StatementPDFGenerator interface {
	GenerateStatement(ctx context.Context, client *entity.Client) ([]byte, error)
}
