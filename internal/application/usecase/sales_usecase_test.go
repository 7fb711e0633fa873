package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/application/usecase"
	"github.com/jhoicas/portal-isp-api/internal/domain"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/memory"
)

// salesFixture arma el caso de uso con dos asesores sembrados.
func salesFixture(t *testing.T) (*usecase.SalesUseCase, *fakeNotifier) {
	t.Helper()

	roster := []*entity.Sales{
		{
			User: entity.User{
				ID:        "sales-1",
				Name:      "Asesor Uno",
				Email:     "asesor1@example.com",
				Role:      entity.RoleSales,
				Phone:     "+1 555-0001",
				CreatedAt: time.Now().Add(-24 * time.Hour),
			},
			Clients:     []string{"client-1", "client-2"},
			Performance: &entity.Performance{ClientsRegistered: 2, SalesMade: 7},
		},
		{
			User: entity.User{
				ID:        "sales-2",
				Name:      "Asesor Dos",
				Email:     "asesor2@example.com",
				Role:      entity.RoleSales,
				CreatedAt: time.Now().Add(-24 * time.Hour),
			},
			Clients:     []string{"client-3"},
			Performance: &entity.Performance{ClientsRegistered: 1, SalesMade: 3},
		},
	}

	notifier := &fakeNotifier{}
	uc := usecase.NewSalesUseCase(memory.NewSalesRepository(roster), notifier)
	return uc, notifier
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// El merge es parcial: solo los campos enviados cambian; lista de clientes y
// métricas quedan intactas, y el cambio queda persistido.
func TestUpdateSales_MergeParcial(t *testing.T) {
	uc, notifier := salesFixture(t)

	newName := "Asesor Renombrado"
	newPhone := "+1 555-9999"
	out, err := uc.Update("sales-1", dto.UpdateSalesRequest{Name: &newName, Phone: &newPhone})
	require.NoError(t, err)

	assert.Equal(t, newName, out.Name)
	assert.Equal(t, newPhone, out.Phone)
	assert.Equal(t, "asesor1@example.com", out.Email, "los campos no enviados no cambian")
	assert.Equal(t, []string{"client-1", "client-2"}, out.Clients,
		"la lista de clientes asignados no es alcanzable por esta vía")
	require.NotNil(t, out.Performance)
	assert.Equal(t, 7, out.Performance.SalesMade)

	// El cambio sobrevive a una lectura posterior.
	again, err := uc.GetByID("sales-1")
	require.NoError(t, err)
	assert.Equal(t, newName, again.Name)

	assert.Equal(t, []string{"Sales profile updated"}, notifier.successes)
}

// Un patch vacío es un no-op observable: la entidad queda igual.
func TestUpdateSales_PatchVacioNoCambiaNada(t *testing.T) {
	uc, _ := salesFixture(t)

	before, err := uc.GetByID("sales-2")
	require.NoError(t, err)

	out, err := uc.Update("sales-2", dto.UpdateSalesRequest{})
	require.NoError(t, err)

	assert.Equal(t, before.Name, out.Name)
	assert.Equal(t, before.Email, out.Email)
	assert.Equal(t, before.Phone, out.Phone)
	assert.Equal(t, before.Clients, out.Clients)
}

// Id no resuelto: sentinel, sin notificación ni mutación.
func TestUpdateSales_AsesorInexistente(t *testing.T) {
	uc, notifier := salesFixture(t)

	name := "Fantasma"
	_, err := uc.Update("sales-99", dto.UpdateSalesRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrSalesNotFound)
	assert.Empty(t, notifier.successes)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSalesByID_Inexistente(t *testing.T) {
	uc, _ := salesFixture(t)

	_, err := uc.GetByID("sales-99")
	assert.ErrorIs(t, err, domain.ErrSalesNotFound)
}

func TestListSales_EquipoCompleto(t *testing.T) {
	uc, _ := salesFixture(t)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "sales-1", out[0].ID)
	assert.Equal(t, "sales-2", out[1].ID)
}
