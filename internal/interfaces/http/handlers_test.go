package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-isp-api/internal/application/auth"
	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/application/usecase"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/memory"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/notify"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/pdf"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/seed"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/session"
	apphttp "github.com/jhoicas/portal-isp-api/internal/interfaces/http"
	"github.com/jhoicas/portal-isp-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cableado completo para tests de integración
// ──────────────────────────────────────────────────────────────────────────────

// buildPortalApp levanta la aplicación completa con el dataset determinista
// (seed 1) y sin latencia simulada de login.
func buildPortalApp(t *testing.T) *fiber.App {
	t.Helper()

	dataset, err := seed.Generate(seed.Config{RandomSeed: 1})
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	notifier := notify.New(log, notify.DefaultCapacity)

	clientRepo := memory.NewClientRepository(dataset.Clients)
	salesRepo := memory.NewSalesRepository(dataset.Sales)
	catalog := memory.NewCatalog(dataset.Catalog)

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	authUC := auth.NewUseCase(dataset.DemoAccounts, store, notifier, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, 0)
	authUC.RestoreSession()

	clientUC := usecase.NewClientUseCase(clientRepo, salesRepo, catalog, notifier)
	salesUC := usecase.NewSalesUseCase(salesRepo, notifier)
	catalogUC := usecase.NewCatalogUseCase(catalog)
	dashboardUC := usecase.NewDashboardUseCase(clientRepo, salesRepo)
	statementUC := usecase.NewStatementUseCase(clientRepo, pdf.NewMarotoStatementGenerator())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		SalesUC:     salesUC,
		CatalogUC:   catalogUC,
		DashboardUC: dashboardUC,
		StatementUC: statementUC,
		Notifier:    notifier,
		JWTSecret:   testJWTSecret,
	})
	return app
}

// loginAs hace login con una cuenta demo y devuelve el header Authorization.
func loginAs(t *testing.T, app *fiber.App, email string) (string, dto.UserResponse) {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: seed.DemoPassword})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login de %s debe funcionar", email)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token, out.User
}

// doJSON lanza una petición con header Authorization opcional y cuerpo JSON opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CuentasDemo(t *testing.T) {
	app := buildPortalApp(t)

	cases := []struct {
		email string
		role  string
		id    string
	}{
		{"client@example.com", "client", "client-0"},
		{"sales@example.com", "sales", "sales-0"},
		{"admin@example.com", "admin", "admin-1"},
	}
	for _, tc := range cases {
		_, user := loginAs(t, app, tc.email)
		assert.Equal(t, tc.role, user.Role)
		assert.Equal(t, tc.id, user.ID)
	}
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	app := buildPortalApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "client@example.com", Password: "wrong"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSession_ReflejaLaIdentidadActiva(t *testing.T) {
	app := buildPortalApp(t)

	// Sin login previo no hay sesión activa.
	resp := doJSON(t, app, http.MethodGet, "/api/auth/session", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, user := loginAs(t, app, "client@example.com")

	var current dto.UserResponse
	decodeInto(t, doJSON(t, app, http.MethodGet, "/api/auth/session", "", nil), &current)
	assert.Equal(t, user.ID, current.ID)
	assert.Equal(t, user.Role, current.Role)
}

func TestRutaProtegida_SinToken_Retorna401(t *testing.T) {
	app := buildPortalApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fronteras de rol sobre HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_NoPuedeVerEquipoDeVentas(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "client@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/sales", token, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"client no debe poder listar asesores")
}

func TestClient_NoPuedeListarClientes(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "client@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/clients", token, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSales_NoPuedeComprarPaquetes(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "sales@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/purchase", token,
		dto.PurchaseRequest{PackageOptionID: "basic"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"la compra de paquetes es una vista exclusiva de clientes")
}

func TestAdmin_NoPuedeRegistrarClientes(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "admin@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/register-client", token,
		dto.RegisterClientRequest{Name: "X", Email: "x@example.com", Password: "pw"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el registro de clientes pertenece al asesor, no al admin")
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad de clientes por asesor
// ──────────────────────────────────────────────────────────────────────────────

func TestSales_SoloVeSusClientesAsignados(t *testing.T) {
	app := buildPortalApp(t)
	salesToken, _ := loginAs(t, app, "sales@example.com")
	adminToken, _ := loginAs(t, app, "admin@example.com")

	var mine []dto.ClientResponse
	decodeInto(t, doJSON(t, app, http.MethodGet, "/api/clients", salesToken, nil), &mine)

	var all []dto.ClientResponse
	decodeInto(t, doJSON(t, app, http.MethodGet, "/api/clients", adminToken, nil), &all)

	assert.Len(t, all, 20, "admin ve el total de clientes generados")
	require.NotEmpty(t, mine)
	assert.Less(t, len(mine), len(all), "el asesor ve un subconjunto estricto")

	assigned := make(map[string]bool, len(mine))
	for _, c := range mine {
		assigned[c.ID] = true
	}

	// El asesor puede consultar un cliente propio, pero no uno ajeno.
	resp := doJSON(t, app, http.MethodGet, "/api/clients/"+mine[0].ID, salesToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var foreign string
	for _, c := range all {
		if !assigned[c.ID] {
			foreign = c.ID
			break
		}
	}
	require.NotEmpty(t, foreign)

	resp = doJSON(t, app, http.MethodGet, "/api/clients/"+foreign, salesToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un cliente no asignado debe responder 403")
}

func TestSales_RegistraCliente_ApareceEnSuLista(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "sales@example.com")

	var before []dto.ClientResponse
	decodeInto(t, doJSON(t, app, http.MethodGet, "/api/clients", token, nil), &before)

	resp := doJSON(t, app, http.MethodPost, "/api/register-client", token, dto.RegisterClientRequest{
		Name:     "Nuevo Cliente",
		Email:    "nuevo@example.com",
		Password: "secreto",
		Phone:    "+1 555 0000",
		Balance:  decimal.NewFromInt(25),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.ClientResponse
	decodeInto(t, resp, &created)
	assert.Equal(t, "Nuevo Cliente", created.Name)
	assert.Nil(t, created.CurrentPackage, "un cliente recién registrado no tiene paquete")
	assert.True(t, created.Balance.Equal(decimal.NewFromInt(25)))

	var after []dto.ClientResponse
	decodeInto(t, doJSON(t, app, http.MethodGet, "/api/clients", token, nil), &after)
	assert.Len(t, after, len(before)+1, "el nuevo cliente queda asignado al asesor que lo registró")
}

func TestSales_RegistraEmailDuplicado_Retorna409(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "sales@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/register-client", token, dto.RegisterClientRequest{
		Name:     "Duplicado",
		Email:    "client@example.com",
		Password: "secreto",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo del cliente: recarga, compra y estado de cuenta
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_RecargaYCompra(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "client@example.com")

	// Recarga suficiente para comprar cualquier paquete.
	resp := doJSON(t, app, http.MethodPost, "/api/topups", token,
		dto.TopUpRequest{Amount: decimal.NewFromInt(200)})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var afterTopUp dto.ClientResponse
	decodeInto(t, resp, &afterTopUp)
	require.NotEmpty(t, afterTopUp.TopUps)
	assert.True(t, afterTopUp.TopUps[0].Amount.Equal(decimal.NewFromInt(200)),
		"la recarga nueva encabeza el historial")

	// El catálogo sigue disponible para el cliente.
	var options []dto.PackageOptionResponse
	decodeInto(t, doJSON(t, app, http.MethodGet, "/api/packages", token, nil), &options)
	require.Len(t, options, 4)

	// Compra del paquete básico.
	resp = doJSON(t, app, http.MethodPost, "/api/purchase", token,
		dto.PurchaseRequest{PackageOptionID: "basic"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var afterPurchase dto.ClientResponse
	decodeInto(t, resp, &afterPurchase)
	require.NotNil(t, afterPurchase.CurrentPackage)
	assert.Equal(t, "Basic", afterPurchase.CurrentPackage.Name)
	assert.True(t, afterPurchase.Balance.Equal(
		afterTopUp.Balance.Sub(decimal.NewFromFloat(29.99))),
		"el precio se debita del saldo")

	// El paquete comprado queda visible en /my-package.
	var current dto.PackageResponse
	decodeInto(t, doJSON(t, app, http.MethodGet, "/api/my-package", token, nil), &current)
	assert.Equal(t, afterPurchase.CurrentPackage.ID, current.ID)
}

func TestClient_RecargaInvalida_Retorna400(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "client@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/topups", token,
		dto.TopUpRequest{Amount: decimal.NewFromInt(-5)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClient_CompraSinSaldo_Retorna402(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "client@example.com")

	// Vaciar el saldo comprando hasta que no alcance: el ultimate cuesta 119.99
	// y el saldo seed del demo client es menor tras comprarlo una vez.
	for i := 0; i < 10; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/purchase", token,
			dto.PurchaseRequest{PackageOptionID: "ultimate"})
		resp.Body.Close()
		if resp.StatusCode == http.StatusPaymentRequired {
			return
		}
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	t.Fatal("el saldo nunca se agotó: esperaba un 402")
}

func TestClient_EstadoDeCuentaPDF(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "client@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/topups/statement", token, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil, dashboard y notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_ActualizacionParcial(t *testing.T) {
	app := buildPortalApp(t)
	token, user := loginAs(t, app, "client@example.com")

	newPhone := "+1 555 9999"
	resp := doJSON(t, app, http.MethodPut, "/api/profile", token,
		dto.UpdateProfileRequest{Phone: &newPhone})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.ClientResponse
	decodeInto(t, resp, &updated)
	assert.Equal(t, newPhone, updated.Phone)
	assert.Equal(t, user.Name, updated.Name, "los campos no enviados no cambian")
}

func TestProfile_AsesorActualizaSuPerfil(t *testing.T) {
	app := buildPortalApp(t)
	token, user := loginAs(t, app, "sales@example.com")

	newName := "Demo Sales Renombrado"
	resp := doJSON(t, app, http.MethodPut, "/api/profile", token,
		dto.UpdateProfileRequest{Name: &newName})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.SalesResponse
	decodeInto(t, resp, &updated)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, user.Email, updated.Email, "los campos no enviados no cambian")
	assert.NotEmpty(t, updated.Clients, "la cartera asignada se conserva")
}

func TestAdmin_ActualizaAsesor(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "admin@example.com")

	newPhone := "+1 555 7777"
	resp := doJSON(t, app, http.MethodPut, "/api/sales/sales-1", token,
		dto.UpdateSalesRequest{Phone: &newPhone})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.SalesResponse
	decodeInto(t, resp, &updated)
	assert.Equal(t, "sales-1", updated.ID)
	assert.Equal(t, newPhone, updated.Phone)

	// El cambio queda visible en la lista del equipo.
	var team []dto.SalesResponse
	decodeInto(t, doJSON(t, app, http.MethodGet, "/api/sales", token, nil), &team)
	var found bool
	for _, s := range team {
		if s.ID == "sales-1" {
			found = true
			assert.Equal(t, newPhone, s.Phone)
		}
	}
	assert.True(t, found)
}

func TestAdmin_ActualizaAsesorInexistente_Retorna404(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "admin@example.com")

	newPhone := "+1 555 7777"
	resp := doJSON(t, app, http.MethodPut, "/api/sales/sales-99", token,
		dto.UpdateSalesRequest{Phone: &newPhone})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboard_PorRol(t *testing.T) {
	app := buildPortalApp(t)

	for _, email := range []string{"client@example.com", "sales@example.com", "admin@example.com"} {
		token, _ := loginAs(t, app, email)
		resp := doJSON(t, app, http.MethodGet, "/api/dashboard", token, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "dashboard de %s", email)
	}
}

func TestNotifications_RegistranElLogin(t *testing.T) {
	app := buildPortalApp(t)
	token, _ := loginAs(t, app, "client@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "Login successful")
}

func TestRutaDesconocida_Retorna404JSON(t *testing.T) {
	app := buildPortalApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/no-existe", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}
