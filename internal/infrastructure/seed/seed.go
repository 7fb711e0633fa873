// Package seed genera el dataset de demostración con el que arranca el
// portal: clientes, asesores de ventas, un admin, el catálogo de paquetes y
// las cuentas demo (una por rol). Los campos variables salen de un
// math/rand.Rand sembrado, así que con el mismo seed el dataset es
// reproducible.
package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// DemoPassword es el secreto compartido de las tres cuentas demo.
// No hay autenticación real: es un portal de demostración.
const DemoPassword = "password123"

// Config parámetros del generador.
type Config struct {
	RandomSeed int64
	Clients    int // cantidad de clientes a generar
	Sales      int // cantidad de asesores a generar
}

// Dataset es el estado inicial completo del portal.
type Dataset struct {
	Clients      []*entity.Client
	Sales        []*entity.Sales
	Admins       []*entity.Admin
	Catalog      []*entity.PackageOption
	DemoAccounts []*entity.DemoAccount
}

// Catalog devuelve las cuatro opciones fijas del catálogo.
// Es la única parte del dataset que no depende del seed.
func Catalog() []*entity.PackageOption {
	return []*entity.PackageOption{
		{ID: "basic", Name: "Basic", DataLimitGB: 50, Price: decimal.NewFromFloat(29.99), ValidityDays: 30},
		{ID: "standard", Name: "Standard", DataLimitGB: 100, Price: decimal.NewFromFloat(49.99), ValidityDays: 30, Popular: true},
		{ID: "premium", Name: "Premium", DataLimitGB: 200, Price: decimal.NewFromFloat(79.99), ValidityDays: 30},
		{ID: "ultimate", Name: "Ultimate", DataLimitGB: 500, Price: decimal.NewFromFloat(119.99), ValidityDays: 30},
	}
}

// Generate produce el dataset inicial.
func Generate(cfg Config) (*Dataset, error) {
	if cfg.Clients <= 0 {
		cfg.Clients = 20
	}
	if cfg.Sales <= 0 {
		cfg.Sales = 5
	}
	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	now := time.Now()

	catalog := Catalog()
	clients := generateClients(rng, now, cfg.Clients, catalog)
	salesRoster := generateSales(rng, now, cfg.Sales, clientIDs(clients))

	admin := &entity.Admin{User: entity.User{
		ID:        "admin-1",
		Name:      "Admin User",
		Email:     "admin@example.com",
		Role:      entity.RoleAdmin,
		CreatedAt: now.Add(-200 * 24 * time.Hour),
	}}

	// Las cuentas demo apuntan a entidades sembradas: la identidad con la
	// que se inicia sesión debe existir en el roster.
	clients[0].Name = "Demo Client"
	clients[0].Email = "client@example.com"
	salesRoster[0].Name = "Demo Sales"
	salesRoster[0].Email = "sales@example.com"

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("seed: hash de la contraseña demo: %w", err)
	}
	demos := []*entity.DemoAccount{
		{User: clients[0].User, SecretHash: hash},
		{User: salesRoster[0].User, SecretHash: hash},
		{User: admin.User, SecretHash: hash},
	}

	return &Dataset{
		Clients:      clients,
		Sales:        salesRoster,
		Admins:       []*entity.Admin{admin},
		Catalog:      catalog,
		DemoAccounts: demos,
	}, nil
}

func generateClients(rng *rand.Rand, now time.Time, count int, catalog []*entity.PackageOption) []*entity.Client {
	out := make([]*entity.Client, 0, count)
	for i := 0; i < count; i++ {
		opt := catalog[rng.Intn(len(catalog))]
		purchasedAt := now.AddDate(0, 0, -rng.Intn(20))
		expiresAt := purchasedAt.AddDate(0, 0, opt.ValidityDays)

		c := &entity.Client{
			User: entity.User{
				ID:        fmt.Sprintf("client-%d", i),
				Name:      fmt.Sprintf("Client %d", i+1),
				Email:     fmt.Sprintf("client%d@example.com", i+1),
				Role:      entity.RoleClient,
				Phone:     fmt.Sprintf("+1 555-%04d", 1000+rng.Intn(9000)),
				Address:   fmt.Sprintf("%d Main St, City %d", 100+rng.Intn(9900), i+1),
				CreatedAt: now.Add(-time.Duration(rng.Intn(115)) * 24 * time.Hour),
			},
			Balance: decimal.NewFromInt(int64(20 + rng.Intn(100))),
			CurrentPackage: &entity.InternetPackage{
				ID:           fmt.Sprintf("pkg-%d", i),
				Name:         opt.Name,
				DataLimitGB:  opt.DataLimitGB,
				DataUsedGB:   float64(rng.Intn(int(opt.DataLimitGB))),
				Price:        opt.Price,
				ValidityDays: opt.ValidityDays,
				PurchasedAt:  purchasedAt,
				ExpiresAt:    expiresAt,
			},
			TopUps: generateTopUps(rng, now, i, 2+rng.Intn(8)),
		}
		out = append(out, c)
	}
	return out
}

// generateTopUps genera el historial de un cliente. El id lleva el índice del
// cliente: los ids de recarga son únicos en todo el dataset, nunca por cliente.
func generateTopUps(rng *rand.Rand, now time.Time, clientIdx, count int) []entity.TopUp {
	methods := []string{entity.TopUpMethodCreditCard, entity.TopUpMethodBankTransfer, entity.TopUpMethodOnlinePayment}
	statuses := []string{entity.TopUpStatusCompleted, entity.TopUpStatusPending, entity.TopUpStatusFailed}

	out := make([]entity.TopUp, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, entity.TopUp{
			ID:     fmt.Sprintf("topup-%d-%d", clientIdx, i),
			Amount: decimal.NewFromInt(int64(10 + rng.Intn(50))),
			Date:   now.AddDate(0, 0, -rng.Intn(60)),
			Method: methods[rng.Intn(len(methods))],
			Status: statuses[rng.Intn(len(statuses))],
		})
	}
	// Invariante de la secuencia: más reciente primero.
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// generateSales reparte los clientes en bloques contiguos entre los asesores.
func generateSales(rng *rand.Rand, now time.Time, count int, clientIDs []string) []*entity.Sales {
	out := make([]*entity.Sales, 0, count)
	for i := 0; i < count; i++ {
		start := i * len(clientIDs) / count
		end := (i + 1) * len(clientIDs) / count
		assigned := append([]string(nil), clientIDs[start:end]...)

		out = append(out, &entity.Sales{
			User: entity.User{
				ID:        fmt.Sprintf("sales-%d", i),
				Name:      fmt.Sprintf("Sales Agent %d", i+1),
				Email:     fmt.Sprintf("sales%d@example.com", i+1),
				Role:      entity.RoleSales,
				Phone:     fmt.Sprintf("+1 555-%04d", 1000+rng.Intn(9000)),
				CreatedAt: now.Add(-time.Duration(rng.Intn(115)) * 24 * time.Hour),
			},
			Clients: assigned,
			Performance: &entity.Performance{
				ClientsRegistered: len(assigned),
				SalesMade:         10 + rng.Intn(50),
			},
		})
	}
	return out
}

func clientIDs(clients []*entity.Client) []string {
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	return ids
}
