package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-isp-api/internal/application/auth"
	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/application/usecase"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/notify"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ClientUC    *usecase.ClientUseCase
	SalesUC     *usecase.SalesUseCase
	CatalogUC   *usecase.CatalogUseCase
	DashboardUC *usecase.DashboardUseCase
	StatementUC *usecase.StatementUseCase
	Notifier    *notify.Notifier
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas públicas (login, sesión)
// no pasan por el gate; todo lo demás exige Bearer Token y, donde aplica,
// un rol concreto.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	// Dashboard y notificaciones (todos los roles)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Notifier)
	protected.Get("/dashboard", RequireRole(entity.RoleClient, entity.RoleSales, entity.RoleAdmin), dashboardHandler.Summary)
	protected.Get("/notifications", dashboardHandler.Notifications)

	// Perfil propio (todos los roles)
	clientHandler := NewClientHandler(deps.ClientUC, deps.SalesUC, deps.CatalogUC, deps.StatementUC, deps.AuthUC)
	protected.Get("/profile", clientHandler.GetProfile)
	protected.Put("/profile", clientHandler.UpdateProfile)

	// Vistas de cliente
	clientOnly := RequireRole(entity.RoleClient)
	protected.Get("/my-package", clientOnly, clientHandler.MyPackage)
	protected.Get("/topups", clientOnly, clientHandler.ListTopUps)
	protected.Post("/topups", clientOnly, clientHandler.AddTopUp)
	protected.Get("/topups/statement", clientOnly, clientHandler.Statement)
	protected.Post("/purchase", clientOnly, clientHandler.Purchase)
	protected.Get("/packages", clientOnly, clientHandler.ListPackages)

	// Gestión de clientes (asesores y admin)
	clientsHandler := NewClientsHandler(deps.ClientUC, deps.SalesUC)
	protected.Get("/clients", RequireRole(entity.RoleSales, entity.RoleAdmin), clientsHandler.List)
	protected.Get("/clients/:id", RequireRole(entity.RoleSales, entity.RoleAdmin), clientsHandler.GetByID)
	protected.Post("/register-client", RequireRole(entity.RoleSales), clientsHandler.Register)

	// Equipo de ventas (solo admin)
	salesHandler := NewSalesHandler(deps.SalesUC)
	protected.Get("/sales", RequireRole(entity.RoleAdmin), salesHandler.List)
	protected.Put("/sales/:id", RequireRole(entity.RoleAdmin), salesHandler.Update)

	// Rutas no registradas: cuerpo 404 propio en lugar del texto plano de Fiber.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	})
}
