package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-isp-api/internal/application/auth"
	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/application/usecase"
	"github.com/jhoicas/portal-isp-api/internal/domain"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// ClientHandler maneja las vistas del cliente autenticado: perfil, paquete
// activo, recargas, compra y catálogo.
type ClientHandler struct {
	clientUC    *usecase.ClientUseCase
	salesUC     *usecase.SalesUseCase
	catalogUC   *usecase.CatalogUseCase
	statementUC *usecase.StatementUseCase
	authUC      *auth.UseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(clientUC *usecase.ClientUseCase, salesUC *usecase.SalesUseCase, catalogUC *usecase.CatalogUseCase, statementUC *usecase.StatementUseCase, authUC *auth.UseCase) *ClientHandler {
	return &ClientHandler{
		clientUC:    clientUC,
		salesUC:     salesUC,
		catalogUC:   catalogUC,
		statementUC: statementUC,
		authUC:      authUC,
	}
}

// requireClient re-deriva en el handler el chequeo grueso "esta vista es
// solo para clientes", además del RequireRole de la ruta. Las páginas del
// portal original hacían ambas comprobaciones y se conservan las dos.
func requireClient(c *fiber.Ctx) error {
	if GetRole(c) != string(entity.RoleClient) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CLIENT_ONLY", Message: "vista exclusiva de clientes"})
	}
	return nil
}

// GetProfile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *ClientHandler) GetProfile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	switch entity.Role(GetRole(c)) {
	case entity.RoleClient:
		out, err := h.clientUC.GetByID(userID)
		if err != nil {
			return notFound(c, err)
		}
		return c.JSON(out)
	case entity.RoleSales:
		out, err := h.salesUC.GetByID(userID)
		if err != nil {
			return notFound(c, err)
		}
		return c.JSON(out)
	default:
		// El admin no vive en los repositorios; su perfil sale del roster demo.
		u := h.authUC.UserByID(userID)
		if u == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.JSON(dto.ToUserResponse(u))
	}
}

// UpdateProfile godoc
// @Summary      Actualizar el perfil propio (merge parcial)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *ClientHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	switch entity.Role(GetRole(c)) {
	case entity.RoleClient:
		out, err := h.clientUC.UpdateProfile(userID, in)
		if err != nil {
			return notFound(c, err)
		}
		return c.JSON(out)
	case entity.RoleSales:
		out, err := h.salesUC.Update(userID, dto.UpdateSalesRequest(in))
		if err != nil {
			return notFound(c, err)
		}
		return c.JSON(out)
	default:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PROFILE_READONLY", Message: "el perfil admin no es editable"})
	}
}

// MyPackage godoc
// @Summary      Paquete activo del cliente
// @Tags         packages
// @Produce      json
// @Success      200  {object}  dto.PackageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/my-package [get]
func (h *ClientHandler) MyPackage(c *fiber.Ctx) error {
	if err := requireClient(c); err != nil {
		return err
	}
	out, err := h.clientUC.GetByID(GetUserID(c))
	if err != nil {
		return notFound(c, err)
	}
	if out.CurrentPackage == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_PACKAGE", Message: "no hay paquete activo"})
	}
	return c.JSON(out.CurrentPackage)
}

// ListTopUps godoc
// @Summary      Historial de recargas (más reciente primero)
// @Tags         topups
// @Produce      json
// @Success      200  {array}  dto.TopUpResponse
// @Router       /api/topups [get]
func (h *ClientHandler) ListTopUps(c *fiber.Ctx) error {
	if err := requireClient(c); err != nil {
		return err
	}
	out, err := h.clientUC.GetByID(GetUserID(c))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(out.TopUps)
}

// AddTopUp godoc
// @Summary      Recargar saldo
// @Tags         topups
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TopUpRequest  true  "monto > 0"
// @Success      200   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/topups [post]
func (h *ClientHandler) AddTopUp(c *fiber.Ctx) error {
	if err := requireClient(c); err != nil {
		return err
	}
	var in dto.TopUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.clientUC.AddTopUp(GetUserID(c), in.Amount)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el monto debe ser mayor que cero"})
		}
		return notFound(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Extracto de recargas en PDF
// @Tags         topups
// @Produce      application/pdf
// @Success      200  {file}  byte
// @Router       /api/topups/statement [get]
func (h *ClientHandler) Statement(c *fiber.Ctx) error {
	if err := requireClient(c); err != nil {
		return err
	}
	pdfBytes, err := h.statementUC.Generate(c.Context(), GetUserID(c))
	if err != nil {
		return notFound(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="statement.pdf"`)
	return c.Send(pdfBytes)
}

// Purchase godoc
// @Summary      Comprar un paquete del catálogo
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseRequest  true  "id de la opción"
// @Success      200   {object}  dto.ClientResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase [post]
func (h *ClientHandler) Purchase(c *fiber.Ctx) error {
	if err := requireClient(c); err != nil {
		return err
	}
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.clientUC.PurchasePackage(GetUserID(c), in.PackageOptionID)
	if err != nil {
		if err == domain.ErrInsufficientBalance {
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: "saldo insuficiente para esta compra"})
		}
		return notFound(c, err)
	}
	return c.JSON(out)
}

// ListPackages godoc
// @Summary      Catálogo de paquetes comprables
// @Tags         packages
// @Produce      json
// @Success      200  {array}  dto.PackageOptionResponse
// @Router       /api/packages [get]
func (h *ClientHandler) ListPackages(c *fiber.Ctx) error {
	if err := requireClient(c); err != nil {
		return err
	}
	out, err := h.catalogUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// notFound mapea errores de entidad no resuelta a 404; el resto a 500.
func notFound(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrClientNotFound, domain.ErrSalesNotFound, domain.ErrPackageNotFound, domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
