package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/application/usecase"
	"github.com/jhoicas/portal-isp-api/internal/domain"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// ClientsHandler maneja la gestión de clientes por asesores y admin.
type ClientsHandler struct {
	clientUC *usecase.ClientUseCase
	salesUC  *usecase.SalesUseCase
}

// NewClientsHandler construye el handler.
func NewClientsHandler(clientUC *usecase.ClientUseCase, salesUC *usecase.SalesUseCase) *ClientsHandler {
	return &ClientsHandler{clientUC: clientUC, salesUC: salesUC}
}

// requireSalesOrAdmin chequeo de página: la vista de clientes es para
// asesores y admin. Redundante con el RequireRole de la ruta, a propósito.
func requireSalesOrAdmin(c *fiber.Ctx) error {
	role := entity.Role(GetRole(c))
	if role != entity.RoleSales && role != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "STAFF_ONLY", Message: "vista exclusiva de asesores y admin"})
	}
	return nil
}

// List godoc
// @Summary      Clientes visibles para quien consulta
// @Description  El admin ve el roster completo; un asesor solo sus asignados.
// @Tags         clients
// @Produce      json
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	if err := requireSalesOrAdmin(c); err != nil {
		return err
	}
	out, err := h.clientUC.List(entity.Role(GetRole(c)), GetUserID(c))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un cliente
// @Tags         clients
// @Produce      json
// @Param        id  path  string  true  "id del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientsHandler) GetByID(c *fiber.Ctx) error {
	if err := requireSalesOrAdmin(c); err != nil {
		return err
	}
	clientID := c.Params("id")

	// Un asesor solo puede consultar clientes de su propia lista.
	if entity.Role(GetRole(c)) == entity.RoleSales {
		agent, err := h.salesUC.GetByID(GetUserID(c))
		if err != nil {
			return notFound(c, err)
		}
		if !containsID(agent.Clients, clientID) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_ASSIGNED", Message: "el cliente no está asignado a este asesor"})
		}
	}

	out, err := h.clientUC.GetByID(clientID)
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar un cliente nuevo
// @Description  El cliente queda asignado al asesor que lo registra.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterClientRequest  true  "datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/register-client [post]
func (h *ClientsHandler) Register(c *fiber.Ctx) error {
	// Chequeo de página: el alta es una vista solo de asesores.
	if entity.Role(GetRole(c)) != entity.RoleSales {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SALES_ONLY", Message: "vista exclusiva de asesores"})
	}
	var in dto.RegisterClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.clientUC.Register(GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos; balance no puede ser negativo"})
		case domain.ErrEmailAlreadyExists:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return notFound(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
