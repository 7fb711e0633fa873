package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/application/ports"
	"github.com/jhoicas/portal-isp-api/internal/domain"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
	"github.com/jhoicas/portal-isp-api/internal/domain/repository"
)

// ClientUseCase operaciones de negocio sobre clientes: perfil, compra de
// paquete, recargas y alta de clientes nuevos. Toda mutación reemplaza la
// entidad completa en el store con una copia fusionada y emite exactamente
// una notificación al completarse.
type ClientUseCase struct {
	clients  repository.ClientRepository
	sales    repository.SalesRepository
	catalog  repository.PackageCatalog
	notifier ports.Notifier
	now      func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, sales repository.SalesRepository, catalog repository.PackageCatalog, notifier ports.Notifier) *ClientUseCase {
	return &ClientUseCase{
		clients:  clients,
		sales:    sales,
		catalog:  catalog,
		notifier: notifier,
		now:      time.Now,
	}
}

// GetByID devuelve el cliente o ErrClientNotFound.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	c, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToClientResponse(c), nil
}

// List devuelve el roster visible para quien consulta: el admin ve todo,
// un asesor solo los clientes cuyos ids están en su lista asignada.
func (uc *ClientUseCase) List(requestorRole entity.Role, requestorID string) ([]*dto.ClientResponse, error) {
	all, err := uc.clients.List()
	if err != nil {
		return nil, err
	}

	if requestorRole == entity.RoleAdmin {
		out := make([]*dto.ClientResponse, 0, len(all))
		for _, c := range all {
			out = append(out, dto.ToClientResponse(c))
		}
		return out, nil
	}

	agent, err := uc.sales.GetByID(requestorID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(agent.Clients))
	for _, c := range all {
		if agent.ManagesClient(c.ID) {
			out = append(out, dto.ToClientResponse(c))
		}
	}
	return out, nil
}

// UpdateProfile fusiona los campos enviados sobre el cliente. Campos no
// enviados quedan intactos; id y role no son modificables por contrato
// (el DTO ni siquiera los transporta). Id no resuelto: ErrClientNotFound.
func (uc *ClientUseCase) UpdateProfile(clientID string, in dto.UpdateProfileRequest) (*dto.ClientResponse, error) {
	c, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}

	merged := c.Clone()
	applyUserPatch(&merged.User, in.Name, in.Email, in.Phone, in.Address)
	if err := uc.clients.Update(merged); err != nil {
		return nil, err
	}

	uc.notifier.Success("Profile updated", "Your profile has been updated successfully")
	return dto.ToClientResponse(merged), nil
}

// PurchasePackage compra una opción del catálogo: construye el paquete con
// dataUsed=0 y expiresAt = ahora + validez, lo asigna como paquete actual
// (reemplazando cualquier anterior, sin histórico) y debita el precio.
// Exige saldo suficiente: el núcleo no confía en pre-chequeos de la UI.
func (uc *ClientUseCase) PurchasePackage(clientID, packageOptionID string) (*dto.ClientResponse, error) {
	opt, err := uc.catalog.GetOption(packageOptionID)
	if err != nil {
		return nil, err
	}
	c, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if c.Balance.LessThan(opt.Price) {
		return nil, domain.ErrInsufficientBalance
	}

	now := uc.now()
	merged := c.Clone()
	merged.CurrentPackage = &entity.InternetPackage{
		ID:           "pkg-" + uuid.New().String(),
		Name:         opt.Name,
		DataLimitGB:  opt.DataLimitGB,
		DataUsedGB:   0,
		Price:        opt.Price,
		ValidityDays: opt.ValidityDays,
		PurchasedAt:  now,
		ExpiresAt:    now.AddDate(0, 0, opt.ValidityDays),
	}
	merged.Balance = c.Balance.Sub(opt.Price)
	if err := uc.clients.Update(merged); err != nil {
		return nil, err
	}

	uc.notifier.Success("Package purchased", "You have successfully purchased the "+opt.Name+" package")
	return dto.ToClientResponse(merged), nil
}

// AddTopUp acredita saldo: crea la recarga (completed, credit_card, ahora),
// la antepone al historial y suma el monto. Montos <= 0 se rechazan.
func (uc *ClientUseCase) AddTopUp(clientID string, amount decimal.Decimal) (*dto.ClientResponse, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}

	topUp := entity.TopUp{
		ID:     "topup-" + uuid.New().String(),
		Amount: amount,
		Date:   uc.now(),
		Method: entity.TopUpMethodCreditCard,
		Status: entity.TopUpStatusCompleted,
	}
	merged := c.Clone()
	// Invariante del historial: más reciente primero.
	merged.TopUps = append([]entity.TopUp{topUp}, merged.TopUps...)
	merged.Balance = c.Balance.Add(amount)
	if err := uc.clients.Update(merged); err != nil {
		return nil, err
	}

	uc.notifier.Success("Top-up successful", "Your account has been topped up with $"+amount.StringFixed(2))
	return dto.ToClientResponse(merged), nil
}

// Register da de alta un cliente nuevo: id y createdAt generados, historial
// vacío, sin paquete, saldo el indicado (o 0). El password se descarta aquí
// mismo: nunca se almacena. Si lo registra un asesor (registeredBy no vacío),
// el cliente queda asignado a su lista y sube su métrica de registros.
func (uc *ClientUseCase) Register(registeredBy string, in dto.RegisterClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Balance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.clients.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	client := &entity.Client{
		User: entity.User{
			ID:        "client-" + uuid.New().String(),
			Name:      in.Name,
			Email:     in.Email,
			Role:      entity.RoleClient,
			Phone:     in.Phone,
			Address:   in.Address,
			CreatedAt: uc.now(),
		},
		Balance: in.Balance,
		TopUps:  []entity.TopUp{},
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}

	if registeredBy != "" {
		if err := uc.assignToAgent(registeredBy, client.ID); err != nil {
			return nil, err
		}
	}

	uc.notifier.Success("Client registered", "New client "+client.Name+" has been registered successfully")
	return dto.ToClientResponse(client), nil
}

// assignToAgent agrega el cliente a la lista del asesor que lo registró.
func (uc *ClientUseCase) assignToAgent(salesID, clientID string) error {
	agent, err := uc.sales.GetByID(salesID)
	if err != nil {
		return err
	}
	merged := agent.Clone()
	merged.Clients = append(merged.Clients, clientID)
	if merged.Performance == nil {
		merged.Performance = &entity.Performance{}
	}
	merged.Performance.ClientsRegistered++
	return uc.sales.Update(merged)
}

// applyUserPatch aplica los campos no nulos sobre la identidad base.
func applyUserPatch(u *entity.User, name, email, phone, address *string) {
	if name != nil {
		u.Name = *name
	}
	if email != nil {
		u.Email = *email
	}
	if phone != nil {
		u.Phone = *phone
	}
	if address != nil {
		u.Address = *address
	}
}
