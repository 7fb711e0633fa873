package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago de una recarga.
const (
	TopUpMethodCreditCard    = "credit_card"
	TopUpMethodBankTransfer  = "bank_transfer"
	TopUpMethodOnlinePayment = "online_payment"
)

// Estados de una recarga.
const (
	TopUpStatusCompleted = "completed"
	TopUpStatusPending   = "pending"
	TopUpStatusFailed    = "failed"
)

// TopUp es una transacción que acredita saldo a un cliente.
// Inmutable una vez creada; pertenece a exactamente un Client.
type TopUp struct {
	ID     string
	Amount decimal.Decimal // > 0 en el punto de creación
	Date   time.Time
	Method string // credit_card, bank_transfer, online_payment
	Status string // completed, pending, failed
}

// Client es un cliente final del servicio de internet.
type Client struct {
	User
	Balance        decimal.Decimal
	CurrentPackage *InternetPackage // nil = sin paquete activo; como máximo uno
	TopUps         []TopUp          // orden: más reciente primero, solo se antepone
}

// Clone devuelve una copia profunda del cliente. El store en memoria
// reemplaza la entidad completa en cada mutación; nunca se muta in situ.
func (c *Client) Clone() *Client {
	cp := *c
	if c.CurrentPackage != nil {
		pkg := *c.CurrentPackage
		cp.CurrentPackage = &pkg
	}
	cp.TopUps = make([]TopUp, len(c.TopUps))
	copy(cp.TopUps, c.TopUps)
	return &cp
}
