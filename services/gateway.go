package services

import (
	"math/rand"

	"github.com/adrianhartanto/cafe-order-app/utils"
)

// PaymentGateway is the boundary to the external payment processor. The real
// thing is slow and can decline; callers must treat every call as fallible.
type PaymentGateway interface {
	Authorize(amount float64, method string) error
	Refund(transactionID string) error
}

// SimulatedGateway stands in for a PG sandbox: most authorizations are
// approved, refunds almost always go through.
type SimulatedGateway struct {
	AuthorizeRate float64
	RefundRate    float64
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{
		AuthorizeRate: 0.95,
		RefundRate:    0.98,
	}
}

func (g *SimulatedGateway) Authorize(amount float64, method string) error {
	if rand.Float64() < g.AuthorizeRate {
		return nil
	}
	return utils.NewExternalService("payment authorization declined")
}

func (g *SimulatedGateway) Refund(transactionID string) error {
	if rand.Float64() < g.RefundRate {
		return nil
	}
	return utils.NewExternalService("refund declined by payment gateway")
}
