package dto

import "github.com/shopspring/decimal"

// CrearIntencionRequest body para POST /api/pagos/crear-intencion.
type CrearIntencionRequest struct {
	FacturaID string `json:"facturaId"`
}

// IntencionPagoResponse intención creada en la pasarela para cobrar el saldo pendiente.
type IntencionPagoResponse struct {
	ClientSecret    string          `json:"clientSecret"`
	PaymentIntentID string          `json:"paymentIntentId"`
	Monto           decimal.Decimal `json:"amount"`
	Factura         *FacturaResumen `json:"factura"`
}

// ConfirmarPagoRequest body para POST /api/pagos/confirmar.
type ConfirmarPagoRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	FacturaID       string `json:"facturaId"`
}
