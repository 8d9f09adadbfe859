// Package analytics contiene el motor de rentabilidad del back-office: funciones
// puras que derivan ganancia bruta/neta, descuentos, costo de envío estimado y
// agregados mensuales a partir de pedidos y líneas de pedido crudos.
//
// No hace I/O. Los casos de uso cargan los registros desde el almacén y llaman
// a estas funciones en cada petición; nada se cachea ni se persiste aquí.
package analytics

import "github.com/shopspring/decimal"

// Tarifa de envío: base fija + costo por unidad del pedido.
const (
	DeliveryBaseFee    = 1000
	DeliveryPerItemFee = 130
)

// Estados canónicos de un pedido.
const (
	StatusUnpaid    = "unpaid"
	StatusPaid      = "paid"
	StatusFailed    = "failed"
	StatusPreparing = "preparing"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
)

// FailedLegacyAlias es la ortografía histórica de "failed" que aún vive en la tabla orders.
const FailedLegacyAlias = "faield"

var (
	deliveryBase    = decimal.NewFromInt(DeliveryBaseFee)
	deliveryPerItem = decimal.NewFromInt(DeliveryPerItemFee)
)

// DisplayStatuses devuelve los seis estados que muestra el panel, en orden de presentación.
// Cada llamada devuelve un slice nuevo.
func DisplayStatuses() []string {
	return []string{StatusUnpaid, StatusPaid, StatusFailed, StatusPreparing, StatusDone, StatusCancelled}
}

// ProfitStatuses devuelve los estados que cuentan para rentabilidad.
func ProfitStatuses() []string {
	return []string{StatusPaid, StatusDone, StatusPreparing}
}
