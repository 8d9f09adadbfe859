package analytics

import "github.com/shopspring/decimal"

// DeliveryForOrder estima el envío cobrado: base + por unidad. La cantidad negativa cuenta como 0.
func DeliveryForOrder(itemQuantity decimal.Decimal) decimal.Decimal {
	qty := decimal.Max(decimal.Zero, itemQuantity)
	return deliveryBase.Add(qty.Mul(deliveryPerItem))
}

// DiscountForOrder devuelve el descuento aplicado al pedido, nunca negativo y nunca
// mayor al subtotal de sus líneas. Si el subtotal es desconocido no se acota.
func DiscountForOrder(order OrderRow, itemSubtotal decimal.NullDecimal) decimal.Decimal {
	raw := decimal.Max(decimal.Zero, ToNumber(order.DiscountAmount))
	if !itemSubtotal.Valid {
		return raw
	}
	return decimal.Min(raw, decimal.Max(decimal.Zero, itemSubtotal.Decimal))
}

// GrossForOrder ingreso bruto del pedido.
//
// total_amount ya incluye líneas + envío, así que manda cuando está presente.
// Si falta se reconstruye con subtotal + envío; sin líneas el bruto es 0.
func GrossForOrder(order OrderRow, itemSubtotals, itemQuantities ItemTotals) decimal.Decimal {
	if !order.TotalAmount.Blank() {
		return ToNumber(order.TotalAmount)
	}
	subtotal := itemSubtotals.Lookup(order.ID)
	qty := itemQuantities.Lookup(order.ID)
	if subtotal.Valid && qty.Valid {
		return subtotal.Decimal.Add(DeliveryForOrder(qty.Decimal))
	}
	return decimal.Zero
}

// NetForOrder ingreso neto del pedido (sin el envío que se traslada al courier).
//
// Tres niveles, en este orden:
//  1. con cantidad conocida: total_amount - envío (total_amount ya viene con el descuento aplicado).
//  2. con solo subtotal conocido: subtotal - descuento acotado.
//  3. sin líneas: total_amount.
func NetForOrder(order OrderRow, itemSubtotals, itemQuantities ItemTotals) decimal.Decimal {
	if qty := itemQuantities.Lookup(order.ID); qty.Valid {
		return ToNumber(order.TotalAmount).Sub(DeliveryForOrder(qty.Decimal))
	}
	if subtotal := itemSubtotals.Lookup(order.ID); subtotal.Valid {
		return subtotal.Decimal.Sub(DiscountForOrder(order, subtotal))
	}
	return ToNumber(order.TotalAmount)
}

// FormatMoney formatea con dos decimales.
func FormatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}
