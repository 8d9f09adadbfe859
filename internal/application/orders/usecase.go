// Package orders contiene los casos de uso de la pantalla de pedidos del back-office:
// listado con líneas y cambio de estado.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	engine "github.com/jhoicas/backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// UseCase lista pedidos y cambia su estado.
type UseCase struct {
	repo  repository.OrderRepository
	tx    repository.OrderTxRunner
	clock func() time.Time
}

// NewUseCase construye el caso de uso. repo se usa para lecturas; tx para el cambio de estado.
func NewUseCase(repo repository.OrderRepository, tx repository.OrderTxRunner) *UseCase {
	return &UseCase{repo: repo, tx: tx, clock: time.Now}
}

// ── Listado ───────────────────────────────────────────────────────────────────

// ListOrders devuelve los pedidos (más recientes primero) con sus líneas.
// El filtro "failed" también trae los pedidos guardados con el alias "faield".
func (uc *UseCase) ListOrders(ctx context.Context, in dto.ListOrdersRequest) (*dto.OrderListDTO, error) {
	filter := entity.OrderFilter{}
	if strings.TrimSpace(in.Status) != "" {
		status, err := parseDisplayStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Statuses = []string{status}
		if status == engine.StatusFailed {
			filter.Statuses = append(filter.Statuses, engine.FailedLegacyAlias)
		}
	}

	orders, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("orders.List: %w", err)
	}
	orders = searchOrders(orders, in.Q)

	out := &dto.OrderListDTO{Orders: make([]dto.OrderDTO, 0, len(orders))}
	if len(orders) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	items, err := uc.repo.ListItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("orders.ListItems: %w", err)
	}
	byOrder := make(map[string][]*entity.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	for _, o := range orders {
		out.Orders = append(out.Orders, toOrderDTO(o, byOrder[o.ID]))
	}
	out.Total = len(out.Orders)
	return out, nil
}

// searchOrders filtra por subcadena (sin distinguir mayúsculas) sobre id, usuario,
// nombre completo, email, transacción, orden Paymob y estado crudo.
func searchOrders(orders []*entity.Order, q string) []*entity.Order {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return orders
	}
	matched := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		fields := []string{o.ID, o.UserID, o.CustomerName(), o.Email, o.TransactionID, o.PaymobOrderID, o.Status}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), needle) {
				matched = append(matched, o)
				break
			}
		}
	}
	return matched
}

func toOrderDTO(o *entity.Order, items []*entity.OrderItem) dto.OrderDTO {
	key, label := statusView(o.Status)
	lines := make([]dto.OrderItemDTO, 0, len(items))
	totalQty := decimal.Zero
	for _, item := range items {
		lines = append(lines, dto.OrderItemDTO{
			ID:        item.ID,
			VariantID: item.VariantID,
			Price:     item.Price,
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
		})
		totalQty = totalQty.Add(item.Quantity)
	}
	return dto.OrderDTO{
		ID:             o.ID,
		UserID:         o.UserID,
		Status:         o.Status,
		StatusKey:      key,
		StatusLabel:    label,
		TotalAmount:    o.TotalAmount,
		DiscountAmount: o.DiscountAmount,
		PromoCodeID:    o.PromoCodeID,
		CustomerName:   o.CustomerName(),
		CompanyName:    o.CompanyName,
		Email:          o.Email,
		TransactionID:  o.TransactionID,
		PaymobOrderID:  o.PaymobOrderID,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Items:          lines,
		ItemLines:      len(lines),
		TotalQuantity:  totalQty,
	}
}

// statusView clave normalizada y etiqueta. Un estado fuera de los seis visibles
// no tiene clave y se rotula con su valor crudo, o "Unknown" si está vacío.
func statusView(raw string) (key, label string) {
	status, ok := engine.NormalizeOrderStatus(raw)
	if ok && engine.IsDisplayStatus(status) {
		return status, engine.StatusLabel(status)
	}
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return "", trimmed
	}
	return "", "Unknown"
}

// ── Cambio de estado ──────────────────────────────────────────────────────────

// UpdateStatus cambia el estado de un pedido. Si el estado normalizado actual ya es
// el pedido, no escribe nada. Cuando la base rechaza "failed" se reintenta con el
// alias histórico "faield".
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*dto.UpdateOrderStatusResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: id de pedido %q", domain.ErrInvalidInput, id)
	}
	next, err := parseDisplayStatus(in.Status)
	if err != nil {
		return nil, err
	}

	resp := &dto.UpdateOrderStatusResponse{ID: id, Status: next}
	err = uc.tx.RunOrders(ctx, func(orders repository.OrderRepository) error {
		current, err := orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if normalized, _ := engine.NormalizeOrderStatus(current.Status); normalized == next {
			resp.StoredStatus = current.Status
			return nil
		}
		if err := orders.UpdateStatus(ctx, id, next, uc.clock()); err != nil {
			return err
		}
		resp.StoredStatus = next
		resp.Changed = true
		return nil
	})
	if err == nil {
		return resp, nil
	}
	if next != engine.StatusFailed || errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("orders.UpdateStatus: %w", err)
	}

	log.Warn().Err(err).Str("order_id", id).Msg("estado failed rechazado, reintentando con alias faield")
	retryErr := uc.tx.RunOrders(ctx, func(orders repository.OrderRepository) error {
		return orders.UpdateStatus(ctx, id, engine.FailedLegacyAlias, uc.clock())
	})
	if retryErr != nil {
		return nil, fmt.Errorf("orders.UpdateStatus: %w", retryErr)
	}
	resp.StoredStatus = engine.FailedLegacyAlias
	resp.Changed = true
	return resp, nil
}

// parseDisplayStatus acepta uno de los seis estados visibles (o el alias "faield").
func parseDisplayStatus(raw string) (string, error) {
	status, ok := engine.NormalizeOrderStatus(raw)
	if !ok || !engine.IsDisplayStatus(status) {
		return "", fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, raw)
	}
	return status, nil
}
