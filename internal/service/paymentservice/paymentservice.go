package paymentservice

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
)

type OrderRepo interface {
	FindByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
}

type Settlement interface {
	Settle(ctx context.Context, orderID int) error
}

type Verifier interface {
	Verify(body []byte, signatureB64 string) error
}

type Service struct {
	orderRepo  OrderRepo
	settlement Settlement
	verifier   Verifier
}

func New(orderRepo OrderRepo, settlement Settlement, verifier Verifier) *Service {
	return &Service{
		orderRepo:  orderRepo,
		settlement: settlement,
		verifier:   verifier,
	}
}

// Validation failures the handler maps to non-2xx. Anything past
// authentication is logged and acknowledged so the gateway stops retrying.
var (
	ErrMissingSignature = errors.New("missing callback signature")
	ErrInvalidSignature = errors.New("invalid callback signature")
	ErrMalformedPayload = errors.New("malformed callback payload")
	ErrUnknownEvent     = errors.New("unknown callback event")
)

const (
	EventOrderPayment string = "order_payment"
	EventSplitPayment string = "split_payment"
)

type callbackEnvelope struct {
	Event string          `json:"event"`
	Body  json.RawMessage `json:"body"`
}

// OrderPayment is the event shape that drives order state.
type OrderPayment struct {
	OrderID     string `json:"order_id"`
	OrderStatus string `json:"order_status"`
	Status      string `json:"status"`
}

func (p OrderPayment) gatewayStatus() string {
	if p.OrderStatus != "" {
		return p.OrderStatus
	}
	return p.Status
}

// SplitPayment notifications carry no order state; they are logged and acked.
type SplitPayment struct {
	OrderID string          `json:"order_id"`
	Split   json.RawMessage `json:"split"`
}

// mapStatus translates the gateway vocabulary into order statuses. An empty
// result means the status is unrecognized and the order must not advance.
func mapStatus(gatewayStatus string) string {
	switch gatewayStatus {
	case "completed", "partial_completed":
		return domain.OrderStatusPaid
	case "rejected", "blocked":
		return domain.OrderStatusCanceled
	case "refunded", "refunded_partially":
		return domain.OrderStatusRefunded
	default:
		return ""
	}
}

// HandleCallback authenticates and processes one gateway webhook delivery.
// Nothing in the body is trusted before the signature checks out.
func (s *Service) HandleCallback(ctx context.Context, rawBody []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	if err := s.verifier.Verify(rawBody, signature); err != nil {
		return ErrInvalidSignature
	}

	var envelope callbackEnvelope
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		return ErrMalformedPayload
	}

	switch envelope.Event {
	case EventSplitPayment:
		var split SplitPayment
		if err := json.Unmarshal(envelope.Body, &split); err != nil {
			return ErrMalformedPayload
		}
		zap.L().Info("split payment notification acknowledged", zap.String("paymentID", split.OrderID))
		return nil
	case EventOrderPayment:
		var payment OrderPayment
		if err := json.Unmarshal(envelope.Body, &payment); err != nil {
			return ErrMalformedPayload
		}
		if payment.OrderID == "" {
			return ErrMalformedPayload
		}
		return s.processOrderPayment(ctx, payment)
	default:
		return ErrUnknownEvent
	}
}

func (s *Service) processOrderPayment(ctx context.Context, payment OrderPayment) error {
	order, err := s.orderRepo.FindByPaymentID(ctx, payment.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		// The gateway may reference an order never persisted or already
		// reconciled; acknowledge so it stops retrying.
		zap.L().Info("callback for unknown payment id acknowledged", zap.String("paymentID", payment.OrderID))
		return nil
	}

	status := mapStatus(payment.gatewayStatus())
	if status == "" {
		zap.L().Warn("unrecognized gateway status, order left as is",
			zap.String("paymentID", payment.OrderID), zap.String("status", payment.gatewayStatus()))
		return nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, status); err != nil {
		return err
	}
	zap.L().Info("order status updated from callback",
		zap.Int("orderID", order.ID), zap.String("status", status))

	if status == domain.OrderStatusPaid {
		if err := s.settlement.Settle(ctx, order.ID); err != nil {
			return err
		}
	}
	return nil
}
