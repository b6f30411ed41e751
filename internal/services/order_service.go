package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"press_manager/internal/models"
	"press_manager/internal/pricing"
	"press_manager/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNameRequired     = errors.New("customer name is required")
	ErrPhoneRequired    = errors.New("customer phone is required")
	ErrLocationRequired = errors.New("customer location is required")
	ErrInvalidPhone     = errors.New("phone must be exactly 10 digits")
	ErrNoLineItems      = errors.New("order needs at least one service")
	ErrInvalidTotal     = errors.New("order total is not computable")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderFinalized   = errors.New("order is already delivered or deleted")
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

type CreateOrderRequest struct {
	Name     string            `json:"name"`
	Phone    string            `json:"phone"`
	Location string            `json:"location"`
	Services []models.LineItem `json:"services"`
}

type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (*models.Order, error)
	Advance(ctx context.Context, id string) (*models.Order, error)
	Delete(ctx context.Context, id string) (*models.Order, error)
	ListActive(ctx context.Context, status models.OrderStatus) ([]OrderView, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
	publisher   SnapshotPublisher
}

func NewOrderService(orderRepo repository.OrderRepository, serviceRepo repository.ServiceRepository, publisher SnapshotPublisher) OrderService {
	return &orderService{orderRepo: orderRepo, serviceRepo: serviceRepo, publisher: publisher}
}

func (s *orderService) Create(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Phone == "" {
		return nil, ErrPhoneRequired
	}
	if req.Location == "" {
		return nil, ErrLocationRequired
	}
	if !phonePattern.MatchString(req.Phone) {
		return nil, ErrInvalidPhone
	}
	if len(req.Services) == 0 {
		return nil, ErrNoLineItems
	}

	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}

	total, err := pricing.OrderTotal(catalog, req.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTotal, err)
	}
	if total <= 0 {
		return nil, ErrInvalidTotal
	}

	// Only the operands of the service's pricing mode are persisted: a
	// per-area item never carries a quantity and a per-unit item never
	// carries dimensions.
	items := make([]models.LineItem, len(req.Services))
	for i, item := range req.Services {
		normalized := models.LineItem{ServiceID: item.ServiceID, ImageURL: item.ImageURL}
		if catalog[item.ServiceID].PricingMode == models.PricingPerArea {
			normalized.Length = item.Length
			normalized.Width = item.Width
		} else {
			normalized.Quantity = item.Quantity
		}
		items[i] = normalized
	}

	order := &models.Order{
		ID:         uuid.NewString(),
		Collection: models.CollectionOrders,
		Name:       req.Name,
		Phone:      req.Phone,
		Location:   req.Location,
		Status:     models.OrderNew,
		OrderDate:  time.Now().UTC(),
		Services:   items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		slog.Error("Failed to create order", "error", err)
		return nil, err
	}

	s.publish(ctx, models.CollectionOrders)
	return order, nil
}

func (s *orderService) Advance(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(models.CollectionOrders, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, s.finalizedOrMissing(id)
	}

	next, ok := order.Status.Next()
	if !ok {
		return nil, ErrOrderFinalized
	}

	if next == models.OrderDelivered {
		if err := s.orderRepo.Relocate(id, models.CollectionOrders, models.CollectionDelivered, next); err != nil {
			slog.Error("Failed to deliver order", "error", err, "orderID", id)
			return nil, err
		}
		order.Collection = models.CollectionDelivered
		s.publish(ctx, models.CollectionOrders)
		s.publish(ctx, models.CollectionDelivered)
	} else {
		if err := s.orderRepo.UpdateStatus(models.CollectionOrders, id, next); err != nil {
			slog.Error("Failed to advance order", "error", err, "orderID", id)
			return nil, err
		}
		s.publish(ctx, models.CollectionOrders)
	}

	order.Status = next
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(models.CollectionOrders, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, s.finalizedOrMissing(id)
	}

	if err := s.orderRepo.Relocate(id, models.CollectionOrders, models.CollectionDeleted, models.OrderDeleted); err != nil {
		slog.Error("Failed to delete order", "error", err, "orderID", id)
		return nil, err
	}

	order.Collection = models.CollectionDeleted
	order.Status = models.OrderDeleted
	s.publish(ctx, models.CollectionOrders)
	s.publish(ctx, models.CollectionDeleted)
	return order, nil
}

func (s *orderService) ListActive(ctx context.Context, status models.OrderStatus) ([]OrderView, error) {
	orders, err := s.orderRepo.GetByCollection(models.CollectionOrders)
	if err != nil {
		return nil, err
	}

	if status != "" {
		filtered := make([]models.Order, 0, len(orders))
		for _, order := range orders {
			if order.Status == status {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	return buildOrderViews(catalog, orders), nil
}

// finalizedOrMissing distinguishes an order that reached a terminal
// collection from one that never existed.
func (s *orderService) finalizedOrMissing(id string) error {
	for _, collection := range []string{models.CollectionDelivered, models.CollectionDeleted} {
		archived, err := s.orderRepo.GetByID(collection, id)
		if err == nil && archived != nil {
			return ErrOrderFinalized
		}
	}
	return ErrOrderNotFound
}

func (s *orderService) catalog() (map[string]models.Service, error) {
	services, err := s.serviceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return pricing.Catalog(services), nil
}

func (s *orderService) publish(ctx context.Context, collection string) {
	orders, err := s.orderRepo.GetByCollection(collection)
	if err != nil {
		slog.Error("Failed to load collection for snapshot", "collection", collection, "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, collection, orders); err != nil {
		slog.Error("Failed to publish collection snapshot", "collection", collection, "error", err)
	}
}
