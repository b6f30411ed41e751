package services

import (
	"context"
	"errors"
	"testing"

	"press_manager/internal/models"
)

func washAndBanner() *fakeServiceRepo {
	return newFakeServiceRepo(
		models.Service{ID: "wash", Name: "Wash", Price: "10.00", PricingMode: models.PricingPerUnit},
		models.Service{ID: "banner", Name: "Banner", Price: "25.50", PricingMode: models.PricingPerArea},
	)
}

func validOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Name:     "Ahmed",
		Phone:    "0501234567",
		Location: "Downtown",
		Services: []models.LineItem{{ServiceID: "wash", Quantity: "5"}},
	}
}

func TestOrderServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid order starts new in the active collection", func(t *testing.T) {
		orderRepo := newFakeOrderRepo()
		publisher := &fakePublisher{}
		svc := NewOrderService(orderRepo, washAndBanner(), publisher)

		order, err := svc.Create(ctx, validOrderRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != models.OrderNew {
			t.Fatalf("status = %q, want new", order.Status)
		}
		if order.Collection != models.CollectionOrders {
			t.Fatalf("collection = %q", order.Collection)
		}
		if order.ID == "" || order.OrderDate.IsZero() {
			t.Fatal("id and order date must be assigned")
		}
		if publisher.count(models.CollectionOrders) != 1 {
			t.Fatalf("orders snapshot published %d times, want 1", publisher.count(models.CollectionOrders))
		}
	})

	t.Run("validation failures are distinct and write nothing", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*CreateOrderRequest)
			wantErr error
		}{
			{"empty name", func(r *CreateOrderRequest) { r.Name = "" }, ErrNameRequired},
			{"empty phone", func(r *CreateOrderRequest) { r.Phone = "" }, ErrPhoneRequired},
			{"empty location", func(r *CreateOrderRequest) { r.Location = "" }, ErrLocationRequired},
			{"short phone", func(r *CreateOrderRequest) { r.Phone = "05012345" }, ErrInvalidPhone},
			{"non-digit phone", func(r *CreateOrderRequest) { r.Phone = "050123456a" }, ErrInvalidPhone},
			{"no line items", func(r *CreateOrderRequest) { r.Services = nil }, ErrNoLineItems},
			{"invalid quantity", func(r *CreateOrderRequest) {
				r.Services = []models.LineItem{{ServiceID: "wash", Quantity: "abc"}}
			}, ErrInvalidTotal},
			{"unknown service", func(r *CreateOrderRequest) {
				r.Services = []models.LineItem{{ServiceID: "gone", Quantity: "1"}}
			}, ErrInvalidTotal},
			{"zero total", func(r *CreateOrderRequest) {
				r.Services = []models.LineItem{{ServiceID: "wash", Quantity: "0"}}
			}, ErrInvalidTotal},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				orderRepo := newFakeOrderRepo()
				svc := NewOrderService(orderRepo, washAndBanner(), &fakePublisher{})

				req := validOrderRequest()
				tc.mutate(&req)

				if _, err := svc.Create(ctx, req); !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if len(orderRepo.orders) != 0 {
					t.Fatal("validation failure must not write")
				}
			})
		}
	})

	t.Run("line items keep only their mode's operands", func(t *testing.T) {
		orderRepo := newFakeOrderRepo()
		svc := NewOrderService(orderRepo, washAndBanner(), &fakePublisher{})

		req := validOrderRequest()
		req.Services = []models.LineItem{
			{ServiceID: "banner", Length: "2", Width: "3", Quantity: "7"},
			{ServiceID: "wash", Quantity: "5", Length: "9"},
		}

		order, err := svc.Create(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := orderRepo.GetByID(models.CollectionOrders, order.ID)
		if stored.Services[0].Quantity != "" {
			t.Fatal("per-area item must not carry a quantity")
		}
		if stored.Services[1].Length != "" || stored.Services[1].Width != "" {
			t.Fatal("per-unit item must not carry dimensions")
		}
	})

	t.Run("one invalid line poisons an otherwise valid order", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderRepo(), washAndBanner(), &fakePublisher{})
		req := validOrderRequest()
		req.Services = []models.LineItem{
			{ServiceID: "wash", Quantity: "5"},
			{ServiceID: "banner", Length: "abc", Width: "2"},
		}
		if _, err := svc.Create(ctx, req); !errors.Is(err, ErrInvalidTotal) {
			t.Fatalf("expected ErrInvalidTotal, got %v", err)
		}
	})
}

func TestOrderServiceAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("walks new to delivered and relocates", func(t *testing.T) {
		orderRepo := newFakeOrderRepo()
		publisher := &fakePublisher{}
		svc := NewOrderService(orderRepo, washAndBanner(), publisher)

		order, err := svc.Create(ctx, validOrderRequest())
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		for _, want := range []models.OrderStatus{models.OrderWaiting, models.OrderReady} {
			advanced, err := svc.Advance(ctx, order.ID)
			if err != nil {
				t.Fatalf("advance to %s: %v", want, err)
			}
			if advanced.Status != want {
				t.Fatalf("status = %q, want %q", advanced.Status, want)
			}
		}

		delivered, err := svc.Advance(ctx, order.ID)
		if err != nil {
			t.Fatalf("advance to delivered: %v", err)
		}
		if delivered.Status != models.OrderDelivered {
			t.Fatalf("status = %q, want delivered", delivered.Status)
		}

		if active, _ := orderRepo.GetByID(models.CollectionOrders, order.ID); active != nil {
			t.Fatal("order still present in the active collection")
		}
		archived, _ := orderRepo.GetByID(models.CollectionDelivered, order.ID)
		if archived == nil {
			t.Fatal("order missing from the delivered collection")
		}
		if publisher.count(models.CollectionDelivered) != 1 {
			t.Fatal("delivered snapshot not published")
		}
	})

	t.Run("rejected on terminal orders", func(t *testing.T) {
		orderRepo := newFakeOrderRepo()
		svc := NewOrderService(orderRepo, washAndBanner(), &fakePublisher{})

		order, _ := svc.Create(ctx, validOrderRequest())
		for i := 0; i < 3; i++ {
			if _, err := svc.Advance(ctx, order.ID); err != nil {
				t.Fatalf("advance %d: %v", i, err)
			}
		}

		if _, err := svc.Advance(ctx, order.ID); !errors.Is(err, ErrOrderFinalized) {
			t.Fatalf("expected ErrOrderFinalized, got %v", err)
		}
		if _, err := svc.Delete(ctx, order.ID); !errors.Is(err, ErrOrderFinalized) {
			t.Fatalf("expected ErrOrderFinalized on delete, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderRepo(), washAndBanner(), &fakePublisher{})
		if _, err := svc.Advance(ctx, "nope"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderServiceDelete(t *testing.T) {
	ctx := context.Background()
	orderRepo := newFakeOrderRepo()
	publisher := &fakePublisher{}
	svc := NewOrderService(orderRepo, washAndBanner(), publisher)

	order, _ := svc.Create(ctx, validOrderRequest())
	if _, err := svc.Advance(ctx, order.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}

	deleted, err := svc.Delete(ctx, order.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Status != models.OrderDeleted {
		t.Fatalf("status = %q, want deleted", deleted.Status)
	}

	if active, _ := orderRepo.GetByID(models.CollectionOrders, order.ID); active != nil {
		t.Fatal("order still active after delete")
	}
	if archived, _ := orderRepo.GetByID(models.CollectionDeleted, order.ID); archived == nil {
		t.Fatal("order missing from the deleted collection")
	}
	if delivered, _ := orderRepo.GetByID(models.CollectionDelivered, order.ID); delivered != nil {
		t.Fatal("deleted order leaked into the delivered collection")
	}
}

func TestOrderServiceListActive(t *testing.T) {
	ctx := context.Background()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, washAndBanner(), &fakePublisher{})

	first, _ := svc.Create(ctx, validOrderRequest())
	second, _ := svc.Create(ctx, validOrderRequest())
	if _, err := svc.Advance(ctx, second.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}

	t.Run("all active", func(t *testing.T) {
		views, err := svc.ListActive(ctx, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("got %d views, want 2", len(views))
		}
		if views[0].Total != "50" {
			t.Fatalf("total = %q, want 50", views[0].Total)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		views, err := svc.ListActive(ctx, models.OrderWaiting)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(views) != 1 || views[0].ID != second.ID {
			t.Fatalf("filter returned wrong orders: %+v", views)
		}
	})

	t.Run("missing service renders fail-closed", func(t *testing.T) {
		serviceRepo := washAndBanner()
		s := NewOrderService(orderRepo, serviceRepo, &fakePublisher{})
		if err := serviceRepo.Delete("wash"); err != nil {
			t.Fatalf("delete service: %v", err)
		}

		views, err := s.ListActive(ctx, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, view := range views {
			if view.ID != first.ID && view.ID != second.ID {
				continue
			}
			if view.Total != InvalidTotalMarker {
				t.Fatalf("total = %q, want invalid marker", view.Total)
			}
			if view.Services[0].ServiceName != UnknownServiceName {
				t.Fatalf("name = %q, want placeholder", view.Services[0].ServiceName)
			}
		}
	})
}
