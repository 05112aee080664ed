package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
	testhelpers "github.com/mgv-tech/backoffice/internal/test"
	"github.com/mgv-tech/backoffice/internal/usecase"
)

func newOrderFixture() (*usecase.OrderUseCase, *testhelpers.OrderRepositoryStub, *testhelpers.ProductRepositoryStub, *testhelpers.UserRepositoryStub, *testhelpers.NotifierRecorder) {
	products := &testhelpers.ProductRepositoryStub{Products: []model.Product{
		{ID: 1, Name: "Router X200", Price: 120, StockQuantity: 5},
		{ID: 2, Name: "Switch S24", Price: 300, StockQuantity: 10},
	}}
	orders := &testhelpers.OrderRepositoryStub{}
	counters := &testhelpers.CounterRepositoryStub{}
	users := testhelpers.NewUserRepositoryStub()
	users.Add(&model.User{ID: 7, Name: "Ada", Email: "ada@example.com", Role: model.RoleCustomer})
	recorder := &testhelpers.NotifierRecorder{}
	uc := usecase.NewOrderUseCase(orders, products, counters, users, recorder)
	return uc, orders, products, users, recorder
}

func TestOrderCreateAssignsSequentialNumbers(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()
	ctx := context.Background()

	first, err := uc.Create(ctx, 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if first.Number != "MGV000000001" {
		t.Fatalf("unexpected first number %q", first.Number)
	}

	second, err := uc.Create(ctx, 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 2, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if second.Number != "MGV000000002" {
		t.Fatalf("unexpected second number %q", second.Number)
	}
}

func TestOrderCreateSnapshotsCatalogData(t *testing.T) {
	uc, _, products, _, recorder := newOrderFixture()

	order, err := uc.Create(context.Background(), 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.Name != "Router X200" || item.Price != 120 || item.Quantity != 2 {
		t.Fatalf("snapshot mismatch: %+v", item)
	}
	// later catalog changes must not touch the stored snapshot
	products.Products[0].Price = 999
	if order.Items[0].Price != 120 {
		t.Fatalf("snapshot follows catalog: %v", order.Items[0].Price)
	}
	if recorder.Count("order-created") != 1 {
		t.Fatalf("expected one order-created event, got %d", recorder.Count("order-created"))
	}
}

func TestOrderCreateRejectsInsufficientStockWithDetails(t *testing.T) {
	uc, orders, _, _, recorder := newOrderFixture()

	_, err := uc.Create(context.Background(), 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 6}},
	})
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validation.Items) != 1 {
		t.Fatalf("expected one problem, got %v", validation.Items)
	}
	msg := validation.Items[0]
	for _, fragment := range []string{"Router X200", "available 5", "requested 6"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("problem %q missing %q", msg, fragment)
		}
	}
	if len(orders.Orders) != 0 {
		t.Fatalf("order persisted despite rejection")
	}
	if recorder.Count("order-created") != 0 {
		t.Fatalf("notification fired for rejected order")
	}
}

func TestOrderCreateReportsEveryFailingItem(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 6},
			{ProductID: 2, Quantity: 11},
			{ProductID: 99, Quantity: 1},
		},
	})
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validation.Items) != 3 {
		t.Fatalf("expected three problems, got %v", validation.Items)
	}
	if len(orders.Orders) != 0 {
		t.Fatalf("nothing may persist when any item fails")
	}
}

func TestOrderCreateMixedValidAndInvalidPersistsNothing(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: 2, Quantity: 1},
			{ProductID: 1, Quantity: 6},
		},
	})
	if err == nil {
		t.Fatal("expected rejection")
	}
	if len(orders.Orders) != 0 {
		t.Fatalf("valid line persisted alongside invalid one")
	}
}

func TestOrderCreateStatusFromPaymentMethod(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()
	ctx := context.Background()

	card, err := uc.Create(ctx, 7, usecase.CreateOrderInput{
		Items:         []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
		PaymentMethod: model.PaymentMethodCard,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if card.Status != model.OrderStatusProcessing || !card.IsPaid || card.PaidAt == nil {
		t.Fatalf("card order not marked paid/processing: %+v", card)
	}

	transfer, err := uc.Create(ctx, 7, usecase.CreateOrderInput{
		Items:         []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
		PaymentMethod: "Bank Transfer",
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if transfer.Status != model.OrderStatusPending || transfer.IsPaid || transfer.PaidAt != nil {
		t.Fatalf("transfer order not pending/unpaid: %+v", transfer)
	}
}

func TestOrderCreateEmptyItems(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()
	_, err := uc.Create(context.Background(), 7, usecase.CreateOrderInput{})
	if !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOrderNumberSequenceConcurrency(t *testing.T) {
	counters := &testhelpers.CounterRepositoryStub{}
	const n = 100

	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := counters.NextValue(context.Background(), "orders")
			if err != nil {
				t.Error(err)
				return
			}
			numbers <- usecase.FormatOrderNumber(seq)
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for number := range numbers {
		if seen[number] {
			t.Fatalf("duplicate order number %q", number)
		}
		seen[number] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct numbers, got %d", n, len(seen))
	}
}

func TestOrderGetOwnerAndAdminAccess(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()
	ctx := context.Background()
	order, err := uc.Create(ctx, 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if _, err := uc.Get(ctx, order.ID, 7, model.RoleCustomer); err != nil {
		t.Fatalf("owner denied: %v", err)
	}
	if _, err := uc.Get(ctx, order.ID, 8, model.RoleAdmin); err != nil {
		t.Fatalf("admin denied: %v", err)
	}
	if _, err := uc.Get(ctx, order.ID, 8, model.RoleCustomer); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for stranger, got %v", err)
	}
}

func TestOrderTrackByNumber(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()
	ctx := context.Background()
	order, err := uc.Create(ctx, 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
		ShippingAddress: model.ShippingAddress{
			Address1: "1 Main St", City: "Lagos", ZipCode: "100001", Country: "NG",
		},
		TotalPrice: 120,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	status, err := uc.TrackByNumber(ctx, strings.ToLower(order.Number))
	if err != nil {
		t.Fatalf("track returned error: %v", err)
	}
	if status.Number != order.Number || status.TotalPrice != 120 {
		t.Fatalf("unexpected projection: %+v", status)
	}

	if _, err := uc.TrackByNumber(ctx, "MGV999999998"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.TrackByNumber(ctx, "  "); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOrderMarkDeliveredIdempotent(t *testing.T) {
	uc, orders, _, _, recorder := newOrderFixture()
	ctx := context.Background()
	order, err := uc.Create(ctx, 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	first, err := uc.MarkDelivered(ctx, order.ID)
	if err != nil {
		t.Fatalf("mark delivered returned error: %v", err)
	}
	if !first.IsDelivered || first.DeliveredAt == nil || first.Status != model.OrderStatusDelivered {
		t.Fatalf("delivery flags not set: %+v", first)
	}

	second, err := uc.MarkDelivered(ctx, order.ID)
	if err != nil {
		t.Fatalf("second mark delivered returned error: %v", err)
	}
	if !second.DeliveredAt.Equal(*first.DeliveredAt) {
		t.Fatalf("delivery time changed on repeat: %v vs %v", second.DeliveredAt, first.DeliveredAt)
	}
	if got := orders.Orders[0]; !got.IsDelivered {
		t.Fatalf("persisted order lost delivery flag")
	}
	if recorder.Count("order-delivered") != 2 {
		t.Fatalf("expected two delivery notifications, got %d", recorder.Count("order-delivered"))
	}
}

func TestOrderSetStatusDeliveredTransitions(t *testing.T) {
	uc, _, _, _, recorder := newOrderFixture()
	ctx := context.Background()
	order, err := uc.Create(ctx, 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	delivered, err := uc.SetStatus(ctx, order.ID, model.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("set status returned error: %v", err)
	}
	if !delivered.IsDelivered || delivered.DeliveredAt == nil {
		t.Fatalf("delivered entry did not stamp flags: %+v", delivered)
	}

	shipped, err := uc.SetStatus(ctx, order.ID, model.OrderStatusShipped)
	if err != nil {
		t.Fatalf("set status returned error: %v", err)
	}
	if shipped.IsDelivered || shipped.DeliveredAt != nil {
		t.Fatalf("leaving Delivered kept flags: %+v", shipped)
	}

	if recorder.Count("order-delivered") != 1 || recorder.Count("order-status") != 1 {
		t.Fatalf("unexpected events: %v", recorder.Events)
	}
}

func TestOrderSetStatusRejectsUnknown(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()
	_, err := uc.SetStatus(context.Background(), 1, model.OrderStatus("Teleported"))
	if !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestOrderPublicProjectionHidesDetails(t *testing.T) {
	order := &model.Order{
		ID:     3,
		UserID: 7,
		Number: "MGV000000003",
		Status: model.OrderStatusShipped,
		IsPaid: true,
		Items:  []model.OrderItem{{ProductID: 1, Name: "secret"}},
		ShippingAddress: model.ShippingAddress{
			Address1: "1 Hidden Lane",
		},
		TotalPrice: 55,
	}
	public := order.Public()
	if public.Number != order.Number || public.Status != order.Status || public.TotalPrice != 55 || !public.IsPaid {
		t.Fatalf("projection lost tracked fields: %+v", public)
	}
}

func TestOrderCreateRepositoryConflict(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()
	orders.CreateFn = func(context.Context, *model.Order) (*model.Order, error) {
		return nil, domainErrors.ErrConflict
	}
	_, err := uc.Create(context.Background(), 7, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	if !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestOrderCreateCounterError(t *testing.T) {
	counters := &testhelpers.CounterRepositoryStub{Err: fmt.Errorf("sequence unavailable")}
	products := &testhelpers.ProductRepositoryStub{Products: []model.Product{{ID: 1, Name: "X", Price: 1, StockQuantity: 1}}}
	broken := usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, products, counters, testhelpers.NewUserRepositoryStub(), &testhelpers.NotifierRecorder{})
	if _, err := broken.Create(context.Background(), 1, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	}); err == nil {
		t.Fatal("expected counter error")
	}
}
