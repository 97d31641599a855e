package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-backoffice/internal/model"
	"github.com/mmeshcher/restaurant-backoffice/internal/repository"
)

type stubOrderRepo struct {
	created   *model.Order
	createErr error
	getResp   *model.Order
	getErr    error
	getCalled bool
	listResp  []model.Order
	listErr   error
	updated   *model.Order
	updateErr error
	nextID    int64
}

func (s *stubOrderRepo) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	if s.createErr != nil {
		return model.Order{}, s.createErr
	}
	order.ID = s.nextID
	s.created = &order
	return order, nil
}

func (s *stubOrderRepo) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	s.getCalled = true
	return s.getResp, s.getErr
}

func (s *stubOrderRepo) GetOrders(ctx context.Context) ([]model.Order, error) {
	return s.listResp, s.listErr
}

func (s *stubOrderRepo) UpdateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	if s.updateErr != nil {
		return model.Order{}, s.updateErr
	}
	s.updated = &order
	return order, nil
}

func newOrderService(repo OrderRepository) *OrderService {
	return NewOrderService(repo, zap.NewNop(), nil, nil)
}

func TestOrderCreate_ForcesPlacedStatus(t *testing.T) {
	repo := &stubOrderRepo{nextID: 7}
	svc := newOrderService(repo)

	created, err := svc.Create(context.Background(), model.Order{
		TableNumber: 3,
		Items:       []string{"Coke", "Pizza"},
		Status:      model.OrderStatusServed,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if created.Status != model.OrderStatusPlaced {
		t.Fatalf("status = %q, want %q", created.Status, model.OrderStatusPlaced)
	}
	if created.ID != 7 {
		t.Fatalf("id = %d, want 7", created.ID)
	}
	if repo.created == nil || repo.created.Status != model.OrderStatusPlaced {
		t.Fatalf("persisted order must have status PLACED, got %+v", repo.created)
	}
}

func TestOrderCreate_EmptyItemsRejected(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newOrderService(repo)

	_, err := svc.Create(context.Background(), model.Order{TableNumber: 1})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.created != nil {
		t.Fatalf("repository must not be invoked for invalid order")
	}
}

func TestOrderUpdateStatus_EmptyStatusRejectedWithoutStoreCall(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newOrderService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, "")
	if !errors.Is(err, ErrOrderStatusRequired) {
		t.Fatalf("expected ErrOrderStatusRequired, got %v", err)
	}
	if repo.getCalled {
		t.Fatalf("store must not be queried when status is empty")
	}
}

func TestOrderUpdateStatus_NotFound(t *testing.T) {
	repo := &stubOrderRepo{getErr: repository.ErrOrderNotFound}
	svc := newOrderService(repo)

	_, err := svc.UpdateStatus(context.Background(), 99, model.OrderStatusServed)
	if !errors.Is(err, repository.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if repo.updated != nil {
		t.Fatalf("save must not be invoked for missing order")
	}
}

func TestOrderUpdateStatus_OverwritesOnlyStatus(t *testing.T) {
	repo := &stubOrderRepo{
		getResp: &model.Order{
			ID:          5,
			TableNumber: 3,
			Items:       []string{"Coke", "Pizza"},
			Status:      model.OrderStatusPlaced,
		},
	}
	svc := newOrderService(repo)

	updated, err := svc.UpdateStatus(context.Background(), 5, model.OrderStatusInKitchen)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}

	if updated.Status != model.OrderStatusInKitchen {
		t.Fatalf("status = %q, want IN_KITCHEN", updated.Status)
	}
	if updated.ID != 5 || updated.TableNumber != 3 || len(updated.Items) != 2 {
		t.Fatalf("other fields must be preserved, got %+v", updated)
	}
}

func TestOrderUpdateStatus_BackwardTransitionAllowed(t *testing.T) {
	repo := &stubOrderRepo{
		getResp: &model.Order{ID: 2, Items: []string{"Tea"}, Status: model.OrderStatusServed},
	}
	svc := newOrderService(repo)

	updated, err := svc.UpdateStatus(context.Background(), 2, model.OrderStatusPlaced)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.Status != model.OrderStatusPlaced {
		t.Fatalf("status = %q, want PLACED", updated.Status)
	}
}

func TestOrderGetByID_PropagatesNotFound(t *testing.T) {
	repo := &stubOrderRepo{getErr: repository.ErrOrderNotFound}
	svc := newOrderService(repo)

	_, err := svc.GetByID(context.Background(), 404)
	if !errors.Is(err, repository.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
