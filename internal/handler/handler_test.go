package handler

import (
	"context"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-backoffice/internal/model"
)

type stubOrders struct {
	createResp model.Order
	createErr  error
	listResp   []model.Order
	listErr    error
	getResp    *model.Order
	getErr     error
	updateResp model.Order
	updateErr  error

	updateCalled bool
}

func (s *stubOrders) Create(ctx context.Context, order model.Order) (model.Order, error) {
	return s.createResp, s.createErr
}

func (s *stubOrders) GetAll(ctx context.Context) ([]model.Order, error) {
	return s.listResp, s.listErr
}

func (s *stubOrders) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return s.getResp, s.getErr
}

func (s *stubOrders) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error) {
	s.updateCalled = true
	return s.updateResp, s.updateErr
}

type stubBookings struct {
	createResp model.TableBooking
	createErr  error
	listResp   []model.TableBooking
	listErr    error
	getResp    *model.TableBooking
	getErr     error
	updateResp model.TableBooking
	updateErr  error
	deleteErr  error

	updateID int64
}

func (s *stubBookings) Create(ctx context.Context, booking model.TableBooking) (model.TableBooking, error) {
	return s.createResp, s.createErr
}

func (s *stubBookings) GetAll(ctx context.Context) ([]model.TableBooking, error) {
	return s.listResp, s.listErr
}

func (s *stubBookings) GetByID(ctx context.Context, id int64) (*model.TableBooking, error) {
	return s.getResp, s.getErr
}

func (s *stubBookings) Update(ctx context.Context, id int64, booking model.TableBooking) (model.TableBooking, error) {
	s.updateID = id
	return s.updateResp, s.updateErr
}

func (s *stubBookings) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

type stubUsers struct {
	createResp model.User
	createErr  error
	listResp   []model.User
	listErr    error
	getResp    *model.User
	getErr     error
	authResp   *model.User
	authErr    error
}

func (s *stubUsers) Create(ctx context.Context, user model.User) (model.User, error) {
	return s.createResp, s.createErr
}

func (s *stubUsers) GetAll(ctx context.Context) ([]model.User, error) {
	return s.listResp, s.listErr
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getResp, s.getErr
}

func (s *stubUsers) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	return s.authResp, s.authErr
}

func newTestRouter(t *testing.T, orders OrderService, bookings BookingService, users UserService) http.Handler {
	t.Helper()

	logger, err := zap.NewDevelopment()
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	h := NewHandler(orders, bookings, users, logger)
	return h.SetupRouter(nil)
}
