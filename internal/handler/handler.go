// Package handler содержит HTTP-обработчики API ресторанного бэк-офиса.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-backoffice/internal/model"
	"github.com/mmeshcher/restaurant-backoffice/internal/repository"
	"github.com/mmeshcher/restaurant-backoffice/internal/service"
)

// OrderService определяет контракт сервиса заказов, используемый HTTP-обработчиками.
type OrderService interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	GetAll(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error)
}

// BookingService определяет контракт сервиса бронирований, используемый HTTP-обработчиками.
type BookingService interface {
	Create(ctx context.Context, booking model.TableBooking) (model.TableBooking, error)
	GetAll(ctx context.Context) ([]model.TableBooking, error)
	GetByID(ctx context.Context, id int64) (*model.TableBooking, error)
	Update(ctx context.Context, id int64, booking model.TableBooking) (model.TableBooking, error)
	Delete(ctx context.Context, id int64) error
}

// UserService определяет контракт сервиса пользователей, используемый HTTP-обработчиками.
type UserService interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

// Handler реализует HTTP-обработчики API ресторанного бэк-офиса.
type Handler struct {
	orders   OrderService
	bookings BookingService
	users    UserService
	logger   *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(orders OrderService, bookings BookingService, users UserService, logger *zap.Logger) *Handler {
	return &Handler{
		orders:   orders,
		bookings: bookings,
		users:    users,
		logger:   logger,
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

// writeDomainError транслирует вид доменной ошибки в статус-код ответа.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, repository.ErrUserExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	default:
		h.logger.Error("internal error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
