package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-backoffice/internal/events"
	"github.com/mmeshcher/restaurant-backoffice/internal/metrics"
	"github.com/mmeshcher/restaurant-backoffice/internal/model"
	"github.com/mmeshcher/restaurant-backoffice/internal/repository"
)

// BookingRepository описывает контракт доступа к бронированиям, используемый сервисом.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking model.TableBooking) (model.TableBooking, error)
	GetBookingByID(ctx context.Context, id int64) (*model.TableBooking, error)
	GetBookings(ctx context.Context) ([]model.TableBooking, error)
	BookingExists(ctx context.Context, id int64) (bool, error)
	UpdateBooking(ctx context.Context, booking model.TableBooking) (model.TableBooking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// BookingService содержит бизнес-логику работы с бронированиями столиков.
type BookingService struct {
	repo      BookingRepository
	logger    *zap.Logger
	publisher *events.Publisher
	metrics   *metrics.Metrics
}

// NewBookingService создаёт сервис бронирований.
// Публикатор событий и метрики допускают nil.
func NewBookingService(repo BookingRepository, logger *zap.Logger, publisher *events.Publisher, m *metrics.Metrics) *BookingService {
	return &BookingService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		metrics:   m,
	}
}

// Create создаёт новое бронирование. Время бронирования обязательно
// и не может быть раньше текущего момента.
func (s *BookingService) Create(ctx context.Context, booking model.TableBooking) (model.TableBooking, error) {
	s.logger.Info("creating booking", zap.String("customer", booking.CustomerName))

	if booking.BookingTime == nil || booking.BookingTime.Before(time.Now()) {
		s.logger.Warn("booking creation failed: booking time invalid")
		return model.TableBooking{}, ErrBookingTimeInvalid
	}

	saved, err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		return model.TableBooking{}, err
	}

	s.metrics.RecordBookingCreated()
	s.publisher.BookingCreated(ctx, saved)

	s.logger.Info("booking created", zap.Int64("id", saved.ID))
	return saved, nil
}

// GetAll возвращает все бронирования.
func (s *BookingService) GetAll(ctx context.Context) ([]model.TableBooking, error) {
	return s.repo.GetBookings(ctx)
}

// GetByID возвращает бронирование по идентификатору.
func (s *BookingService) GetByID(ctx context.Context, id int64) (*model.TableBooking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		s.logger.Warn("booking lookup failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return booking, nil
}

// Update полностью перезаписывает бронирование. Идентификатор берётся из
// пути запроса и перекрывает значение из тела. Время проверяется заново:
// указанное время в прошлом отклоняется, отсутствующее время пропускается
// (в отличие от Create — поведение исходной системы сохранено намеренно).
func (s *BookingService) Update(ctx context.Context, id int64, booking model.TableBooking) (model.TableBooking, error) {
	s.logger.Info("updating booking", zap.Int64("id", id))

	exists, err := s.repo.BookingExists(ctx, id)
	if err != nil {
		return model.TableBooking{}, err
	}
	if !exists {
		s.logger.Warn("booking update failed: not found", zap.Int64("id", id))
		return model.TableBooking{}, repository.ErrBookingNotFound
	}

	booking.ID = id

	if booking.BookingTime != nil && booking.BookingTime.Before(time.Now()) {
		s.logger.Warn("booking update failed: past booking time", zap.Int64("id", id))
		return model.TableBooking{}, ErrBookingTimePast
	}

	updated, err := s.repo.UpdateBooking(ctx, booking)
	if err != nil {
		return model.TableBooking{}, err
	}

	s.publisher.BookingUpdated(ctx, updated)

	s.logger.Info("booking updated", zap.Int64("id", id))
	return updated, nil
}

// Delete удаляет бронирование по идентификатору.
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	s.logger.Info("deleting booking", zap.Int64("id", id))

	exists, err := s.repo.BookingExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		s.logger.Warn("booking delete failed: not found", zap.Int64("id", id))
		return repository.ErrBookingNotFound
	}

	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return err
	}

	s.metrics.RecordBookingDeleted()
	s.publisher.BookingDeleted(ctx, id)

	s.logger.Info("booking deleted", zap.Int64("id", id))
	return nil
}
