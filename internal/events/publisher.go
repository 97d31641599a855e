// Package events публикует доменные события в RabbitMQ.
//
// Публикация выполняется по принципу best effort: ошибки брокера логируются
// и не влияют на результат доменной операции. Nil-публикатор безопасен и
// ничего не делает — события включаются только при заданном AMQP_URL.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-backoffice/internal/model"
)

// Exchange — topic-exchange, в который публикуются все события сервиса.
const Exchange = "restaurant.events"

// Ключи маршрутизации событий.
const (
	KeyOrderCreated       = "order.created"
	KeyOrderStatusChanged = "order.status_changed"
	KeyBookingCreated     = "booking.created"
	KeyBookingUpdated     = "booking.updated"
	KeyBookingDeleted     = "booking.deleted"
)

// OrderEvent описывает событие по заказу.
type OrderEvent struct {
	OrderID     int64    `json:"order_id"`
	TableNumber int      `json:"table_number"`
	Items       []string `json:"items"`
	Status      string   `json:"status"`
}

// BookingEvent описывает событие по бронированию.
type BookingEvent struct {
	BookingID      int64      `json:"booking_id"`
	CustomerName   string     `json:"customer_name,omitempty"`
	BookingTime    *time.Time `json:"booking_time,omitempty"`
	TableNumber    int        `json:"table_number,omitempty"`
	NumberOfGuests int        `json:"number_of_guests,omitempty"`
}

// Publisher инкапсулирует соединение с RabbitMQ и публикацию событий.
type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger *zap.Logger
}

// Dial подключается к брокеру и объявляет exchange событий.
func Dial(url string, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, logger: logger}, nil
}

// Close закрывает канал и соединение с брокером.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// OrderCreated публикует событие о создании заказа.
func (p *Publisher) OrderCreated(ctx context.Context, order model.Order) {
	p.publish(ctx, KeyOrderCreated, OrderEvent{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Items:       order.Items,
		Status:      string(order.Status),
	})
}

// OrderStatusChanged публикует событие об изменении статуса заказа.
func (p *Publisher) OrderStatusChanged(ctx context.Context, order model.Order) {
	p.publish(ctx, KeyOrderStatusChanged, OrderEvent{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Items:       order.Items,
		Status:      string(order.Status),
	})
}

// BookingCreated публикует событие о создании бронирования.
func (p *Publisher) BookingCreated(ctx context.Context, booking model.TableBooking) {
	p.publish(ctx, KeyBookingCreated, bookingEvent(booking))
}

// BookingUpdated публикует событие об изменении бронирования.
func (p *Publisher) BookingUpdated(ctx context.Context, booking model.TableBooking) {
	p.publish(ctx, KeyBookingUpdated, bookingEvent(booking))
}

// BookingDeleted публикует событие об удалении бронирования.
func (p *Publisher) BookingDeleted(ctx context.Context, id int64) {
	p.publish(ctx, KeyBookingDeleted, BookingEvent{BookingID: id})
}

func bookingEvent(booking model.TableBooking) BookingEvent {
	return BookingEvent{
		BookingID:      booking.ID,
		CustomerName:   booking.CustomerName,
		BookingTime:    booking.BookingTime,
		TableNumber:    booking.TableNumber,
		NumberOfGuests: booking.NumberOfGuests,
	}
}

func (p *Publisher) publish(ctx context.Context, key string, payload any) {
	if p == nil || p.ch == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		p.logWarn("marshal event", key, err)
		return
	}

	err = p.ch.PublishWithContext(ctx, Exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logWarn("publish event", key, err)
	}
}

func (p *Publisher) logWarn(msg, key string, err error) {
	if p.logger == nil {
		return
	}
	p.logger.Warn(msg, zap.String("routing_key", key), zap.Error(err))
}
