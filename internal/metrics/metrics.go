// Package metrics содержит prometheus-метрики ресторанного бэк-офиса.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics содержит счётчики доменных операций и метрики HTTP-запросов.
type Metrics struct {
	ordersCreated      prometheus.Counter
	orderStatusUpdates prometheus.Counter
	bookingsCreated    prometheus.Counter
	bookingsDeleted    prometheus.Counter
	usersCreated       prometheus.Counter

	requestDuration *prometheus.HistogramVec
}

// NewMetrics создаёт метрики и регистрирует их в реестре prometheus по умолчанию.
func NewMetrics() *Metrics {
	return newMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newMetricsWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "restaurant_orders_created_total",
			Help: "Total number of orders created",
		}),
		orderStatusUpdates: registerCounter(registerer, prometheus.CounterOpts{
			Name: "restaurant_order_status_updates_total",
			Help: "Total number of order status updates",
		}),
		bookingsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "restaurant_bookings_created_total",
			Help: "Total number of table bookings created",
		}),
		bookingsDeleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "restaurant_bookings_deleted_total",
			Help: "Total number of table bookings deleted",
		}),
		usersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "restaurant_users_created_total",
			Help: "Total number of users created",
		}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "restaurant_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *Metrics) RecordOrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

// RecordOrderStatusUpdate увеличивает счётчик обновлений статуса заказа.
func (m *Metrics) RecordOrderStatusUpdate() {
	if m == nil {
		return
	}
	m.orderStatusUpdates.Inc()
}

// RecordBookingCreated увеличивает счётчик созданных бронирований.
func (m *Metrics) RecordBookingCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

// RecordBookingDeleted увеличивает счётчик удалённых бронирований.
func (m *Metrics) RecordBookingDeleted() {
	if m == nil {
		return
	}
	m.bookingsDeleted.Inc()
}

// RecordUserCreated увеличивает счётчик созданных пользователей.
func (m *Metrics) RecordUserCreated() {
	if m == nil {
		return
	}
	m.usersCreated.Inc()
}

// RecordRequest записывает длительность обработки HTTP-запроса.
func (m *Metrics) RecordRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}
