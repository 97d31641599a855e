// Package model содержит доменные сущности ресторанного бэк-офиса.
package model

import "time"

// OrderStatus описывает статус приготовления заказа.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusInKitchen OrderStatus = "IN_KITCHEN"
	OrderStatusServed    OrderStatus = "SERVED"
)

// ValidOrderStatus сообщает, является ли значение известным статусом заказа.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPlaced, OrderStatusInKitchen, OrderStatusServed:
		return true
	}
	return false
}

// Order описывает заказ блюд для столика.
type Order struct {
	ID          int64
	TableNumber int
	Items       []string
	Status      OrderStatus
}

// TableBooking описывает бронирование столика.
// BookingTime равно nil, если время не было передано клиентом.
type TableBooking struct {
	ID             int64
	CustomerName   string
	BookingTime    *time.Time
	TableNumber    int
	NumberOfGuests int
}

// Role описывает роль учётной записи в системе.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleWaiter   Role = "WAITER"
	RoleChef     Role = "CHEF"
	RoleManager  Role = "MANAGER"
	RoleCustomer Role = "CUSTOMER"
)

// ValidRole сообщает, является ли значение известной ролью.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleWaiter, RoleChef, RoleManager, RoleCustomer:
		return true
	}
	return false
}

// User описывает учётную запись сотрудника или гостя.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     Role
}
