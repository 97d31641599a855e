package service

import (
	"errors"
	"fmt"
)

// ErrValidation — корневая ошибка нарушения доменного инварианта.
// Конкретные нарушения оборачивают её, транспортный слой проверяет через errors.Is.
var (
	ErrValidation = errors.New("validation failed")

	// ErrOrderItemsRequired возвращается при создании заказа без позиций.
	ErrOrderItemsRequired = fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	// ErrOrderStatusRequired возвращается при обновлении заказа без указания статуса.
	ErrOrderStatusRequired = fmt.Errorf("%w: order status must be provided", ErrValidation)
	// ErrBookingTimeInvalid возвращается при создании бронирования без времени или со временем в прошлом.
	ErrBookingTimeInvalid = fmt.Errorf("%w: booking time must be a future or present date", ErrValidation)
	// ErrBookingTimePast возвращается при обновлении бронирования временем в прошлом.
	ErrBookingTimePast = fmt.Errorf("%w: booking time must be now or in the future", ErrValidation)
	// ErrEmailRequired возвращается при создании пользователя без email.
	ErrEmailRequired = fmt.Errorf("%w: email is required", ErrValidation)

	// ErrInvalidCredentials возвращается при несовпадении пароля.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
