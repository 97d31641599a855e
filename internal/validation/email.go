// Package validation содержит функции валидации входных данных.
package validation

import (
	"net/mail"
	"strings"
)

// IsValidEmail проверяет синтаксическую корректность адреса электронной почты.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// mail.ParseAddress принимает формы вида "Name <user@host>",
	// для API нужен только голый адрес.
	if addr.Address != email {
		return false
	}

	return strings.Contains(email, "@")
}
