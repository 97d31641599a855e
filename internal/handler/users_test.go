package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmeshcher/restaurant-backoffice/internal/model"
	"github.com/mmeshcher/restaurant-backoffice/internal/repository"
	"github.com/mmeshcher/restaurant-backoffice/internal/service"
)

func TestCreateUser_Success(t *testing.T) {
	users := &stubUsers{
		createResp: model.User{
			ID:       21,
			Name:     "Eve",
			Email:    "eve@example.com",
			Password: "secret",
			Role:     model.RoleWaiter,
		},
	}
	router := newTestRouter(t, &stubOrders{}, &stubBookings{}, users)

	body, _ := json.Marshal(userRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "secret",
		Role:     "WAITER",
	})

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp userResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 21 || resp.Role != "WAITER" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateUser_DuplicateEmailReturns409(t *testing.T) {
	users := &stubUsers{createErr: repository.ErrUserExists}
	router := newTestRouter(t, &stubOrders{}, &stubBookings{}, users)

	body := `{"name":"Eve","email":"eve@example.com","password":"secret","role":"WAITER"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestCreateUser_InvalidEmailReturns400(t *testing.T) {
	router := newTestRouter(t, &stubOrders{}, &stubBookings{}, &stubUsers{})

	body := `{"name":"Eve","email":"not-an-email","password":"secret","role":"WAITER"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateUser_MissingEmailReachesDomain(t *testing.T) {
	// Пустой email — доменный инвариант, а не форма запроса.
	users := &stubUsers{createErr: service.ErrEmailRequired}
	router := newTestRouter(t, &stubOrders{}, &stubBookings{}, users)

	body := `{"name":"Eve","email":"","password":"secret","role":"WAITER"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateUser_UnknownRoleReturns400(t *testing.T) {
	router := newTestRouter(t, &stubOrders{}, &stubBookings{}, &stubUsers{})

	body := `{"name":"Eve","email":"eve@example.com","password":"secret","role":"PIRATE"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetUserByEmail_NotFoundReturns404(t *testing.T) {
	users := &stubUsers{getErr: repository.ErrUserNotFound}
	router := newTestRouter(t, &stubOrders{}, &stubBookings{}, users)

	req := httptest.NewRequest(http.MethodGet, "/users/ghost@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestLogin_Success(t *testing.T) {
	users := &stubUsers{
		authResp: &model.User{ID: 1, Email: "eve@example.com", Role: model.RoleManager},
	}
	router := newTestRouter(t, &stubOrders{}, &stubBookings{}, users)

	body := `{"email":"eve@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestLogin_WrongPasswordReturns401(t *testing.T) {
	users := &stubUsers{authErr: service.ErrInvalidCredentials}
	router := newTestRouter(t, &stubOrders{}, &stubBookings{}, users)

	body := `{"email":"eve@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLogin_UnknownEmailReturns404(t *testing.T) {
	users := &stubUsers{authErr: repository.ErrUserNotFound}
	router := newTestRouter(t, &stubOrders{}, &stubBookings{}, users)

	body := `{"email":"ghost@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
