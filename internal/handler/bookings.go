package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/mmeshcher/restaurant-backoffice/internal/model"
)

type bookingRequest struct {
	CustomerName   string     `json:"customerName"`
	BookingTime    *time.Time `json:"bookingTime"`
	TableNumber    int        `json:"tableNumber"`
	NumberOfGuests int        `json:"numberOfGuests"`
}

type bookingResponse struct {
	ID             int64      `json:"id"`
	CustomerName   string     `json:"customerName"`
	BookingTime    *time.Time `json:"bookingTime"`
	TableNumber    int        `json:"tableNumber"`
	NumberOfGuests int        `json:"numberOfGuests"`
}

func toBookingResponse(b model.TableBooking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		CustomerName:   b.CustomerName,
		BookingTime:    b.BookingTime,
		TableNumber:    b.TableNumber,
		NumberOfGuests: b.NumberOfGuests,
	}
}

// checkBookingShape валидирует форму запроса бронирования.
// Время бронирования не проверяется: его семантика принадлежит доменному слою.
func checkBookingShape(w http.ResponseWriter, req bookingRequest) bool {
	if strings.TrimSpace(req.CustomerName) == "" {
		http.Error(w, "customer name is required", http.StatusBadRequest)
		return false
	}
	if req.TableNumber < 1 {
		http.Error(w, "table number must be at least 1", http.StatusBadRequest)
		return false
	}
	if req.NumberOfGuests < 1 {
		http.Error(w, "number of guests must be at least 1", http.StatusBadRequest)
		return false
	}
	return true
}

// CreateBooking создаёт новое бронирование столика.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if !checkBookingShape(w, req) {
		return
	}

	created, err := h.bookings.Create(r.Context(), model.TableBooking{
		CustomerName:   req.CustomerName,
		BookingTime:    req.BookingTime,
		TableNumber:    req.TableNumber,
		NumberOfGuests: req.NumberOfGuests,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toBookingResponse(created))
}

// GetBookings возвращает список всех бронирований.
func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.GetAll(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// GetBooking возвращает бронирование по идентификатору.
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	booking, err := h.bookings.GetByID(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toBookingResponse(*booking))
}

// UpdateBooking полностью перезаписывает бронирование по идентификатору из пути.
func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if !checkBookingShape(w, req) {
		return
	}

	updated, err := h.bookings.Update(r.Context(), id, model.TableBooking{
		CustomerName:   req.CustomerName,
		BookingTime:    req.BookingTime,
		TableNumber:    req.TableNumber,
		NumberOfGuests: req.NumberOfGuests,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toBookingResponse(updated))
}

// DeleteBooking удаляет бронирование по идентификатору.
func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.bookings.Delete(r.Context(), id); err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
