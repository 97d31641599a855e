package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mmeshcher/restaurant-backoffice/internal/model"
)

type orderRequest struct {
	TableNumber int      `json:"tableNumber"`
	Items       []string `json:"items"`
	Status      string   `json:"status"`
}

type orderResponse struct {
	ID          int64    `json:"id"`
	TableNumber int      `json:"tableNumber"`
	Items       []string `json:"items"`
	Status      string   `json:"status"`
}

func toOrderResponse(o model.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		TableNumber: o.TableNumber,
		Items:       o.Items,
		Status:      string(o.Status),
	}
}

// CreateOrder создаёт новый заказ. Статус из тела запроса игнорируется:
// новый заказ всегда получает статус PLACED.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.TableNumber < 1 {
		http.Error(w, "table number must be at least 1", http.StatusBadRequest)
		return
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item) == "" {
			http.Error(w, "order items must not be blank", http.StatusBadRequest)
			return
		}
	}

	created, err := h.orders.Create(r.Context(), model.Order{
		TableNumber: req.TableNumber,
		Items:       req.Items,
		Status:      model.OrderStatus(req.Status),
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toOrderResponse(created))
}

// GetOrders возвращает список всех заказов.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.GetAll(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// GetOrder возвращает заказ по идентификатору.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus устанавливает новый статус заказа.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Status == "" {
		http.Error(w, "order status must be provided", http.StatusBadRequest)
		return
	}
	if !model.ValidOrderStatus(model.OrderStatus(req.Status)) {
		http.Error(w, "unknown order status", http.StatusBadRequest)
		return
	}

	updated, err := h.orders.UpdateStatus(r.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderResponse(updated))
}
