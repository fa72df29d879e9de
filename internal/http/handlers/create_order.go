package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"kisansetu-backend/internal/service"
	"kisansetu-backend/pkg/models"
)

type CreateOrderHandler struct {
	Service *service.Orders
	Log     zerolog.Logger
}

// The order payload is taken as submitted: items, shipping and payment are
// opaque documents, only the presence of items is enforced.
type createOrderReq struct {
	UserID    string            `json:"userId"`
	UserEmail string            `json:"userEmail"`
	Items     []models.Document `json:"items"`
	Shipping  models.Document   `json:"shipping"`
	Payment   models.Document   `json:"payment"`
	Total     float64           `json:"total"`
}

type createOrderResp struct {
	Success bool         `json:"success"`
	Order   models.Order `json:"order"`
	Message string       `json:"message,omitempty"`
}

func (h *CreateOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, failResp{Message: "Invalid order"})
		return
	}

	order, persisted, err := h.Service.Create(r.Context(), models.Order{
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
		Items:     req.Items,
		Shipping:  req.Shipping,
		Payment:   req.Payment,
		Total:     req.Total,
	})
	if errors.Is(err, service.ErrEmptyItems) {
		writeJSON(w, http.StatusBadRequest, failResp{Message: "Invalid order"})
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("create order failed")
		writeJSON(w, http.StatusInternalServerError, failResp{Message: "Server error"})
		return
	}

	resp := createOrderResp{Success: true, Order: order}
	if !persisted {
		resp.Message = "Demo mode - not persisted"
	}
	writeJSON(w, http.StatusOK, resp)
}
