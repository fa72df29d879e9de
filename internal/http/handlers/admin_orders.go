package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"kisansetu-backend/internal/repo"
	"kisansetu-backend/internal/service"
)

type ListOrdersHandler struct {
	Service *service.Orders
	Log     zerolog.Logger
}

func (h *ListOrdersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, err := h.Service.List(r.Context(), q, limit)
	if err != nil {
		h.Log.Error().Err(err).Str("q", q).Msg("list orders failed")
		writeJSON(w, http.StatusInternalServerError, failResp{Message: "Server error"})
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type GetOrderHandler struct {
	Service *service.Orders
	Log     zerolog.Logger
}

func (h *GetOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.Service.Get(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, failResp{Message: "Order not found"})
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Str("order_id", id).Msg("get order failed")
		writeJSON(w, http.StatusInternalServerError, failResp{Message: "Server error"})
		return
	}
	writeJSON(w, http.StatusOK, order)
}
