package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"smart-menu/internal/menuservice/app/services"
	"smart-menu/internal/menuservice/domain/dto"
	"smart-menu/internal/mylogger"
)

type OrderHandler struct {
	menuService *services.MenuService
	mylog       mylogger.Logger
}

func NewOrderHandler(menuService *services.MenuService, mylog mylogger.Logger) *OrderHandler {
	return &OrderHandler{
		menuService: menuService,
		mylog:       mylog,
	}
}

// ListOrders returns all orders in creation order.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders := oh.menuService.Orders()
		out := make([]dto.OrderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, dto.FromOrder(o))
		}
		jsonResponse(w, http.StatusOK, out)
	}
}

// GetOrder returns a single order snapshot.
func (oh *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := oh.menuService.Order(r.PathValue("order_id"))
		if err != nil {
			serviceError(w, err)
			return
		}
		jsonResponse(w, http.StatusOK, dto.FromOrder(o))
	}
}

// AdvanceStatus moves an order along its lifecycle. Requests not in the
// adjacency table are rejected, never applied.
func (oh *OrderHandler) AdvanceStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := r.PathValue("order_id")
		mylog := oh.mylog.Action("advance_status_requested").With("request_id", requestID(r), "order_id", orderID)

		var req dto.AdvanceStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Error("Invalid JSON payload", err)
			jsonError(w, http.StatusBadRequest, errors.New("invalid JSON payload"))
			return
		}

		o, err := oh.menuService.AdvanceStatus(r.Context(), orderID, req.Status)
		if err != nil {
			mylog.Error("Failed to advance status", err)
			serviceError(w, err)
			return
		}
		jsonResponse(w, http.StatusOK, dto.FromOrder(o))
	}
}
