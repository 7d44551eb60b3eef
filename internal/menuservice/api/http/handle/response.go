package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"smart-menu/internal/cart"
	"smart-menu/internal/menu"
	"smart-menu/internal/menuservice/app/core"
	"smart-menu/internal/order"
)

// jsonResponse writes the given data as a JSON-encoded HTTP response.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// jsonError writes an error response as JSON with the specified HTTP
// status code.
func jsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	})
}

// serviceError maps domain errors onto HTTP status codes.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrCartNotFound),
		errors.Is(err, cart.ErrItemNotInCart),
		errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		jsonError(w, http.StatusNotFound, err)
	case errors.Is(err, order.ErrInvalidTransition):
		jsonError(w, http.StatusConflict, err)
	case errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, core.ErrFieldIsEmpty):
		jsonError(w, http.StatusBadRequest, err)
	default:
		jsonError(w, http.StatusBadRequest, err)
	}
}
