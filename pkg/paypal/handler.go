package paypal

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type createOrderDTO struct {
	Amount string `json:"amount"`
}

// errorResponse matches the checkout page's expectations: a bare error field.
type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var dto createOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount provided.")
		return
	}
	if _, err := strconv.ParseFloat(dto.Amount, 64); dto.Amount == "" || err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount provided.")
		return
	}

	resp, err := h.client.CreateOrder(r.Context(), dto.Amount)
	if err != nil {
		log.Errorf("failed to create order: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create order.")
		return
	}
	relay(w, resp)
}

func (h *Handler) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderID"]

	resp, err := h.client.CaptureOrder(r.Context(), orderID)
	if err != nil {
		log.Errorf("failed to capture order: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to capture order.")
		return
	}
	relay(w, resp)
}

// relay passes the upstream response through with its original status code.
func relay(w http.ResponseWriter, resp *OrderResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		log.Errorf("failed to write order response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		log.Errorf("failed to write error response: %v", err)
	}
}
