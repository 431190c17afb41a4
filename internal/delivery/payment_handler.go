package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

// defaultOrderAmount — 199.00 INR в пайсах
const defaultOrderAmount int64 = 19900

type PaymentHandler struct {
	provider ports.PaymentProvider
	log      *logger.ZapLogger
}

func NewPaymentHandler(provider ports.PaymentProvider, log *logger.ZapLogger) *PaymentHandler {
	return &PaymentHandler{
		provider: provider,
		log:      log,
	}
}

func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount        int64  `json:"amount"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if req.Amount == 0 {
		req.Amount = defaultOrderAmount
	}
	if req.Amount < 0 {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	order, err := h.provider.CreateOrder(r.Context(), req.Amount, req.PaymentMethod)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "create order failed", Error: err})
		http.Error(w, "failed to create order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"razorpay_key": h.provider.KeyID(),
		"order_id":     order.OrderID,
		"amount":       order.Amount,
		"currency":     order.Currency,
	})
}
