package infra

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

type RazorpayProvider struct {
	httpClient *http.Client
	apiURL     string
	keyID      string
	keySecret  string
}

func NewRazorpayProvider() ports.PaymentProvider {
	apiURL := os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = "https://api.razorpay.com/v1/orders"
	}

	return &RazorpayProvider{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiURL:     apiURL,
		keyID:      os.Getenv("RAZORPAY_KEY_ID"),
		keySecret:  os.Getenv("RAZORPAY_KEY_SECRET"),
	}
}

func (p *RazorpayProvider) KeyID() string {
	return p.keyID
}

func (p *RazorpayProvider) CreateOrder(
	ctx context.Context,
	amount int64,
	paymentMethod string,
) (ports.PaymentOrder, error) {

	if paymentMethod == "" {
		paymentMethod = "any"
	}

	body := map[string]any{
		"amount":          amount,
		"currency":        "INR",
		"receipt":         newReceiptID(),
		"payment_capture": 1,
		"notes": map[string]any{
			"payment_method_requested": paymentMethod,
		},
	}

	reqBody, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", p.apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return ports.PaymentOrder{}, err
	}

	req.SetBasicAuth(p.keyID, p.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ports.PaymentOrder{}, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return ports.PaymentOrder{}, fmt.Errorf("razorpay error: %s", string(raw))
	}

	var order struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(raw, &order); err != nil {
		return ports.PaymentOrder{}, err
	}

	return ports.PaymentOrder{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}

func newReceiptID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return "rcpt_" + hex.EncodeToString(b)
}
