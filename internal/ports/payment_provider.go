package ports

import "context"

type PaymentOrder struct {
	OrderID  string
	Amount   int64
	Currency string
}

type PaymentProvider interface {
	// CreateOrder создаёт заказ на оплату, сумма в пайсах
	CreateOrder(ctx context.Context, amount int64, paymentMethod string) (PaymentOrder, error)

	// KeyID — публичный ключ для чекаута на фронте
	KeyID() string
}
