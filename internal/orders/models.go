package orders

import (
	"time"

	"github.com/helpershop/helpershop/internal/money"
)

// LineItem snapshots name and unit price from the catalog at add-time;
// later catalog changes never reach existing items.
type LineItem struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Quantity       int         `json:"quantity"`
	UnitPriceCents money.Cents `json:"unit_price_cents"`
	LineTotalCents money.Cents `json:"line_total_cents"` // always Quantity * UnitPriceCents
}

// Order is an immutable snapshot produced by finalizing a draft.
type Order struct {
	ID            string      `json:"id"`
	SellerName    string      `json:"seller_name"`
	CustomerName  string      `json:"customer_name"`
	Items         []LineItem  `json:"items"`
	TotalCents    money.Cents `json:"total_cents"`
	PaymentMethod string      `json:"payment_method"`
	CreatedAt     time.Time   `json:"created_at"`
}

// PaymentMethods lists the options offered in the payment picker.
// Finalize only requires a non-empty method; the list is for display.
func PaymentMethods() []string {
	return []string{
		"Cartão de Crédito",
		"Cartão de Débito",
		"Pix",
		"Dinheiro",
	}
}
