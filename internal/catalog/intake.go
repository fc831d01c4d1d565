package catalog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/helpershop/helpershop/internal/money"
)

// ErrInvalidIntake carries the single combined message shown when stock
// intake fails; which field was wrong is deliberately not distinguished.
var ErrInvalidIntake = errors.New("fill in all fields correctly to add the product")

// Intake is the raw stock form: everything arrives as text plus an image
// reference from the picker.
type Intake struct {
	Name         string `json:"name"`
	PriceText    string `json:"price"`
	QuantityText string `json:"quantity"`
	ImageURI     string `json:"image_uri"`
}

// Validate gates Store.Add. Valid iff the name is non-empty, the price
// parses to an amount > 0, the quantity parses to an integer > 0 and an
// image reference is present. On failure nothing is created.
func (in Intake) Validate() (name string, price money.Cents, quantity int, err error) {
	name = strings.TrimSpace(in.Name)
	if name == "" || in.ImageURI == "" {
		return "", 0, 0, ErrInvalidIntake
	}
	price, perr := money.Parse(in.PriceText)
	if perr != nil || price <= 0 {
		return "", 0, 0, ErrInvalidIntake
	}
	quantity, qerr := strconv.Atoi(strings.TrimSpace(in.QuantityText))
	if qerr != nil || quantity <= 0 {
		return "", 0, 0, ErrInvalidIntake
	}
	return name, price, quantity, nil
}
