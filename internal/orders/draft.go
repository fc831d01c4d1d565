package orders

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/helpershop/helpershop/internal/catalog"
	"github.com/helpershop/helpershop/internal/ids"
	"github.com/helpershop/helpershop/internal/money"
)

// Catalog is the read-only product lookup a draft composes against.
type Catalog interface {
	FindByName(name string) (catalog.Product, bool)
}

// Draft is the transient state of one order composition view. It lives
// while the view is open and is cleared on finalize or cancel. Drafts
// are driven by a single user; callers serialize access.
type Draft struct {
	ids     ids.Generator
	catalog Catalog
	log     *Log

	status Status
	items  []LineItem
	total  money.Cents
}

func NewDraft(cat Catalog, gen ids.Generator, log *Log) *Draft {
	return &Draft{ids: gen, catalog: cat, log: log, status: StatusOpen}
}

func (d *Draft) Status() Status { return d.status }

// Items returns a copy of the current line items in insertion order.
func (d *Draft) Items() []LineItem {
	out := make([]LineItem, len(d.items))
	copy(out, d.items)
	return out
}

// Total is the running sum of all line totals, maintained incrementally.
func (d *Draft) Total() money.Cents { return d.total }

// AddLineItem resolves productName in the catalog, parses quantityText
// as a positive integer and appends a line item with the product's
// current price snapshotted. On any failure the draft is unchanged.
func (d *Draft) AddLineItem(productName, quantityText string) (LineItem, error) {
	if d.status != StatusOpen {
		return LineItem{}, ErrDraftClosed
	}
	if strings.TrimSpace(productName) == "" || strings.TrimSpace(quantityText) == "" {
		return LineItem{}, ErrInvalidQuantity
	}
	qty, err := strconv.Atoi(strings.TrimSpace(quantityText))
	if err != nil || qty <= 0 {
		return LineItem{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, quantityText)
	}
	p, ok := d.catalog.FindByName(productName)
	if !ok {
		return LineItem{}, fmt.Errorf("%w: %q", ErrProductNotFound, productName)
	}

	item := LineItem{
		ID:             d.ids.NewID(),
		Name:           p.Name,
		Quantity:       qty,
		UnitPriceCents: p.PriceCents,
		LineTotalCents: p.PriceCents.Mul(qty),
	}
	d.items = append(d.items, item)
	d.total += item.LineTotalCents
	return item, nil
}

// RemoveLineItem deletes the item with the given id and subtracts
// exactly its line total. Unknown ids are a no-op; the id normally only
// comes from the rendered list, but we guard it anyway.
func (d *Draft) RemoveLineItem(id string) bool {
	if d.status != StatusOpen {
		return false
	}
	for i, it := range d.items {
		if it.ID == id {
			d.items = append(d.items[:i], d.items[i+1:]...)
			d.total -= it.LineTotalCents
			return true
		}
	}
	return false
}

// Finalize turns a complete draft into an immutable Order, appends it to
// the log and clears the draft. All three fields and at least one item
// are required; rejection reports one combined message and leaves both
// the draft and the log untouched.
func (d *Draft) Finalize(sellerName, customerName, paymentMethod string) (Order, error) {
	if d.status != StatusOpen {
		return Order{}, ErrDraftClosed
	}
	if sellerName == "" || customerName == "" || paymentMethod == "" || len(d.items) == 0 {
		return Order{}, ErrDraftIncomplete
	}

	o := Order{
		ID:            d.ids.NewID(),
		SellerName:    sellerName,
		CustomerName:  customerName,
		Items:         d.Items(),
		TotalCents:    d.total,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now().UTC(),
	}
	d.log.Append(o)

	d.items = nil
	d.total = 0
	d.status = StatusFinalized
	return o, nil
}

// Cancel closes the view without producing an Order.
func (d *Draft) Cancel() error {
	if !CanTransition(d.status, StatusCanceled) {
		return ErrDraftClosed
	}
	d.items = nil
	d.total = 0
	d.status = StatusCanceled
	return nil
}
