package orders

import "errors"

// User-facing failures. Each aborts the operation it occurred in and
// mutates nothing; none are fatal and none are retried.
var (
	// ErrInvalidQuantity: missing selection or a quantity that does not
	// parse to a positive integer.
	ErrInvalidQuantity = errors.New("select a product and enter a quantity")

	// ErrProductNotFound: the chosen name resolves to no catalog entry.
	ErrProductNotFound = errors.New("product not found in stock")

	// ErrDraftIncomplete: finalize with an empty required field or no
	// items. One combined message; the failing field is not identified.
	ErrDraftIncomplete = errors.New("fill in all fields and add products to the order")

	// ErrDraftClosed: operation on an already finalized or canceled draft.
	ErrDraftClosed = errors.New("order draft is closed")
)
