package orders

// Status tracks the lifecycle of a draft's composition view.
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusFinalized Status = "FINALIZED"
	StatusCanceled  Status = "CANCELED"
)

var validNext = map[Status]map[Status]bool{
	StatusOpen:      {StatusFinalized: true, StatusCanceled: true},
	StatusFinalized: {},
	StatusCanceled:  {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}
