// Package picker is the boundary to the device image picker and its
// permission prompts. The core only ever consumes the first returned
// asset's URI; cancel and error outcomes are non-fatal.
package picker

import "context"

type Source string

const (
	SourceCamera  Source = "camera"
	SourceLibrary Source = "library"
)

type Options struct {
	MediaType string  // "photo"
	Quality   float64 // 0..1
}

type Asset struct {
	URI string `json:"uri"`
}

// Result is the picker's tri-state outcome: canceled, failed with a
// message, or one or more assets.
type Result struct {
	Canceled     bool
	ErrorMessage string
	Assets       []Asset
}

type Picker interface {
	Launch(ctx context.Context, src Source, opts Options) (Result, error)
}

// Resolve reduces a Result to the single URI the catalog stores.
// Cancel, error and empty results all resolve to nothing, leaving any
// previously chosen image in place.
func Resolve(res Result) (string, bool) {
	if res.Canceled || res.ErrorMessage != "" || len(res.Assets) == 0 {
		return "", false
	}
	return res.Assets[0].URI, true
}

// Stub is a canned picker for wiring and tests; the device-backed
// implementation lives with the platform shell, not here.
type Stub struct {
	Result Result
	Err    error
}

func (s Stub) Launch(ctx context.Context, src Source, opts Options) (Result, error) {
	return s.Result, s.Err
}
