package picker

import (
	"context"

	"github.com/rs/zerolog"
)

type Capability string

const (
	CapabilityStorageRead Capability = "storage-read"
	CapabilityCamera      Capability = "camera"
)

// Permissions mirrors the platform grant flow: check, then request.
type Permissions interface {
	Check(ctx context.Context, cap Capability) (bool, error)
	Request(ctx context.Context, cap Capability) (bool, error)
}

// EnsureAll checks each capability and requests it when absent. Denials
// are logged as warnings only; permissions are advisory and never gate
// catalog or draft operations.
func EnsureAll(ctx context.Context, p Permissions, log zerolog.Logger, caps ...Capability) {
	for _, c := range caps {
		granted, err := p.Check(ctx, c)
		if err != nil {
			log.Warn().Err(err).Str("capability", string(c)).Msg("permission check failed")
			continue
		}
		if granted {
			continue
		}
		granted, err = p.Request(ctx, c)
		if err != nil {
			log.Warn().Err(err).Str("capability", string(c)).Msg("permission request failed")
			continue
		}
		if !granted {
			log.Warn().Str("capability", string(c)).Msg("permission denied")
		}
	}
}

// StaticPermissions is a fixed grant table for wiring and tests.
type StaticPermissions map[Capability]bool

func (s StaticPermissions) Check(_ context.Context, cap Capability) (bool, error) {
	return s[cap], nil
}

func (s StaticPermissions) Request(_ context.Context, cap Capability) (bool, error) {
	return s[cap], nil
}
