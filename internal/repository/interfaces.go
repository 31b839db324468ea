package repository

import "context"

// StateKey is the storage key the tracker payload lives under. Bump the
// suffix when the payload shape changes incompatibly.
const StateKey = "ssc_tracker_data_v1"

// StateRepo persists the serialized tracker state as one atomic value.
type StateRepo interface {
	// Load returns the stored payload. found is false when no payload has
	// ever been saved; that is not an error.
	Load(ctx context.Context) (payload []byte, found bool, err error)
	// Save replaces the stored payload.
	Save(ctx context.Context, payload []byte) error
}
