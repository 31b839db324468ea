package testutil

import "context"

// MemStateRepo is an in-memory StateRepo for tests that don't need SQLite.
// Optional error fields inject read/write failures at precise points.
type MemStateRepo struct {
	Payload []byte
	Found   bool

	LoadErr error
	SaveErr error

	SaveCalls int
}

func (r *MemStateRepo) Load(ctx context.Context) ([]byte, bool, error) {
	if r.LoadErr != nil {
		return nil, false, r.LoadErr
	}
	if !r.Found {
		return nil, false, nil
	}
	out := make([]byte, len(r.Payload))
	copy(out, r.Payload)
	return out, true, nil
}

func (r *MemStateRepo) Save(ctx context.Context, payload []byte) error {
	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Payload = make([]byte, len(payload))
	copy(r.Payload, payload)
	r.Found = true
	return nil
}
