package metrics

import "context"

// Source produces snapshots on demand.
type Source interface {
	// Refresh samples the host and returns a new snapshot. An error means no
	// usable snapshot could be built.
	Refresh(ctx context.Context) (*Snapshot, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (*Snapshot, error)

// Refresh calls f(ctx).
func (f SourceFunc) Refresh(ctx context.Context) (*Snapshot, error) {
	return f(ctx)
}
