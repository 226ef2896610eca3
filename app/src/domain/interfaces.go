package domain

import "context"

// Clock supplies the current instant as epoch milliseconds so that services
// depending on wall time stay testable.
type Clock interface {
	NowMillis() int64
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() int64

func (f ClockFunc) NowMillis() int64 {
	return f()
}

// VersionProvider describes the behaviour exposed to transport layers.
type VersionProvider interface {
	Version(ctx context.Context) Version
}
