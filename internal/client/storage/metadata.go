package storage

import "context"

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SetFlag saves a named boolean flag
	SetFlag(ctx context.Context, name string, value bool) error

	// GetFlag returns false if the flag was never set
	GetFlag(ctx context.Context, name string) (bool, error)

	// SaveLastOnlineLoad saves the time (unix millis) of the last successful remote load
	SaveLastOnlineLoad(ctx context.Context, timestamp int64) error

	// GetLastOnlineLoad returns 0 if no remote load has succeeded yet
	GetLastOnlineLoad(ctx context.Context) (int64, error)
}
