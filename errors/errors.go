// Package errors defines all exported error sentinels for the julienne
// bucketing library.
//
// This is the single source of truth for error values. Both the root
// julienne package and its internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Construction errors, returned by NewBuckets.
var (
	ErrTotalBucketsTooSmall = errors.New("julienne: total_buckets must be >= 2")
	ErrUnknownOrder         = errors.New("julienne: unknown bucket order")
	ErrIdentifierOverflow   = errors.New("julienne: n exceeds the maximum representable identifier count")
	ErrEmptyUniverse        = errors.New("julienne: n must be > 0")
)

// Lifecycle errors.
var (
	ErrBucketsDestroyed = errors.New("julienne: use of buckets after Del")
)

// Update errors.
var (
	ErrSlotOutOfRange = errors.New("julienne: update target slot out of range")
)

// Priority file loader errors (internal/priofile).
var (
	ErrInvalidMagic   = errors.New("julienne: invalid priority file magic number")
	ErrInvalidVersion = errors.New("julienne: unsupported priority file version")
	ErrTruncatedFile  = errors.New("julienne: priority file is truncated")
)
