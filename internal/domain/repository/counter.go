package repository

import "context"

// CounterRepository hands out values from named persisted sequences.
// NextValue must be atomic under concurrent callers: no value is ever
// returned twice for the same name. The counter is created on first use.
type CounterRepository interface {
	NextValue(ctx context.Context, name string) (int64, error)
}
