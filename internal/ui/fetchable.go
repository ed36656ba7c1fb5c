package ui

import "time"

// LoadState tracks the progression of data loading for a Fetchable field.
type LoadState int

const (
	LoadIdle  LoadState = iota // never fetched
	LoadReady                  // loaded at least once
	LoadError                  // failed, no prior data
)

// Fetchable wraps a value with loading state metadata.
type Fetchable[T any] struct {
	Data      T
	State     LoadState
	Fetching  bool // orthogonal: is a fetch in flight?
	Err       error
	FetchedAt time.Time
}

// SetData replaces Data and marks it loaded.
func (f *Fetchable[T]) SetData(data T) {
	f.Fetching = false
	f.Data = data
	f.State = LoadReady
	f.Err = nil
	f.FetchedAt = time.Now()
}

// SetError records an error. If prior data exists the state is preserved
// (stale data kept). Otherwise state becomes LoadError.
func (f *Fetchable[T]) SetError(err error) {
	f.Fetching = false
	f.Err = err
	if !f.HasData() {
		f.State = LoadError
	}
}

// SetFetching marks a fetch as in-flight and clears the previous error.
// Data and state are left untouched.
func (f *Fetchable[T]) SetFetching() {
	f.Fetching = true
	f.Err = nil
}

// Reset drops data and state back to idle.
func (f *Fetchable[T]) Reset() {
	*f = Fetchable[T]{}
}

// IsReady returns true when data is loaded and no fetch is in flight.
func (f *Fetchable[T]) IsReady() bool {
	return f.State == LoadReady && !f.Fetching
}

// HasData returns true when data from a successful fetch is available.
func (f *Fetchable[T]) HasData() bool {
	return f.State == LoadReady
}

// IsFetching returns true when a fetch is in-flight.
func (f *Fetchable[T]) IsFetching() bool {
	return f.Fetching
}
