package domain

import (
	"errors"
	"fmt"
)

// ErrValidationSkip marks a raw article dropped by the normalizer.
var ErrValidationSkip = errors.New("article skipped by validation")

// FetchError is a transport, status or decoding failure talking to the news feed.
// It aborts the cycle before anything is persisted.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ClassificationError aborts a cycle before persistence.
type ClassificationError struct {
	Expected int
	Got      int
	Err      error
}

func (e *ClassificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classification failed: %v", e.Err)
	}
	return fmt.Sprintf("classification returned %d labels for %d texts", e.Got, e.Expected)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

type StoreWriteError struct {
	Title string
	Err   error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("insert article %q: %v", e.Title, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

type StoreReadError struct {
	Window string
	Err    error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("query window %s: %v", e.Window, e.Err)
}

func (e *StoreReadError) Unwrap() error { return e.Err }

type CacheWriteError struct {
	Key string
	Err error
}

func (e *CacheWriteError) Error() string {
	return fmt.Sprintf("write cache key %s: %v", e.Key, e.Err)
}

func (e *CacheWriteError) Unwrap() error { return e.Err }
