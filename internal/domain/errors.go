package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrNoMatch  = errors.New("no matching faith")
	ErrProvider = errors.New("guidance provider failed")
	ErrFetch    = errors.New("theme asset unavailable")
)

// NoMatchError is returned when free text resolves to no catalog entry.
// Available holds the names the caller should offer instead.
type NoMatchError struct {
	Input     string
	Available []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no faith matches %q (available: %s)", e.Input, strings.Join(e.Available, ", "))
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

// ProviderError wraps a failure of the GuidanceProvider.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("guidance provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// FetchError wraps a failure of the ThemeAssetFetcher.
type FetchError struct {
	Ref string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Ref, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
