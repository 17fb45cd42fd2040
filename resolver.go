package urn

//go:generate go tool mockgen -destination internal/testutil/urnmock/resolver.go -package urnmock . Resolver

import (
	"context"
	"fmt"
	"net/url"
)

// Resolver resolves a URN to the locations of the resource it names.
//
// A URN is a persistent name, so a single URN may map to zero, one or many
// URLs over its lifetime. Implementations should honor the context and
// return a [ResolvingError] when the lookup itself fails, as opposed to
// returning an empty list when the URN simply has no known locations.
type Resolver interface {
	Resolve(ctx context.Context, u URN) ([]*url.URL, error)
}

// ResolvingError is returned by a [Resolver] when a URN lookup fails.
type ResolvingError struct {
	Reason string
	// URN is the URN that failed to resolve, may be nil.
	URN URN
	// Err is the underlying cause, may be nil.
	Err error
}

func (err *ResolvingError) Error() string {
	if err == nil {
		return "<nil>"
	}
	reason := err.Reason
	if err.Err != nil {
		reason += ": " + err.Err.Error()
	}
	if err.URN != nil {
		return fmt.Sprintf("urn.ResolvingError: resolving of %q failed with reason '%s'", err.URN, reason)
	}
	return fmt.Sprintf("urn.ResolvingError: resolving failed with reason '%s'", reason)
}

func (err *ResolvingError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}
