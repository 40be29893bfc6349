// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrTimeout indicates the catalog did not respond within the search bound.
type ErrTimeout struct {
	Detail string
	Err    error
}

func (e ErrTimeout) Error() string {
	return e.Detail
}

func (e ErrTimeout) Unwrap() error {
	return e.Err
}

// ErrUnreachable indicates a connection to the catalog could not be
// established.
type ErrUnreachable struct {
	Detail string
	Err    error
}

func (e ErrUnreachable) Error() string {
	return e.Detail
}

func (e ErrUnreachable) Unwrap() error {
	return e.Err
}

// ErrProtocol indicates any other transport or non-success status failure.
type ErrProtocol struct {
	Detail string
	Err    error
}

func (e ErrProtocol) Error() string {
	return e.Detail
}

func (e ErrProtocol) Unwrap() error {
	return e.Err
}

// classifySearchErr translates a transport failure from a search request
// into the catalog error taxonomy.
func classifySearchErr(err error, timeoutSecs float64) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return ErrTimeout{
			Detail: fmt.Sprintf("Project Gutenberg API did not respond in time (timeout after %g seconds)", timeoutSecs),
			Err:    err,
		}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return ErrUnreachable{
			Detail: "could not connect to Project Gutenberg API",
			Err:    err,
		}
	}
	return ErrProtocol{
		Detail: fmt.Sprintf("failed to search Project Gutenberg: %v", err),
		Err:    err,
	}
}
