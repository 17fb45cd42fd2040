// Package grammar implements character rules and the percent-codec for
// URN syntax as defined by RFC 2141 and RFC 8141.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/urn/internal/errorutil"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const ErrMalformedInput Error = "malformed input"

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
