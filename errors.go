package urn

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/urn/internal/errorutil"
	"github.com/ghettovoice/urn/internal/util"
)

// Error represents a URN error.
type Error = errorutil.Error

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrSyntax is the sentinel error wrapped by every [SyntaxError].
	ErrSyntax Error = "invalid URN syntax"
)

// NewInvalidArgumentError creates a new error wrapping [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

// ErrorKind classifies URN syntax violations.
type ErrorKind int

const (
	// KindSyntax is a general grammar mismatch.
	KindSyntax ErrorKind = iota
	// KindReserved marks usage of the reserved identifier "urn" as a NID.
	KindReserved
	// KindLength marks a NID of invalid length.
	KindLength
)

func (k ErrorKind) String() string {
	switch k {
	case KindReserved:
		return "reserved identifier"
	case KindLength:
		return "length error"
	default:
		return "syntax error"
	}
}

// section returns the violated section of the RFC text, when it is pinned down.
func (k ErrorKind) section() string {
	switch k {
	case KindReserved:
		return "2.1"
	case KindLength:
		return "2"
	default:
		return ""
	}
}

// SyntaxError reports a URN literal or component that violates the grammar
// of the RFC it was validated against.
type SyntaxError struct {
	Kind ErrorKind
	RFC  RFC
	msg  string
}

func newSyntaxErr(rfc RFC, format string, args ...any) error {
	return &SyntaxError{Kind: KindSyntax, RFC: rfc, msg: fmt.Sprintf(format, args...)} //errtrace:skip
}

func newReservedIdentifierErr(rfc RFC, nid string) error {
	return &SyntaxError{
		Kind: KindReserved,
		RFC:  rfc,
		msg:  fmt.Sprintf("namespace identifier can not be %q", nid),
	} //errtrace:skip
}

func newLengthErr(rfc RFC, nid string) error {
	var msg string
	if rfc == RFC8141 {
		msg = fmt.Sprintf("namespace identifier %q has to be 2 to 32 characters long", nid)
	} else {
		msg = fmt.Sprintf("namespace identifier %q is too long, only 32 characters are allowed", nid)
	}
	return &SyntaxError{Kind: KindLength, RFC: rfc, msg: msg} //errtrace:skip
}

func (err *SyntaxError) Error() string {
	if err == nil {
		return "<nil>"
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(err.msg)
	sb.WriteString(": violation of ")
	sb.WriteString(err.RFC.String())
	if sec := err.Kind.section(); sec != "" {
		sb.WriteString(", section ")
		sb.WriteString(sec)
	}
	sb.WriteString(", see ")
	sb.WriteString(err.RFC.URL())
	return sb.String()
}

func (err *SyntaxError) Unwrap() error { return ErrSyntax }

// Grammar marks the error as a grammar violation.
func (err *SyntaxError) Grammar() bool { return true }
