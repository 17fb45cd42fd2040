package urn

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urn/internal/grammar"
	"github.com/ghettovoice/urn/internal/util"
)

// NID represents the namespace identifier part of a URN.
//
// The zero value is not a valid NID, use [NewNID] to get a validated value.
type NID struct {
	rfc   RFC
	value string
}

// NewNID validates nid against the grammar of the given RFC
// and returns it as a [NID] value.
//
// The reserved identifier "urn" is rejected in any character case.
func NewNID(nid string, rfc RFC) (NID, error) {
	if nid == "" {
		return NID{}, errtrace.Wrap(NewInvalidArgumentError("namespace identifier can not be empty"))
	}
	if util.EqFold(nid, Scheme) {
		return NID{}, errtrace.Wrap(newReservedIdentifierErr(rfc, nid))
	}
	switch rfc {
	case RFC2141:
		if len(nid) > grammar.MaxNIDLength {
			return NID{}, errtrace.Wrap(newLengthErr(rfc, nid))
		}
		if !grammar.IsNID2141(nid) {
			return NID{}, errtrace.Wrap(newSyntaxErr(rfc, "not allowed characters in namespace identifier %q", nid))
		}
	case RFC8141:
		if len(nid) < grammar.MinNIDLength8141 || len(nid) > grammar.MaxNIDLength {
			return NID{}, errtrace.Wrap(newLengthErr(rfc, nid))
		}
		if !grammar.IsNID8141(nid) {
			return NID{}, errtrace.Wrap(newSyntaxErr(rfc, "not allowed characters in namespace identifier %q", nid))
		}
	default:
		return NID{}, errtrace.Wrap(NewInvalidArgumentError("unsupported RFC %v", rfc))
	}
	return NID{rfc: rfc, value: nid}, nil
}

// String returns the identifier literal exactly as it was given to [NewNID].
func (nid NID) String() string { return nid.value }

// RFC returns the RFC the identifier was validated against.
func (nid NID) RFC() RFC { return nid.rfc }

// Key returns the case-normalized form of the identifier.
// Equal identifiers always have equal keys.
func (nid NID) Key() string { return util.LCase(nid.value) }

// IsZero reports whether the NID is the zero value.
func (nid NID) IsZero() bool { return nid == NID{} }

// Equal compares the NID with the given value.
// Identifiers are compared case-insensitively, the RFC tag doesn't take
// part in the comparison.
func (nid NID) Equal(val any) bool {
	var other NID
	switch v := val.(type) {
	case NID:
		other = v
	case *NID:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(nid.value, other.value)
}

// IsInformal reports whether the identifier belongs to the informal namespace
// declared by RFC 8141, section 5.2, that is matches "urn-<number>".
// Always false for identifiers validated against RFC 2141.
func (nid NID) IsInformal() bool {
	return nid.rfc == RFC8141 && grammar.IsInformalNID(nid.value)
}

// IsFormal reports whether the identifier belongs to the formal namespace
// declared by RFC 8141, section 5.1. Identifiers starting with "X-" or with
// a two-letter combination followed by "-" are excluded, so an identifier
// may be neither formal nor informal.
// Always false for identifiers validated against RFC 2141.
func (nid NID) IsFormal() bool {
	return nid.rfc == RFC8141 &&
		!grammar.HasFormalExclusionPrefix(nid.value) &&
		!grammar.IsInformalNID(nid.value)
}
