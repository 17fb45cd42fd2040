package urn

import (
	"strings"
	"unicode"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urn/internal/grammar"
)

// Encoding tells whether an NSS literal is given in its raw
// or URL-encoded form.
type Encoding int

const (
	// NotEncoded marks a raw literal that has to be percent-encoded.
	NotEncoded Encoding = iota
	// URLEncoded marks a literal that is already percent-encoded.
	URLEncoded
)

// NSS represents the namespace specific string part of a URN in both its
// raw (decoded) and URL-encoded forms.
//
// The zero value is not a valid NSS, use [NewNSS] to get a validated value.
type NSS struct {
	rfc     RFC
	raw     string
	encoded string
}

// NewNSS validates nss against the grammar of the given RFC
// and returns it as an [NSS] value.
//
// A [NotEncoded] literal is accepted as is and percent-encoded internally.
// A [URLEncoded] literal is checked against the RFC character rules,
// the hex digits of its escape sequences are normalized to the lower case
// and the raw form is recovered by decoding. NUL characters, raw or escaped,
// are rejected in both encodings.
func NewNSS(nss string, enc Encoding, rfc RFC) (NSS, error) {
	if nss == "" {
		return NSS{}, errtrace.Wrap(NewInvalidArgumentError("namespace specific string can not be empty"))
	}
	if strings.IndexByte(nss, 0) >= 0 {
		return NSS{}, errtrace.Wrap(newSyntaxErr(rfc, "illegal NUL character in namespace specific string"))
	}
	switch enc {
	case NotEncoded:
		return NSS{rfc: rfc, raw: nss, encoded: grammar.Escape(nss)}, nil
	case URLEncoded:
		for _, r := range nss {
			if unicode.IsSpace(r) {
				return NSS{}, errtrace.Wrap(newSyntaxErr(rfc, "unescaped whitespace in namespace specific string %q", nss))
			}
		}
		var ok bool
		switch rfc {
		case RFC2141:
			ok = grammar.IsNSS2141(nss)
		case RFC8141:
			ok = grammar.IsNSS8141(nss)
		default:
			return NSS{}, errtrace.Wrap(NewInvalidArgumentError("unsupported RFC %v", rfc))
		}
		if !ok {
			return NSS{}, errtrace.Wrap(newSyntaxErr(rfc, "not allowed characters in namespace specific string %q", nss))
		}
		encoded := grammar.LCaseOctets(nss)
		raw, err := grammar.Unescape(encoded)
		if err != nil {
			return NSS{}, errtrace.Wrap(newSyntaxErr(rfc, "namespace specific string %q decoding failed: %v", nss, err))
		}
		if strings.IndexByte(raw, 0) >= 0 {
			return NSS{}, errtrace.Wrap(newSyntaxErr(rfc, "illegal NUL character in namespace specific string"))
		}
		return NSS{rfc: rfc, raw: raw, encoded: encoded}, nil
	default:
		return NSS{}, errtrace.Wrap(NewInvalidArgumentError("unsupported encoding %v", enc))
	}
}

// Raw returns the decoded form of the NSS.
func (nss NSS) Raw() string { return nss.raw }

// String returns the URL-encoded form of the NSS.
func (nss NSS) String() string { return nss.encoded }

// RFC returns the RFC the NSS was validated against.
func (nss NSS) RFC() RFC { return nss.rfc }

// IsZero reports whether the NSS is the zero value.
func (nss NSS) IsZero() bool { return nss == NSS{} }

// Equal compares the NSS with the given value.
// Only the URL-encoded forms take part in the comparison, so values
// whose raw forms coincide but encoded forms differ are not equal.
func (nss NSS) Equal(val any) bool {
	var other NSS
	switch v := val.(type) {
	case NSS:
		other = v
	case *NSS:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return nss.encoded == other.encoded
}
