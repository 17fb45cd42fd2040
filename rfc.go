package urn

import "strconv"

// Scheme is the URI scheme of every URN.
const Scheme = "urn"

// RFC identifies the URN syntax specification a component was validated against.
type RFC int

const (
	// RFC2141 is the original URN syntax specification.
	RFC2141 RFC = iota
	// RFC8141 is the revision of the URN syntax that obsoletes RFC 2141.
	RFC8141
)

func (rfc RFC) String() string {
	switch rfc {
	case RFC2141:
		return "RFC 2141"
	case RFC8141:
		return "RFC 8141"
	default:
		return "RFC(" + strconv.Itoa(int(rfc)) + ")"
	}
}

// URL returns the URL of the specification document for the RFC.
func (rfc RFC) URL() string {
	switch rfc {
	case RFC8141:
		return "https://tools.ietf.org/html/rfc8141"
	default:
		return "https://tools.ietf.org/html/rfc2141"
	}
}
