package urn

import (
	"fmt"
	"net/url"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urn/internal/types"
	"github.com/ghettovoice/urn/internal/util"
)

// RenderOptions customizes URN rendering.
type RenderOptions = types.RenderOptions

// URN represents a Uniform Resource Name.
//
// Implemented by [URN2141] and [URN8141].
type URN interface {
	types.Renderer
	types.ValidFlag
	types.Equalable
	types.Cloneable[URN]
	fmt.Stringer
	// RFC returns the RFC of URN syntax the value complies with.
	RFC() RFC
	// NID returns the namespace identifier component.
	NID() NID
	// NSS returns the namespace specific string component.
	NSS() NSS
	// Key returns the canonical form of the URN with a case-normalized
	// namespace identifier. Equal URNs always have equal keys, so the key
	// is suitable for use as a map key.
	Key() string
	// URL converts the URN to a [net/url.URL] value.
	URL() (*url.URL, error)
}

// NewURN creates a URN of the given RFC from a raw (not encoded)
// namespace identifier and namespace specific string pair.
func NewURN(rfc RFC, nid, nss string) (URN, error) {
	id, err := NewNID(nid, rfc)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	ss, err := NewNSS(nss, NotEncoded, rfc)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	switch rfc {
	case RFC2141:
		return errtrace.Wrap2(NewURN2141(id, ss))
	case RFC8141:
		return errtrace.Wrap2(NewURN8141(id, ss, RQF{}))
	default:
		return nil, errtrace.Wrap(NewInvalidArgumentError("unsupported RFC %v", rfc))
	}
}

func urnKey(nid NID, nss NSS) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(Scheme)
	sb.WriteString(":")
	sb.WriteString(nid.Key())
	sb.WriteString(":")
	sb.WriteString(nss.String())
	return sb.String()
}

// splitURN splits a URN literal into its NID and tail parts, checking
// the scheme on the way. The tail still carries the RQF components
// under RFC 8141 rules.
func splitURN(s string) (nid, tail string, ok bool) {
	scheme, rest, found := strings.Cut(s, ":")
	if !found {
		return "", "", false
	}
	nid, tail, found = strings.Cut(rest, ":")
	if !found || nid == "" || tail == "" || !util.EqFold(scheme, Scheme) {
		return "", "", false
	}
	return nid, tail, true
}
