package urn

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urn/internal/ioutil"
	"github.com/ghettovoice/urn/internal/util"
)

// URN2141 represents a URN according to RFC 2141.
//
// The zero value is not a valid URN, use [NewURN2141] or [ParseRFC2141]
// to get a valid value.
type URN2141 struct {
	nid NID
	nss NSS
}

// NewURN2141 composes a URN from validated components.
// Both components must be non-zero and validated against RFC 2141.
func NewURN2141(nid NID, nss NSS) (*URN2141, error) {
	if nid.IsZero() {
		return nil, errtrace.Wrap(NewInvalidArgumentError("namespace identifier can not be zero"))
	}
	if nss.IsZero() {
		return nil, errtrace.Wrap(NewInvalidArgumentError("namespace specific string can not be zero"))
	}
	if nid.RFC() != RFC2141 || nss.RFC() != RFC2141 {
		return nil, errtrace.Wrap(NewInvalidArgumentError("components must comply with %v", RFC2141))
	}
	return &URN2141{nid: nid, nss: nss}, nil
}

// ParseRFC2141 parses a URN literal according to RFC 2141.
//
// Everything after the second colon belongs to the namespace specific
// string, colons inside it are preserved as data.
func ParseRFC2141[T ~string | ~[]byte](src T) (*URN2141, error) {
	s := string(src)
	if s == "" {
		return nil, errtrace.Wrap(NewInvalidArgumentError("urn can not be empty"))
	}
	nidPart, nssPart, ok := splitURN(s)
	if !ok {
		return nil, errtrace.Wrap(newSyntaxErr(RFC2141, "invalid format %q is probably not a URN", s))
	}
	nid, err := NewNID(nidPart, RFC2141)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	nss, err := NewNSS(nssPart, URLEncoded, RFC2141)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &URN2141{nid: nid, nss: nss}, nil
}

// ParseURL2141 parses a URN according to RFC 2141 from a [net/url.URL] value.
func ParseURL2141(u *url.URL) (*URN2141, error) {
	if u == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("url can not be nil"))
	}
	if !util.EqFold(u.Scheme, Scheme) {
		return nil, errtrace.Wrap(newSyntaxErr(RFC2141, "invalid scheme %q, the given URL is not a URN", u.Scheme))
	}
	return errtrace.Wrap2(ParseRFC2141(u.String()))
}

// RFC returns [RFC2141].
func (u *URN2141) RFC() RFC { return RFC2141 }

// NID returns the namespace identifier component.
func (u *URN2141) NID() NID {
	if u == nil {
		return NID{}
	}
	return u.nid
}

// NSS returns the namespace specific string component.
func (u *URN2141) NSS() NSS {
	if u == nil {
		return NSS{}
	}
	return u.nss
}

// Key returns the canonical form of the URN with a case-normalized
// namespace identifier. Equal URNs always have equal keys.
func (u *URN2141) Key() string {
	if u == nil {
		return ""
	}
	return urnKey(u.nid, u.nss)
}

// RenderTo writes the string representation of the URN to w.
func (u *URN2141) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if u == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(Scheme)
	cw.WriteString(":")
	cw.WriteString(u.nid.String())
	cw.WriteString(":")
	cw.WriteString(u.nss.String())
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URN.
func (u *URN2141) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URN.
func (u *URN2141) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URN.
func (u *URN2141) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URN2141
		type URN2141 hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URN2141)(u))
		return
	}
}

// Equal compares this URN with another for equality according to
// RFC 2141 Section 5: the namespace identifiers are compared
// case-insensitively, the namespace specific strings by their
// URL-encoded forms.
func (u *URN2141) Equal(val any) bool {
	var other *URN2141
	switch v := val.(type) {
	case URN2141:
		other = &v
	case *URN2141:
		other = v
	default:
		return false
	}
	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.nid.Equal(other.nid) && u.nss.Equal(other.nss)
}

// IsValid reports whether the URN is well-formed.
func (u *URN2141) IsValid() bool {
	return u != nil && !u.nid.IsZero() && !u.nss.IsZero()
}

// Clone returns a deep copy of the URN.
func (u *URN2141) Clone() URN {
	if u == nil {
		return (*URN2141)(nil)
	}
	u1 := *u
	return &u1
}

// URL converts the URN to a [net/url.URL] value.
func (u *URN2141) URL() (*url.URL, error) {
	if u == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("urn can not be nil"))
	}
	return errtrace.Wrap2(url.Parse(u.String()))
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URN2141) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URN2141) UnmarshalText(text []byte) error {
	u1, err := ParseRFC2141(text)
	if err != nil {
		*u = URN2141{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
