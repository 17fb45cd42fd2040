package urn

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urn/internal/ioutil"
	"github.com/ghettovoice/urn/internal/util"
)

// URN8141 represents a URN according to RFC 8141, including the optional
// resolution, query and fragment components.
//
// The zero value is not a valid URN, use [NewURN8141] or [ParseRFC8141]
// to get a valid value.
type URN8141 struct {
	nid NID
	nss NSS
	rqf RQF
}

// NewURN8141 composes a URN from validated components.
// The NID and NSS must be non-zero and validated against RFC 8141,
// the zero RQF stands for the absence of all three trailing components.
func NewURN8141(nid NID, nss NSS, rqf RQF) (*URN8141, error) {
	if nid.IsZero() {
		return nil, errtrace.Wrap(NewInvalidArgumentError("namespace identifier can not be zero"))
	}
	if nss.IsZero() {
		return nil, errtrace.Wrap(NewInvalidArgumentError("namespace specific string can not be zero"))
	}
	if nid.RFC() != RFC8141 || nss.RFC() != RFC8141 {
		return nil, errtrace.Wrap(NewInvalidArgumentError("components must comply with %v", RFC8141))
	}
	return &URN8141{nid: nid, nss: nss, rqf: rqf.Clone()}, nil
}

// ParseRFC8141 parses a URN literal according to RFC 8141.
//
// The namespace specific string runs up to the first "?+", "?=" or "#"
// marker. A marker right at the start of the NSS position is taken
// literally, so the NSS can never be empty.
func ParseRFC8141[T ~string | ~[]byte](src T) (*URN8141, error) {
	s := string(src)
	if s == "" {
		return nil, errtrace.Wrap(NewInvalidArgumentError("urn can not be empty"))
	}
	nidPart, tail, ok := splitURN(s)
	if !ok {
		return nil, errtrace.Wrap(newSyntaxErr(RFC8141, "invalid format %q is probably not a URN", s))
	}
	end := len(tail)
	for _, marker := range []string{"?+", "?=", "#"} {
		if i := strings.Index(tail, marker); i > 0 && i < end {
			end = i
		}
	}
	nid, err := NewNID(nidPart, RFC8141)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	nss, err := NewNSS(tail[:end], URLEncoded, RFC8141)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &URN8141{nid: nid, nss: nss, rqf: ParseRQF(tail[end:])}, nil
}

// ParseURL8141 parses a URN according to RFC 8141 from a [net/url.URL] value.
func ParseURL8141(u *url.URL) (*URN8141, error) {
	if u == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("url can not be nil"))
	}
	if !util.EqFold(u.Scheme, Scheme) {
		return nil, errtrace.Wrap(newSyntaxErr(RFC8141, "invalid scheme %q, the given URL is not a URN", u.Scheme))
	}
	return errtrace.Wrap2(ParseRFC8141(u.String()))
}

// RFC returns [RFC8141].
func (u *URN8141) RFC() RFC { return RFC8141 }

// NID returns the namespace identifier component.
func (u *URN8141) NID() NID {
	if u == nil {
		return NID{}
	}
	return u.nid
}

// NSS returns the namespace specific string component.
func (u *URN8141) NSS() NSS {
	if u == nil {
		return NSS{}
	}
	return u.nss
}

// RQF returns the resolution, query and fragment components.
func (u *URN8141) RQF() RQF {
	if u == nil {
		return RQF{}
	}
	return u.rqf.Clone()
}

// Key returns the canonical form of the URN with a case-normalized
// namespace identifier and without the RQF components.
// Equal URNs always have equal keys.
func (u *URN8141) Key() string {
	if u == nil {
		return ""
	}
	return urnKey(u.nid, u.nss)
}

// RenderTo writes the string representation of the URN to w.
func (u *URN8141) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
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
	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(u.rqf.RenderTo(w, opts))
	})
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URN.
func (u *URN8141) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URN.
func (u *URN8141) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URN.
func (u *URN8141) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URN8141
		type URN8141 hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URN8141)(u))
		return
	}
}

// Equal compares this URN with another for equality according to
// RFC 8141 Section 3: the namespace identifiers are compared
// case-insensitively, the namespace specific strings by their
// URL-encoded forms, the RQF components are ignored.
func (u *URN8141) Equal(val any) bool {
	var other *URN8141
	switch v := val.(type) {
	case URN8141:
		other = &v
	case *URN8141:
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
func (u *URN8141) IsValid() bool {
	return u != nil && !u.nid.IsZero() && !u.nss.IsZero()
}

// Clone returns a deep copy of the URN.
func (u *URN8141) Clone() URN {
	if u == nil {
		return (*URN8141)(nil)
	}
	return &URN8141{nid: u.nid, nss: u.nss, rqf: u.rqf.Clone()}
}

// URL converts the URN to a [net/url.URL] value.
func (u *URN8141) URL() (*url.URL, error) {
	if u == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("urn can not be nil"))
	}
	return errtrace.Wrap2(url.Parse(u.String()))
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URN8141) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URN8141) UnmarshalText(text []byte) error {
	u1, err := ParseRFC8141(text)
	if err != nil {
		*u = URN8141{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
