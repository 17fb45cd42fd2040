package urn

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urn/internal/ioutil"
	"github.com/ghettovoice/urn/internal/types"
	"github.com/ghettovoice/urn/internal/util"
)

// Param is a single key/value pair of an RQF component.
type Param = types.Param

// Params is an ordered list of RQF parameters.
type Params = types.Params

// RQF holds the optional resolution, query and fragment components
// that RFC 8141 allows after the namespace specific string.
//
// The zero value represents the total absence of all three components
// and renders to an empty string.
type RQF struct {
	resolution Params
	query      Params
	fragment   string
}

// NewRQF builds an RQF value from pre-parsed components.
// Nil parameter lists stand for absent components.
func NewRQF(resolution, query Params, fragment string) RQF {
	return RQF{
		resolution: resolution.Clone(),
		query:      query.Clone(),
		fragment:   fragment,
	}
}

// ParseRQF parses the RQF components from the trailing part of a URN literal.
//
// The resolution component starts after the "?+" marker, the query component
// after the "?=" marker, each running up to the next marker. The fragment is
// everything after the first "#". Parsing never fails: a missing marker
// simply leaves the component empty, so ParseRQF("") returns the zero value.
func ParseRQF[T ~string | ~[]byte](src T) RQF {
	s := string(src)
	var rqf RQF
	if i := strings.Index(s, "?+"); i >= 0 {
		rqf.resolution = parseParams(cutComponent(s[i+2:]))
	}
	if i := strings.Index(s, "?="); i >= 0 {
		rqf.query = parseParams(cutComponent(s[i+2:]))
	}
	if i := strings.IndexByte(s, '#'); i >= 0 {
		rqf.fragment = s[i+1:]
	}
	return rqf
}

// cutComponent cuts the component body at the next component marker.
func cutComponent(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i]
	}
	return s
}

func parseParams(s string) Params {
	if s == "" {
		return nil
	}
	var params Params
	for _, tok := range strings.Split(s, "&") {
		if tok == "" {
			continue
		}
		key, val, _ := strings.Cut(tok, "=")
		params = params.Set(key, val)
	}
	return params
}

// ResolutionParams returns a copy of the resolution parameters.
func (rqf RQF) ResolutionParams() Params { return rqf.resolution.Clone() }

// QueryParams returns a copy of the query parameters.
func (rqf RQF) QueryParams() Params { return rqf.query.Clone() }

// Fragment returns the fragment.
func (rqf RQF) Fragment() string { return rqf.fragment }

// IsZero reports whether all three components are absent.
func (rqf RQF) IsZero() bool {
	return rqf.resolution.Len() == 0 && rqf.query.Len() == 0 && rqf.fragment == ""
}

// Clone returns a deep copy of the RQF value.
func (rqf RQF) Clone() RQF {
	return RQF{
		resolution: rqf.resolution.Clone(),
		query:      rqf.query.Clone(),
		fragment:   rqf.fragment,
	}
}

// Equal compares the RQF with the given value.
// Parameter lists are compared without regard to order, the fragment
// is compared literally.
func (rqf RQF) Equal(val any) bool {
	var other RQF
	switch v := val.(type) {
	case RQF:
		other = v
	case *RQF:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return rqf.resolution.Equal(other.resolution) &&
		rqf.query.Equal(other.query) &&
		rqf.fragment == other.fragment
}

// RenderTo writes the string representation of the RQF to w.
// Absent components produce no output at all.
func (rqf RQF) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if rqf.resolution.Len() > 0 {
		cw.WriteString("?+")
		renderParams(cw, rqf.resolution)
	}
	if rqf.query.Len() > 0 {
		cw.WriteString("?=")
		renderParams(cw, rqf.query)
	}
	if rqf.fragment != "" {
		cw.WriteString("#")
		cw.WriteString(rqf.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

func renderParams(cw *ioutil.CountingWriter, params Params) {
	for i, p := range params {
		if i > 0 {
			cw.WriteString("&")
		}
		cw.WriteString(p.Key)
		cw.WriteString("=")
		cw.WriteString(p.Value)
	}
}

// Render returns the string representation of the RQF.
func (rqf RQF) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	rqf.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the RQF.
func (rqf RQF) String() string { return rqf.Render(nil) }
