package urn_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urn"
)

func TestParseRFC2141(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantNID string
		wantNSS string
		wantErr error
	}{
		{name: "book", in: "urn:isbn:0451450523", wantNID: "isbn", wantNSS: "0451450523"},
		{name: "upper scheme", in: "URN:ISBN:0451450523", wantNID: "ISBN", wantNSS: "0451450523"},
		{name: "single char nid", in: "urn:a:bar", wantNID: "a", wantNSS: "bar"},
		{name: "nss with colons", in: "urn:example:a123,z456:xyz", wantNID: "example", wantNSS: "a123,z456:xyz"},
		{name: "escaped nss", in: "urn:example:a%20b", wantNID: "example", wantNSS: "a%20b"},
		{name: "hex normalized", in: "urn:example:a%2Fb", wantNID: "example", wantNSS: "a%2fb"},
		{name: "empty", in: "", wantErr: urn.ErrInvalidArgument},
		{name: "no scheme", in: "isbn:0451450523", wantErr: urn.ErrSyntax},
		{name: "wrong scheme", in: "http:isbn:0451450523", wantErr: urn.ErrSyntax},
		{name: "missing nss", in: "urn:isbn", wantErr: urn.ErrSyntax},
		{name: "empty nss", in: "urn:isbn:", wantErr: urn.ErrSyntax},
		{name: "empty nid", in: "urn::0451450523", wantErr: urn.ErrSyntax},
		{name: "reserved nid", in: "urn:urn:0451450523", wantErr: urn.ErrSyntax},
		{name: "bad nid", in: "urn:!?:1234", wantErr: urn.ErrSyntax},
		{name: "bad nss", in: "urn:example:a|b", wantErr: urn.ErrSyntax},
		{name: "slash in nss", in: "urn:example:1/406", wantErr: urn.ErrSyntax},
		{name: "whitespace nss", in: "urn:example:a b", wantErr: urn.ErrSyntax},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := urn.ParseRFC2141(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("urn.ParseRFC2141(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				return
			}
			if got := u.NID().String(); got != c.wantNID {
				t.Errorf("u.NID().String() = %q, want %q", got, c.wantNID)
			}
			if got := u.NSS().String(); got != c.wantNSS {
				t.Errorf("u.NSS().String() = %q, want %q", got, c.wantNSS)
			}
			if got := u.RFC(); got != urn.RFC2141 {
				t.Errorf("u.RFC() = %v, want %v", got, urn.RFC2141)
			}
			if !u.IsValid() {
				t.Error("u.IsValid() = false, want true")
			}
		})
	}
}

func TestURN2141_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"round trip", "urn:isbn:0451450523", "urn:isbn:0451450523"},
		{"nid case kept", "urn:ISBN:0451450523", "urn:ISBN:0451450523"},
		{"octets lowercased", "urn:example:a%2Fb%C3%B6", "urn:example:a%2fb%c3%b6"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := urn.ParseRFC2141(c.in)
			if err != nil {
				t.Fatalf("urn.ParseRFC2141(%q) error = %v, want nil", c.in, err)
			}
			if got := u.String(); got != c.want {
				t.Errorf("u.String() = %q, want %q", got, c.want)
			}

			var sb strings.Builder
			if _, err := u.RenderTo(&sb, nil); err != nil {
				t.Fatalf("u.RenderTo(sb, nil) error = %v, want nil", err)
			}
			if got := sb.String(); got != c.want {
				t.Errorf("sb.String() = %q, want %q", got, c.want)
			}
		})
	}

	if got := (*urn.URN2141)(nil).String(); got != "" {
		t.Errorf("nil.String() = %q, want %q", got, "")
	}
}

func TestURN2141_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		u1, u2 string
		want   bool
	}{
		{"identical", "urn:isbn:0451450523", "urn:isbn:0451450523", true},
		{"nid case ignored", "urn:ISBN:0451450523", "urn:isbn:0451450523", true},
		{"scheme case ignored", "URN:isbn:0451450523", "urn:isbn:0451450523", true},
		{"octet case ignored", "urn:example:a%2Fb", "urn:example:a%2fb", true},
		{"nss case significant", "urn:example:ABC", "urn:example:abc", false},
		{"nss differs", "urn:isbn:0451450523", "urn:isbn:0451450524", false},
		{"nid differs", "urn:isbn:0451450523", "urn:issn:0451450523", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u1, err := urn.ParseRFC2141(c.u1)
			if err != nil {
				t.Fatalf("urn.ParseRFC2141(%q) error = %v, want nil", c.u1, err)
			}
			u2, err := urn.ParseRFC2141(c.u2)
			if err != nil {
				t.Fatalf("urn.ParseRFC2141(%q) error = %v, want nil", c.u2, err)
			}
			if got := u1.Equal(u2); got != c.want {
				t.Errorf("u1.Equal(u2) = %v, want %v", got, c.want)
			}
			if gotKeys := u1.Key() == u2.Key(); gotKeys != c.want {
				t.Errorf("u1.Key() == u2.Key() is %v, want %v", gotKeys, c.want)
			}
		})
	}

	u, err := urn.ParseRFC2141("urn:isbn:0451450523")
	if err != nil {
		t.Fatalf("urn.ParseRFC2141() error = %v, want nil", err)
	}
	if u.Equal("urn:isbn:0451450523") {
		t.Error("u.Equal(string) = true, want false")
	}
	if u.Equal((*urn.URN2141)(nil)) {
		t.Error("u.Equal(nil pointer) = true, want false")
	}
}

func TestNewURN2141(t *testing.T) {
	t.Parallel()

	nid2141 := mustNewNID(t, "isbn", urn.RFC2141)
	nss2141 := mustNewNSS(t, "0451450523", urn.NotEncoded, urn.RFC2141)
	nid8141 := mustNewNID(t, "isbn", urn.RFC8141)
	nss8141 := mustNewNSS(t, "0451450523", urn.NotEncoded, urn.RFC8141)

	cases := []struct {
		name    string
		nid     urn.NID
		nss     urn.NSS
		wantErr error
	}{
		{"valid", nid2141, nss2141, nil},
		{"zero nid", urn.NID{}, nss2141, urn.ErrInvalidArgument},
		{"zero nss", nid2141, urn.NSS{}, urn.ErrInvalidArgument},
		{"nid of wrong rfc", nid8141, nss2141, urn.ErrInvalidArgument},
		{"nss of wrong rfc", nid2141, nss8141, urn.ErrInvalidArgument},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := urn.NewURN2141(c.nid, c.nss)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("urn.NewURN2141() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if c.wantErr == nil && u.String() != "urn:isbn:0451450523" {
				t.Errorf("u.String() = %q, want %q", u.String(), "urn:isbn:0451450523")
			}
		})
	}
}

func TestURN2141_URL(t *testing.T) {
	t.Parallel()

	u, err := urn.ParseRFC2141("urn:isbn:0451450523")
	if err != nil {
		t.Fatalf("urn.ParseRFC2141() error = %v, want nil", err)
	}
	loc, err := u.URL()
	if err != nil {
		t.Fatalf("u.URL() error = %v, want nil", err)
	}
	if loc.Scheme != urn.Scheme {
		t.Errorf("loc.Scheme = %q, want %q", loc.Scheme, urn.Scheme)
	}
	if loc.Opaque != "isbn:0451450523" {
		t.Errorf("loc.Opaque = %q, want %q", loc.Opaque, "isbn:0451450523")
	}

	u2, err := urn.ParseURL2141(loc)
	if err != nil {
		t.Fatalf("urn.ParseURL2141() error = %v, want nil", err)
	}
	if !u.Equal(u2) {
		t.Errorf("u.Equal(u2) = false, want true, u2 = %q", u2)
	}
}

func TestParseURL2141(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		url     *url.URL
		wantErr error
	}{
		{"valid", &url.URL{Scheme: "urn", Opaque: "isbn:0451450523"}, nil},
		{"nil", nil, urn.ErrInvalidArgument},
		{"not a urn", &url.URL{Scheme: "http", Host: "example.com"}, urn.ErrSyntax},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := urn.ParseURL2141(c.url)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("urn.ParseURL2141(%v) error = %v, want %v\ndiff (-got +want):\n%v", c.url, err, c.wantErr, diff)
			}
		})
	}
}

func TestURN2141_MarshalText(t *testing.T) {
	t.Parallel()

	u, err := urn.ParseRFC2141("urn:isbn:0451450523")
	if err != nil {
		t.Fatalf("urn.ParseRFC2141() error = %v, want nil", err)
	}
	text, err := u.MarshalText()
	if err != nil {
		t.Fatalf("u.MarshalText() error = %v, want nil", err)
	}

	var got urn.URN2141
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("got.UnmarshalText(text) error = %v, want nil", err)
	}
	if !got.Equal(u) {
		t.Errorf("got.Equal(u) = false, want true, got = %q", &got)
	}

	if err := got.UnmarshalText([]byte("not a urn")); err == nil {
		t.Fatal("got.UnmarshalText() error = nil, want error")
	}
	if got.IsValid() {
		t.Error("got.IsValid() = true after failed unmarshal, want false")
	}
}

func TestURN2141_Clone(t *testing.T) {
	t.Parallel()

	u, err := urn.ParseRFC2141("urn:isbn:0451450523")
	if err != nil {
		t.Fatalf("urn.ParseRFC2141() error = %v, want nil", err)
	}
	u2 := u.Clone()
	if u2 == urn.URN(u) {
		t.Error("u.Clone() returned the same pointer")
	}
	if !u.Equal(u2) {
		t.Errorf("u.Equal(u.Clone()) = false, want true")
	}
}

func mustNewNID(t *testing.T, s string, rfc urn.RFC) urn.NID {
	t.Helper()
	nid, err := urn.NewNID(s, rfc)
	if err != nil {
		t.Fatalf("urn.NewNID(%q, %v) error = %v, want nil", s, rfc, err)
	}
	return nid
}

func mustNewNSS(t *testing.T, s string, enc urn.Encoding, rfc urn.RFC) urn.NSS {
	t.Helper()
	nss, err := urn.NewNSS(s, enc, rfc)
	if err != nil {
		t.Fatalf("urn.NewNSS(%q, %v, %v) error = %v, want nil", s, enc, rfc, err)
	}
	return nss
}
