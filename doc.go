// Package urn provides parsing, validation, normalization and rendering of
// Uniform Resource Names (URNs) according to RFC 2141 and RFC 8141.
//
// # Overview
//
// A URN is a location-independent, persistent identifier of the form
//
//	urn:<NID>:<NSS>
//
// where NID is the namespace identifier and NSS the namespace specific
// string. RFC 8141 extends the form with optional trailing components
//
//	urn:<NID>:<NSS>?+<r-component>?=<q-component>#<f-component>
//
// carrying resolution hints, queries and a fragment.
//
// The package implements two URN types, one per supported RFC:
//
//   - [URN2141]: the original syntax. Single-character namespace identifiers
//     are allowed and no components beyond the NSS exist.
//
//   - [URN8141]: the revised syntax. Namespace identifiers are 2 to 32
//     characters long with alphanumeric first and last characters, the NSS
//     grammar admits "/", "?", "~" and "&", and the [RQF] components are
//     parsed and rendered but excluded from equality.
//
// Both types implement the [URN] interface, providing uniform access to
// rendering, cloning, validation and equality comparison.
//
// # Parsing
//
// Each RFC has its own parsing function:
//
//	u, err := urn.ParseRFC2141("urn:isbn:0451450523")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Returns *urn.URN2141
//
//	u8, err := urn.ParseRFC8141("urn:example:foo-bar?=CID=39caeb#frag")
//	// Returns *urn.URN8141 with query parameters and a fragment
//
// [ParseURL2141] and [ParseURL8141] accept a ready [net/url.URL] value
// instead of a literal.
//
// # Construction
//
// URNs can also be composed from validated components:
//
//	nid, err := urn.NewNID("isbn", urn.RFC2141)
//	nss, err := urn.NewNSS("0451450523", urn.NotEncoded, urn.RFC2141)
//	u, err := urn.NewURN2141(nid, nss)
//
// A raw (not encoded) NSS literal is percent-encoded on construction, an
// already encoded literal is validated and its escape sequences normalized
// to lowercase hex digits.
//
// # Equality
//
// URN equality follows the RFCs: namespace identifiers are compared
// case-insensitively, namespace specific strings by their URL-encoded
// forms, and the RFC 8141 RQF components are ignored. [URN.Key] returns
// a canonical string that is equal exactly when the URNs are equal, so
// URNs can be used as map keys through it.
//
// # Errors
//
// All syntax violations are reported as [SyntaxError] values wrapping the
// [ErrSyntax] sentinel and carrying the violated RFC and the kind of the
// violation. Invalid API usage is reported through [ErrInvalidArgument].
package urn
