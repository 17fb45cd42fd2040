// Package constraints provides shared generic constraints.
package constraints

// Byteseq is a constraint that permits any byte sequence type.
type Byteseq interface {
	~string | ~[]byte
}
