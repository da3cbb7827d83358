// Package profile orchestrates the extraction components into a single
// structured profile per document.
package profile

import "fmt"

// MinInputLength is the minimum number of characters of extracted text the
// pipeline will accept. Anything shorter is refused outright rather than
// turned into a profile built on noise.
const MinInputLength = 50

// ErrInputTooSparse indicates the document text was too short to structure.
type ErrInputTooSparse struct {
	Length int
}

func (e *ErrInputTooSparse) Error() string {
	return fmt.Sprintf("document text too sparse: %d characters, need at least %d", e.Length, MinInputLength)
}
