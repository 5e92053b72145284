package cipher

import "errors"

// Sentinel errors shared by every cipher family. Families wrap these
// with their own prefix via fmt.Errorf("family: …: %w", err) so callers
// can match with errors.Is regardless of which variant raised them.
var (
	// ErrEmptyMessage indicates Encode/Decode was called with no message.
	ErrEmptyMessage = errors.New("cipher: message is empty")

	// ErrEmptyKey indicates a required key is empty at operation time.
	ErrEmptyKey = errors.New("cipher: key is empty")

	// ErrKeyValidation indicates a malformed key: a non-integer shift key,
	// a keyword with non-letter symbols, or a transposition key that is
	// not a permutation of 1..n.
	ErrKeyValidation = errors.New("cipher: key validation failed")

	// ErrUnsupportedSymbol indicates a symbol outside the cipher's declared
	// domain where the variant's policy is to reject rather than pass through.
	ErrUnsupportedSymbol = errors.New("cipher: symbol outside cipher domain")
)
