package cipher

import "github.com/MeGrimlock/nigma/alphabet"

// Cipher is the contract every nigma cipher variant satisfies.
//
// Encode transforms the stored plaintext into ciphertext; Decode
// inverts it. Both return a new string and never mutate the stored
// message. Validation failures (empty message, bad key) surface as
// errors from the operation itself, not from construction, so an
// instance may be built first and keyed later.
type Cipher interface {
	Encode() (string, error)
	Decode() (string, error)
}

// Base carries the instance state common to all cipher variants:
// the message being transformed, the raw (not yet validated) key and
// the advisory encoded flag. Variants embed Base and add whatever
// extra keys or squares they need.
type Base struct {
	message  string
	key      string
	encoded  bool
	alphabet *alphabet.Table
}

// NewBase returns common cipher state. The encoded flag records
// whether message is already ciphertext; it is advisory only.
func NewBase(message, key string, encoded bool) Base {
	return Base{message: message, key: key, encoded: encoded}
}

// Message returns the stored message.
func (b *Base) Message() string { return b.message }

// SetMessage replaces the stored message.
func (b *Base) SetMessage(m string) { b.message = m }

// Key returns the raw key string.
func (b *Base) Key() string { return b.key }

// SetKey replaces the raw key. The new key is validated by the next
// Encode/Decode call, not here.
func (b *Base) SetKey(k string) { b.key = k }

// Encoded reports the advisory encoded flag.
func (b *Base) Encoded() bool { return b.encoded }

// SetEncoded sets the advisory encoded flag.
func (b *Base) SetEncoded(v bool) { b.encoded = v }

// Alphabet returns the substitution table override, or nil when the
// variant should derive its own table from the key.
func (b *Base) Alphabet() *alphabet.Table { return b.alphabet }

// SetAlphabet installs a substitution table override. Variants that
// build their table from the key consult this first and skip key
// derivation when it is set.
func (b *Base) SetAlphabet(t *alphabet.Table) { b.alphabet = t }
