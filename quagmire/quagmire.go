package quagmire

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/MeGrimlock/nigma/alphabet"
	"github.com/MeGrimlock/nigma/cipher"
)

// defaultIndicator anchors Quagmire 1–3 alignments beneath plain A.
const defaultIndicator = 'A'

// Quagmire is the shared engine behind all four variants: a plain and
// a cipher alphabet (keyed or standard), a repeating key and an
// indicator letter. Base.Key holds the repeating key.
type Quagmire struct {
	cipher.Base
	plainKey    string // keyword scrambling the plain alphabet, "" = standard
	cipherKey   string // keyword scrambling the cipher alphabet, "" = standard
	indicator   rune
	requireBoth bool // Quagmire 4: both keywords mandatory
}

var _ cipher.Cipher = (*Quagmire)(nil)

// NewQuagmire1 keys the cipher alphabet and leaves the plain alphabet
// standard.
func NewQuagmire1(message, keyword, key string) *Quagmire {
	return &Quagmire{
		Base:      cipher.NewBase(message, key, false),
		cipherKey: keyword,
		indicator: defaultIndicator,
	}
}

// NewQuagmire2 keys the plain alphabet and leaves the cipher alphabet
// standard.
func NewQuagmire2(message, keyword, key string) *Quagmire {
	return &Quagmire{
		Base:      cipher.NewBase(message, key, false),
		plainKey:  keyword,
		indicator: defaultIndicator,
	}
}

// NewQuagmire3 keys both alphabets with the same keyword.
func NewQuagmire3(message, keyword, key string) *Quagmire {
	return &Quagmire{
		Base:      cipher.NewBase(message, key, false),
		plainKey:  keyword,
		cipherKey: keyword,
		indicator: defaultIndicator,
	}
}

// NewQuagmire4 keys the two alphabets independently and takes an
// explicit indicator letter.
func NewQuagmire4(message, plainKeyword, cipherKeyword, key string, indicator rune) *Quagmire {
	return &Quagmire{
		Base:        cipher.NewBase(message, key, false),
		plainKey:    plainKeyword,
		cipherKey:   cipherKeyword,
		indicator:   indicator,
		requireBoth: true,
	}
}

// Indicator returns the indicator letter.
func (q *Quagmire) Indicator() rune { return q.indicator }

// Encode substitutes every letter through the tableau row selected by
// the repeating key; non-letters pass through without consuming a key
// position.
func (q *Quagmire) Encode() (string, error) {
	return q.transform(false)
}

// Decode inverts Encode under the same key alignment.
func (q *Quagmire) Decode() (string, error) {
	return q.transform(true)
}

func (q *Quagmire) transform(decoding bool) (string, error) {
	pa, ca, err := q.alphabets()
	if err != nil {
		return "", err
	}
	key := []rune(strings.ToUpper(q.Key()))
	anchor := strings.IndexRune(pa, unicode.ToUpper(q.indicator))
	if anchor < 0 {
		return "", fmt.Errorf("quagmire: indicator %q is not a letter: %w", q.indicator, cipher.ErrKeyValidation)
	}

	var out strings.Builder
	out.Grow(len(q.Message()))
	j := 0 // repeating-key position, advances on letters only
	for _, r := range q.Message() {
		if !isASCIILetter(r) {
			out.WriteRune(r)
			continue
		}

		k := key[j%len(key)]
		j++
		shift := strings.IndexRune(ca, k) - anchor

		upper := unicode.ToUpper(r)
		var sub rune
		if decoding {
			p := strings.IndexRune(ca, upper)
			sub = rune(pa[((p-shift)%26+26)%26])
		} else {
			p := strings.IndexRune(pa, upper)
			sub = rune(ca[((p+shift)%26+26)%26])
		}
		if unicode.IsLower(r) {
			sub = unicode.ToLower(sub)
		}
		out.WriteRune(sub)
	}

	return out.String(), nil
}

// alphabets validates message, keywords and repeating key, then
// derives the variant's plain and cipher alphabets.
func (q *Quagmire) alphabets() (string, string, error) {
	if q.Message() == "" {
		return "", "", fmt.Errorf("quagmire: %w", cipher.ErrEmptyMessage)
	}
	if err := cipher.ValidateKeyword(q.Key()); err != nil {
		return "", "", fmt.Errorf("quagmire: repeating key: %w", err)
	}
	if q.requireBoth && (q.plainKey == "" || q.cipherKey == "") {
		return "", "", fmt.Errorf("quagmire: both alphabet keywords required: %w", cipher.ErrEmptyKey)
	}

	pa, err := keyedOrStandard(q.plainKey)
	if err != nil {
		return "", "", fmt.Errorf("quagmire: plain alphabet: %w", err)
	}
	ca, err := keyedOrStandard(q.cipherKey)
	if err != nil {
		return "", "", fmt.Errorf("quagmire: cipher alphabet: %w", err)
	}
	if pa == alphabet.Upper && ca == alphabet.Upper {
		// Every variant scrambles at least one alphabet; reaching here
		// means the scrambling keyword was empty.
		return "", "", fmt.Errorf("quagmire: %w", cipher.ErrEmptyKey)
	}

	return pa, ca, nil
}

// isASCIILetter bounds the tableau domain: only A–Z/a–z consume a key
// position, everything else passes through.
func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// keyedOrStandard maps "" to the standard alphabet and anything else
// through the keyword validation + dedup-and-fill rule.
func keyedOrStandard(keyword string) (string, error) {
	if keyword == "" {
		return alphabet.Upper, nil
	}
	if err := cipher.ValidateKeyword(keyword); err != nil {
		return "", err
	}

	keyed, err := alphabet.Keyed(keyword)
	if err != nil {
		return "", fmt.Errorf("%w: %w", cipher.ErrKeyValidation, err)
	}

	return keyed, nil
}
