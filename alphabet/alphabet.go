// Package alphabet maps the symbols of a fixed alphabet to and from their
// position in it, 0 through Radix()-1.
package alphabet

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrInvalidRadix    = errors.New("alphabet: radix out of range")
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")
	ErrSymbolNotFound  = errors.New("alphabet: symbol not in alphabet")
	ErrIndexOutOfRange = errors.New("alphabet: index out of range")
)

var (
	Binary        = MustNew("01")
	Octal         = MustNew("01234567")
	Decimal       = MustNew("0123456789")
	Hexadecimal   = MustNew("0123456789ABCDEF")
	Lowercase     = MustNew("abcdefghijklmnopqrstuvwxyz")
	Uppercase     = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	Base64        = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
	ASCII         = MustNewRadix(128)
	ExtendedASCII = MustNewRadix(256)
	Unicode16     = MustNewRadix(65536)
)

// Alphabet is immutable once built and may be shared freely.
type Alphabet struct {
	symbols []rune
	members *bitset.BitSet
	// index is nil when every symbol is its own index
	index map[rune]int
}

// New builds the alphabet made of the symbols of s, in order. Every symbol
// may occur only once.
func New(s string) (*Alphabet, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty alphabet", ErrInvalidRadix)
	}

	n := utf8.RuneCountInString(s)
	a := &Alphabet{
		symbols: make([]rune, 0, n),
		members: bitset.New(0),
		index:   make(map[rune]int, n),
	}
	for _, r := range s {
		if a.members.Test(uint(r)) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		a.members.Set(uint(r))
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}
	return a, nil
}

// NewRadix builds the alphabet of the first radix code points, each symbol
// standing for its own index.
func NewRadix(radix int) (*Alphabet, error) {
	if radix < 1 || radix > utf8.MaxRune+1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadix, radix)
	}

	a := &Alphabet{
		symbols: make([]rune, radix),
		members: bitset.New(uint(radix)),
	}
	for i := range a.symbols {
		a.symbols[i] = rune(i)
		a.members.Set(uint(i))
	}
	return a, nil
}

func MustNew(s string) *Alphabet {
	a, err := New(s)
	if err != nil {
		panic(err)
	}
	return a
}

func MustNewRadix(radix int) *Alphabet {
	a, err := NewRadix(radix)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Alphabet) Contains(r rune) bool {
	return r >= 0 && a.members.Test(uint(r))
}

// Radix returns the number of symbols.
func (a *Alphabet) Radix() int {
	return len(a.symbols)
}

// RadixBits returns the number of times the radix can be halved before it
// reaches zero, which is the bit length of the radix.
func (a *Alphabet) RadixBits() int {
	bits := 0
	for r := a.Radix(); r >= 1; r /= 2 {
		bits++
	}
	return bits
}

// ToIndex returns the position of r in the alphabet.
func (a *Alphabet) ToIndex(r rune) (int, error) {
	if !a.Contains(r) {
		return 0, fmt.Errorf("%w: %q", ErrSymbolNotFound, r)
	}
	if a.index == nil {
		return int(r), nil
	}
	return a.index[r], nil
}

// ToChar returns the symbol at position i.
func (a *Alphabet) ToChar(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(a.symbols))
	}
	return a.symbols[i], nil
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}
