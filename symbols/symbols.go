// Package symbols translates display characters into segment patterns for a
// common anode 7-segment digit driven through a shift register.
//
// Bit to segment mapping, most significant bit first:
//
//	     ____
//	    | 40 |
//	 20 |____| 02
//	    | 80 |
//	 08 |____| 04  [] 01
//	      10
//
// Common anode: a cleared bit lights the segment.
package symbols

import (
	"github.com/pkg/errors"
)

// Code is the 8 bit pattern shifted out for one digit.
type Code byte

// segment bits
const (
	SegMiddle      Code = 0x80
	SegTop         Code = 0x40
	SegTopLeft     Code = 0x20
	SegBottom      Code = 0x10
	SegBottomLeft  Code = 0x08
	SegBottomRight Code = 0x04
	SegTopRight    Code = 0x02
	SegDot         Code = 0x01
)

const (
	Blank  Code = 0xFF
	Zero   Code = 0x81
	One    Code = 0xF9
	Two    Code = 0x25
	Three  Code = 0x29
	Four   Code = 0x59
	Five   Code = 0x0B
	Six    Code = 0x03
	Seven  Code = 0xB9
	Eight  Code = 0x01
	Nine   Code = 0x09
	Hyphen Code = 0x7F

	LetterA Code = 0x11
	LetterB Code = 0x43
	LetterC Code = 0x87
	LetterD Code = 0x61
	LetterE Code = 0x07
	LetterF Code = 0x17
	LetterR Code = 0x77
)

// ErrUnsupportedChar is returned when a character has no segment pattern.
var ErrUnsupportedChar = errors.New("unsupported character")

// translate characters to patterns, letters are looked up case-insensitively
var charCodes = map[byte]Code{
	' ': Blank,
	'-': Hyphen,
	'0': Zero,
	'1': One,
	'2': Two,
	'3': Three,
	'4': Four,
	'5': Five,
	'6': Six,
	'7': Seven,
	'8': Eight,
	'9': Nine,
	'a': LetterA,
	'b': LetterB,
	'c': LetterC,
	'd': LetterD,
	'e': LetterE,
	'f': LetterF,
	'r': LetterR,
}

// shifted keys on a US keyboard mean "digit with dot"
var dotAliases = map[byte]byte{
	')': '0',
	'!': '1',
	'@': '2',
	'#': '3',
	'$': '4',
	'%': '5',
	'^': '6',
	'&': '7',
	'*': '8',
	'(': '9',
}

// Encoder maps characters to segment patterns. The zero value is ready to use.
type Encoder struct{}

func lowerCase(char byte) byte {
	if char >= 'A' && char <= 'Z' {
		return char + 'a' - 'A'
	}
	return char
}

// Encode returns the pattern for c. Unsupported characters yield Zero along
// with an error wrapping ErrUnsupportedChar, so callers can keep rendering.
func (Encoder) Encode(c byte) (Code, error) {
	if digit, ok := dotAliases[c]; ok {
		return Encoder{}.AddDot(charCodes[digit]), nil
	}
	if code, ok := charCodes[lowerCase(c)]; ok {
		return code, nil
	}
	return Zero, errors.Wrapf(ErrUnsupportedChar, "%q", c)
}

// EncodeString encodes every byte of s. The returned slice is always complete;
// the error reports the first unsupported character, if any.
func (e Encoder) EncodeString(s string) ([]Code, error) {
	var first error
	codes := make([]Code, len(s))
	for i := 0; i < len(s); i++ {
		code, err := e.Encode(s[i])
		if err != nil && first == nil {
			first = err
		}
		codes[i] = code
	}
	return codes, first
}

// AddDot lights the decimal point of code.
func (Encoder) AddDot(code Code) Code {
	return code &^ SegDot
}

// Lit reports whether segment seg is lit in code.
func (code Code) Lit(seg Code) bool {
	return code&seg == 0
}
