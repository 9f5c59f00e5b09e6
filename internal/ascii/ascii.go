// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package ascii classifies single source bytes. Every predicate is a pure
// function of one byte and only ASCII values ever match; bytes above 0x7F are
// never letters, digits, or operator characters.
package ascii

const (
	NUL       byte = 0x00
	Tab       byte = 0x09
	LF        byte = 0x0A
	VT        byte = 0x0B
	FF        byte = 0x0C
	CR        byte = 0x0D
	Space     byte = 0x20
	Slash     byte = 0x2F // Comment introducer and operator character.
	Backslash byte = 0x5C // String escape introducer.
)

func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func IsOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

func IsBinaryDigit(b byte) bool {
	return b == '0' || b == '1'
}

func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func IsLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsIdentifierHead reports whether b may start an identifier.
func IsIdentifierHead(b byte) bool {
	return IsLetter(b) || b == '_'
}

// IsIdentifierBody reports whether b may continue an identifier. Unlike the
// head, the body also accepts digits and '$'.
func IsIdentifierBody(b byte) bool {
	return IsLetter(b) || IsDigit(b) || b == '_' || b == '$'
}

// IsOperatorBody reports whether b belongs to the operator character set
// / = - + * % < > ! & | ^ ~ . ?
func IsOperatorBody(b byte) bool {
	switch b {
	case Slash, '=', '-', '+', '*', '%', '<', '>', '!', '&', '|', '^', '~', '.', '?':
		return true
	default:
		return false
	}
}

// IsWhitespace matches the bytes the lexer skips between tokens.
func IsWhitespace(b byte) bool {
	switch b {
	case Space, Tab, LF, CR, FF, VT:
		return true
	default:
		return false
	}
}

// IsLeftUnbound reports whether an operator preceded by b is considered
// detached from its left operand.
func IsLeftUnbound(b byte) bool {
	switch b {
	case Space, CR, LF, Tab, FF, VT, // whitespace
		'{', '[', '(', // opening delimiters
		',', ';', ':', // expression separators
		NUL:
		return true
	default:
		return false
	}
}

// IsRightUnbound reports whether an operator followed by b is considered
// detached from its right operand. The '.' case is context dependent and is
// resolved by the caller.
func IsRightUnbound(b byte) bool {
	switch b {
	case Space, CR, LF, Tab, FF, VT, // whitespace
		'}', ']', ')', // closing delimiters
		',', ';', ':', // expression separators
		NUL:
		return true
	default:
		return false
	}
}
