// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"strconv"
	"strings"
)

// Token is a single lexical unit. Tokens are comparable values and two tokens
// are equal only when both the Type and the Value match.
//
// Value is empty for punctuation, fixed operators, keywords, EOF, Unknown, and
// None. Numeric literals carry their verbatim source text, including radix
// markers and '_' separators. String literals carry the decoded text with
// escapes resolved and the delimiting quotes removed. Identifiers and named
// operators carry their exact spelling.
type Token struct {
	Type  Type
	Value string
}

func New(t Type, value string) Token {
	return Token{Type: t, Value: value}
}

// String renders the token the way the CLI prints it: the type name alone, or
// the type name followed by the quoted payload.
func (t Token) String() string {
	if !t.Type.HasPayload() {
		return t.Type.String()
	}
	var b strings.Builder
	_, _ = b.WriteString(t.Type.String())
	_ = b.WriteByte('(')
	_, _ = b.WriteString(strconv.Quote(t.Value))
	_ = b.WriteByte(')')
	return b.String()
}

type Type uint16

//go:generate stringer -type=Type -trimprefix=Type
const (
	TypeNone    Type = iota // Placeholder before the first scan.
	TypeUnknown             // Invalid or unrecognized input.

	TypeAtSign
	TypeLbrace
	TypeRbrace
	TypeLsquare
	TypeRsquare
	TypeLparen
	TypeRparen
	TypeComma
	TypeSemi
	TypeColon

	TypeStringLiteral
	TypeIntegerLiteral
	TypeFloatingLiteral

	TypeDollarIdent
	TypeIdentifier

	TypeOpPrefix
	TypeOpPostfix
	TypeOpBinaryUnspaced
	TypeOpBinarySpaced

	TypeOpEqual
	TypeOpAmpPrefix
	TypeOpPeriod
	TypeOpPeriodPrefix
	TypeOpQuestionPostfix
	TypeOpQuestionInfix
	TypeOpArrow

	// Declaration keywords.
	TypeKeywordAssociatedtype
	TypeKeywordClass
	TypeKeywordDeinit
	TypeKeywordEnum
	TypeKeywordExtension
	TypeKeywordFunc
	TypeKeywordImport
	TypeKeywordInit
	TypeKeywordInout
	TypeKeywordLet
	TypeKeywordOperator
	TypeKeywordPrecedencegroup
	TypeKeywordProtocol
	TypeKeywordStruct
	TypeKeywordSubscript
	TypeKeywordTypealias
	TypeKeywordVar
	TypeKeywordFileprivate
	TypeKeywordInternal
	TypeKeywordPrivate
	TypeKeywordPublic
	TypeKeywordStatic

	// Statement keywords.
	TypeKeywordDefer
	TypeKeywordIf
	TypeKeywordGuard
	TypeKeywordDo
	TypeKeywordRepeat
	TypeKeywordElse
	TypeKeywordFor
	TypeKeywordIn
	TypeKeywordWhile
	TypeKeywordReturn
	TypeKeywordBreak
	TypeKeywordContinue
	TypeKeywordFallthrough
	TypeKeywordSwitch
	TypeKeywordCase
	TypeKeywordDefault
	TypeKeywordWhere
	TypeKeywordCatch

	// Expression keywords.
	TypeKeywordAs
	TypeKeywordAny
	TypeKeywordFalse
	TypeKeywordIs
	TypeKeywordNil
	TypeKeywordRethrows
	TypeKeywordSuper
	TypeKeywordSelf
	TypeKeywordSelfType
	TypeKeywordThrow
	TypeKeywordTrue
	TypeKeywordTry
	TypeKeywordThrows

	// Pattern keywords.
	TypeKeywordUnderscore

	TypeEOF
)

// HasPayload reports whether tokens of this type carry a Value.
func (t Type) HasPayload() bool {
	switch t {
	case TypeStringLiteral, TypeIntegerLiteral, TypeFloatingLiteral,
		TypeDollarIdent, TypeIdentifier,
		TypeOpPrefix, TypeOpPostfix, TypeOpBinaryUnspaced, TypeOpBinarySpaced:
		return true
	default:
		return false
	}
}

var typesByName map[string]Type

func init() {
	typesByName = make(map[string]Type, int(TypeEOF)+1)
	for t := TypeNone; t <= TypeEOF; t = t + 1 {
		typesByName[t.String()] = t
	}
}

// ParseType resolves a name produced by Type.String back into a Type.
func ParseType(name string) (Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}
