package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected Token
	}{
		{input: "class", expected: Token{Type: TypeKeywordClass}},
		{input: "precedencegroup", expected: Token{Type: TypeKeywordPrecedencegroup}},
		{input: "self", expected: Token{Type: TypeKeywordSelf}},
		{input: "Self", expected: Token{Type: TypeKeywordSelfType}},
		{input: "Any", expected: Token{Type: TypeKeywordAny}},
		{input: "_", expected: Token{Type: TypeKeywordUnderscore}},
		{input: "__", expected: Token{Type: TypeIdentifier, Value: "__"}},
		{input: "Class", expected: Token{Type: TypeIdentifier, Value: "Class"}},
		{input: "classy", expected: Token{Type: TypeIdentifier, Value: "classy"}},
		{input: "x$1", expected: Token{Type: TypeIdentifier, Value: "x$1"}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, Lookup(testCase.input))
		})
	}
}

func TestKeywordTableCoversKeywordTypes(t *testing.T) {
	t.Parallel()

	isKeyword := func(typ Type) bool {
		return typ >= TypeKeywordAssociatedtype && typ <= TypeKeywordUnderscore
	}
	seen := make(map[Type]bool, len(keywords))
	for word, typ := range keywords {
		require.True(t, isKeyword(typ), word)
		require.False(t, seen[typ], "duplicate keyword type for %s", word)
		seen[typ] = true
	}
	for typ := TypeNone; typ <= TypeEOF; typ = typ + 1 {
		if isKeyword(typ) {
			require.True(t, seen[typ], "keyword type %s has no spelling", typ)
		}
	}
	require.Len(t, keywords, 54)
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		token    Token
		expected string
	}{
		{token: Token{Type: TypeLbrace}, expected: "Lbrace"},
		{token: Token{Type: TypeEOF}, expected: "EOF"},
		{token: Token{Type: TypeKeywordClass}, expected: "KeywordClass"},
		{token: Token{Type: TypeIdentifier, Value: "x"}, expected: `Identifier("x")`},
		{token: Token{Type: TypeStringLiteral, Value: "a\nb"}, expected: `StringLiteral("a\nb")`},
		{token: Token{Type: TypeOpBinarySpaced, Value: "+"}, expected: `OpBinarySpaced("+")`},
		{token: Token{Type: Type(1000)}, expected: "Type(1000)"},
	}
	for _, testCase := range testCases {
		require.Equal(t, testCase.expected, testCase.token.String())
	}
}

func TestTokenEquality(t *testing.T) {
	t.Parallel()

	require.Equal(t, New(TypeIdentifier, "a"), New(TypeIdentifier, "a"))
	require.NotEqual(t, New(TypeIdentifier, "a"), New(TypeIdentifier, "b"))
	require.NotEqual(t, New(TypeIdentifier, "a"), New(TypeDollarIdent, "a"))
	require.True(t, Token{Type: TypeOpPeriod} == Token{Type: TypeOpPeriod})
	require.True(t, Token{} == Token{Type: TypeNone})
	require.False(t, Token{Type: TypeEOF} == Token{Type: TypeNone})
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for typ := TypeNone; typ <= TypeEOF; typ = typ + 1 {
		parsed, ok := ParseType(typ.String())
		require.True(t, ok, typ.String())
		require.Equal(t, typ, parsed)
	}
	_, ok := ParseType("NotAType")
	require.False(t, ok)
}

func TestTypeClasses(t *testing.T) {
	t.Parallel()

	require.True(t, TypeIdentifier.HasPayload())
	require.True(t, TypeOpPostfix.HasPayload())
	require.False(t, TypeOpArrow.HasPayload())
	require.False(t, TypeUnknown.HasPayload())
	require.False(t, TypeKeywordLet.HasPayload())
}
