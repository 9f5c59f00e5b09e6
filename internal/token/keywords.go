package token

var keywords = map[string]Type{
	// Declaration keywords.
	"associatedtype":  TypeKeywordAssociatedtype,
	"class":           TypeKeywordClass,
	"deinit":          TypeKeywordDeinit,
	"enum":            TypeKeywordEnum,
	"extension":       TypeKeywordExtension,
	"func":            TypeKeywordFunc,
	"import":          TypeKeywordImport,
	"init":            TypeKeywordInit,
	"inout":           TypeKeywordInout,
	"let":             TypeKeywordLet,
	"operator":        TypeKeywordOperator,
	"precedencegroup": TypeKeywordPrecedencegroup,
	"protocol":        TypeKeywordProtocol,
	"struct":          TypeKeywordStruct,
	"subscript":       TypeKeywordSubscript,
	"typealias":       TypeKeywordTypealias,
	"var":             TypeKeywordVar,
	"fileprivate":     TypeKeywordFileprivate,
	"internal":        TypeKeywordInternal,
	"private":         TypeKeywordPrivate,
	"public":          TypeKeywordPublic,
	"static":          TypeKeywordStatic,

	// Statement keywords.
	"defer":       TypeKeywordDefer,
	"if":          TypeKeywordIf,
	"guard":       TypeKeywordGuard,
	"do":          TypeKeywordDo,
	"repeat":      TypeKeywordRepeat,
	"else":        TypeKeywordElse,
	"for":         TypeKeywordFor,
	"in":          TypeKeywordIn,
	"while":       TypeKeywordWhile,
	"return":      TypeKeywordReturn,
	"break":       TypeKeywordBreak,
	"continue":    TypeKeywordContinue,
	"fallthrough": TypeKeywordFallthrough,
	"switch":      TypeKeywordSwitch,
	"case":        TypeKeywordCase,
	"default":     TypeKeywordDefault,
	"where":       TypeKeywordWhere,
	"catch":       TypeKeywordCatch,

	// Expression keywords.
	"as":       TypeKeywordAs,
	"Any":      TypeKeywordAny,
	"false":    TypeKeywordFalse,
	"is":       TypeKeywordIs,
	"nil":      TypeKeywordNil,
	"rethrows": TypeKeywordRethrows,
	"super":    TypeKeywordSuper,
	"self":     TypeKeywordSelf,
	"Self":     TypeKeywordSelfType,
	"throw":    TypeKeywordThrow,
	"true":     TypeKeywordTrue,
	"try":      TypeKeywordTry,
	"throws":   TypeKeywordThrows,

	// Pattern keywords.
	"_": TypeKeywordUnderscore,
}

// Lookup resolves identifier text against the reserved words. Text that is
// not reserved becomes an Identifier token carrying the text.
func Lookup(ident string) Token {
	if t, ok := keywords[ident]; ok {
		return Token{Type: t}
	}
	return Token{Type: TypeIdentifier, Value: ident}
}
