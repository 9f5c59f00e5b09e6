package exc

const (
	CodeUnknownFatal                  = "M0000"
	CodeFileNotFound                  = "M0001"
	CodeUnsuportedFileSystemOperation = "M0002"
	CodePermissionDenied              = "M0003"
	CodeUnsupportedFileFormat         = "M0004"
	CodeUnexpectedEOF                 = "M0005"
	CodeInvalidNumber                 = "M0007"
	CodeNullCharacter                 = "M0008"
	CodeUnsupportedHexLiteral         = "M0009"
	CodeInvalidDollarIdent            = "M0010"
	CodeInvalidEscape                 = "M0011"
	CodeInvalidUnicodeEscape          = "M0012"
	CodeUnterminatedString            = "M0013"
	CodeAmbiguousOperator             = "M0014"
	CodeUnknownCharacter              = "M0015"
	CodeUnterminatedComment           = "M0016"
	CodeNullInComment                 = "M0017"
)

const (
	CodeEOF = "_EOF_"
)

var (
	// Lexical problems that still leave the scanner at a sensible position
	// to continue from. The lexer emits an Unknown token or skips the input.
	defaultNonFatal = map[string]bool{
		CodeInvalidDollarIdent:   true,
		CodeInvalidEscape:        true,
		CodeInvalidUnicodeEscape: true,
		CodeUnterminatedString:   true,
		CodeAmbiguousOperator:    true,
		CodeUnknownCharacter:     true,
		CodeUnterminatedComment:  true,
		CodeNullInComment:        true,
	}
)
