package exc

import (
	"errors"
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReporterDefaults(t *testing.T) {
	t.Parallel()

	r := NewReporter(nil)
	nonFatal := New(Location{URI: "/a.swift"}, CodeInvalidEscape, "invalid escape")
	require.Nil(t, r.Report(nonFatal))
	fatal := New(Location{URI: "/a.swift"}, CodeNullCharacter, "unexpected null character")
	require.Equal(t, fatal, r.Report(fatal))
	require.Equal(t, []Exception{nonFatal, fatal}, r.Reported())
}

func TestReporterExtraNonFatal(t *testing.T) {
	t.Parallel()

	r := NewReporter([]string{CodeInvalidNumber})
	require.Nil(t, r.Report(New(Location{}, CodeInvalidNumber, "expected digit")))
	require.NotNil(t, r.Report(New(Location{}, CodeUnsupportedHexLiteral, "hex")))
}

func TestReporterConcurrent(t *testing.T) {
	t.Parallel()

	r := NewReporter(nil)
	var wg sync.WaitGroup
	for x := 0; x < 16; x = x + 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Report(New(Location{}, CodeUnknownCharacter, "unknown"))
		}()
	}
	wg.Wait()
	require.Len(t, r.Reported(), 16)
}

func TestFatalByDefault(t *testing.T) {
	t.Parallel()

	r := NewReporter(nil)
	for _, code := range []string{CodeNullCharacter, CodeInvalidNumber, CodeUnsupportedHexLiteral, CodeFileNotFound} {
		require.Error(t, r.Report(New(Location{}, code, "fatal")), code)
	}
	for _, code := range []string{CodeInvalidDollarIdent, CodeInvalidEscape, CodeInvalidUnicodeEscape, CodeUnterminatedString, CodeAmbiguousOperator, CodeUnknownCharacter, CodeUnterminatedComment, CodeNullInComment} {
		require.NoError(t, r.Report(New(Location{}, code, "recoverable")), code)
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	require.Nil(t, Wrap(Location{}, CodeUnknownFatal, nil))

	cause := &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}
	e := Wrap(Location{URI: "x"}, CodeFileNotFound, cause)
	require.Equal(t, CodeFileNotFound, e.Code())
	require.True(t, errors.Is(e, fs.ErrNotExist))

	inner := New(Location{URI: "y"}, CodeInvalidNumber, "bad number")
	outer := WrapUnknown(Location{URI: "z"}, inner)
	require.Equal(t, CodeUnknownFatal, outer.Code())
	require.Equal(t, "bad number", outer.Message())
	var target Exception
	require.True(t, errors.As(errors.Unwrap(outer), &target))
	require.Equal(t, CodeInvalidNumber, target.Code())
}

func TestLocationOf(t *testing.T) {
	t.Parallel()

	content := []byte("ab\ncd\r\nef\rg")
	testCases := []struct {
		offset int
		line   int32
		col    int32
	}{
		{offset: 0, line: 1, col: 1},
		{offset: 2, line: 1, col: 3},
		{offset: 3, line: 2, col: 1},
		{offset: 7, line: 3, col: 1},
		{offset: 10, line: 4, col: 1},
		{offset: 100, line: 4, col: 2},
		{offset: -5, line: 1, col: 1},
	}
	for _, testCase := range testCases {
		loc := LocationOf("/f.swift", content, testCase.offset)
		require.Equal(t, testCase.line, loc.Line, "offset %d", testCase.offset)
		require.Equal(t, testCase.col, loc.Column, "offset %d", testCase.offset)
		require.Equal(t, "/f.swift", loc.URI)
	}
}

func TestExceptionError(t *testing.T) {
	t.Parallel()

	e := New(Location{URI: "/f.swift", Line: 2, Column: 5, Offset: 9}, CodeInvalidEscape, "invalid escape sequence")
	require.Equal(t, "/f.swift:2:5 -- M0011: invalid escape sequence", e.Error())
}
