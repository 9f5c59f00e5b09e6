// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

import (
	"context"
	"fmt"
	"io"

	"gopkg.microglot.org/swiftl.go/internal/optional"
	"gopkg.microglot.org/swiftl.go/internal/token"
)

type Closer interface {
	Close(ctx context.Context) error
}

type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindSwift
)

func (k FileKind) String() string {
	switch k {
	case FileKindNone:
		return "none"
	case FileKindSwift:
		return "swift"
	default:
		return fmt.Sprintf("unknown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	// Body returns a fresh handle on every call. The caller must close it.
	Body(ctx context.Context) (io.ReadCloser, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

type Tokenizer interface {
	Tokenize(ctx context.Context, req *TokenizeRequest) (*TokenizeResponse, error)
}

type TokenizeRequest struct {
	Files []string
	// Types restricts the output to the listed token types. An empty set
	// keeps every token.
	Types []token.Type
}

type TokenizeResponse struct {
	Files []*TokenizedFile
}

type TokenizedFile struct {
	URI    string
	Tokens []token.Token
}
