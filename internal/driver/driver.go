// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package driver tokenizes sets of source files concurrently.
package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.microglot.org/swiftl.go/internal/exc"
	"gopkg.microglot.org/swiftl.go/internal/fs"
	"gopkg.microglot.org/swiftl.go/internal/idl"
	"gopkg.microglot.org/swiftl.go/internal/iter"
	"gopkg.microglot.org/swiftl.go/internal/lexer"
	"gopkg.microglot.org/swiftl.go/internal/target"
	"gopkg.microglot.org/swiftl.go/internal/token"
)

// EnvMaxConcurrency overrides the default number of files lexed at once.
const EnvMaxConcurrency = "SWIFTL_MAX_CONCURRENCY"

type Option func(d *Driver) error

func OptionWithFS(fs idl.FileSystem) Option {
	return func(d *Driver) error {
		d.fs = fs
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(d *Driver) error {
		d.lookupEnv = lookupEnv
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(d *Driver) error {
		d.reporter = reporter
		return nil
	}
}

// OptionWithMaxConcurrency bounds the number of files lexed at once. Zero
// selects the default.
func OptionWithMaxConcurrency(max int) Option {
	return func(d *Driver) error {
		if max < 0 {
			return fmt.Errorf("max concurrency must not be negative: %d", max)
		}
		d.maxConcurrency = max
		return nil
	}
}

var _ idl.Tokenizer = (*Driver)(nil)

// Driver is safe for concurrent use. Every diagnostic from every call goes to
// the same reporter.
type Driver struct {
	lookupEnv      func(string) (string, bool)
	fs             idl.FileSystem
	maxConcurrency int
	semaphore      *semaphore
	reporter       exc.Reporter
}

func New(opts ...Option) (*Driver, error) {
	d := &Driver{}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.lookupEnv == nil {
		d.lookupEnv = os.LookupEnv
	}
	if d.fs == nil {
		dfs, err := NewDefaultFS(".")
		if err != nil {
			return nil, err
		}
		d.fs = dfs
	}
	if d.maxConcurrency == 0 {
		if v, ok := d.lookupEnv(EnvMaxConcurrency); ok && v != "" {
			max, err := strconv.Atoi(v)
			if err != nil || max < 0 {
				return nil, fmt.Errorf("invalid %s value %q", EnvMaxConcurrency, v)
			}
			d.maxConcurrency = max
		}
	}
	if d.maxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		d.maxConcurrency = max
	}
	if d.semaphore == nil {
		d.semaphore = newSemaphore(d.maxConcurrency)
	}
	if d.reporter == nil {
		d.reporter = exc.NewReporter(nil)
	}
	return d, nil
}

// Tokenize resolves every target through the file system and lexes the
// resulting files. Directories expand to the source files they contain.
func (self *Driver) Tokenize(ctx context.Context, req *idl.TokenizeRequest) (*idl.TokenizeResponse, error) {
	files := make([]idl.File, 0, len(req.Files))
	for _, t := range req.Files {
		in, err := self.fs.Open(ctx, target.Normalize(t))
		if err != nil {
			return nil, err
		}
		files = append(files, in...)
	}
	return self.TokenizeFiles(ctx, files, req.Types)
}

// TokenizeFiles lexes files that are already open. Files of an unknown kind
// and repeated paths are skipped. The response lists files in input order.
// When types is not empty only tokens of those types are kept.
//
// A fatal lexical error ends the token stream of its own file only. If any
// exception was reported the response is returned along with a
// MultiException holding all of them.
func (self *Driver) TokenizeFiles(ctx context.Context, files []idl.File, types []token.Type) (*idl.TokenizeResponse, error) {
	unique := make([]idl.File, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, file := range files {
		if file.Kind(ctx) == idl.FileKindNone {
			continue
		}
		p := file.Path(ctx)
		if seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, file)
	}

	var filter idl.Filter[token.Token]
	if len(types) > 0 {
		keep := make(map[token.Type]bool, len(types))
		for _, t := range types {
			keep[t] = true
		}
		filter = iter.FilterFunc[token.Token](func(ctx context.Context, t token.Token) bool {
			return keep[t.Type]
		})
	}

	results := make(chan fileResult, len(unique))
	for offset, file := range unique {
		go func(offset int, file idl.File) {
			tokenized, err := self.tokenizeFile(ctx, file, filter)
			results <- fileResult{offset: offset, file: tokenized, err: err}
		}(offset, file)
	}

	out := make([]*idl.TokenizedFile, len(unique))
	for x := 0; x < len(unique); x = x + 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-results:
			if result.err != nil {
				return nil, result.err
			}
			out[result.offset] = result.file
		}
	}

	resp := &idl.TokenizeResponse{Files: out}
	caught := self.reporter.Reported()
	if len(caught) > 0 {
		return resp, MultiException(caught)
	}
	return resp, nil
}

func (self *Driver) tokenizeFile(ctx context.Context, file idl.File, filter idl.Filter[token.Token]) (*idl.TokenizedFile, error) {
	self.semaphore.Lock()
	defer self.semaphore.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := file.Path(ctx)
	content, err := fs.ReadAll(ctx, file)
	if err != nil {
		return nil, err
	}
	l := lexer.New(content, lexer.OptionWithReporter(self.reporter), lexer.OptionWithURI(path))
	it := l.Iterator()
	if filter != nil {
		it = iter.NewIteratorFilter(it, filter)
	}
	// A fatal lexer error is already held by the reporter. Only
	// cancellation aborts the file.
	tokens, _ := iter.Collect(ctx, it)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &idl.TokenizedFile{URI: path, Tokens: tokens}, nil
}

type fileResult struct {
	offset int
	file   *idl.TokenizedFile
	err    error
}

// MultiException is every exception reported during a call.
type MultiException []exc.Exception

func (self MultiException) Error() string {
	if len(self) < 1 {
		return "no exceptions"
	}
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}
