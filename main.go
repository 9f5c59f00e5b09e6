package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"gopkg.microglot.org/swiftl.go/internal/driver"
	"gopkg.microglot.org/swiftl.go/internal/dump"
	"gopkg.microglot.org/swiftl.go/internal/exc"
	"gopkg.microglot.org/swiftl.go/internal/fs"
	"gopkg.microglot.org/swiftl.go/internal/idl"
	"gopkg.microglot.org/swiftl.go/internal/target"
	"gopkg.microglot.org/swiftl.go/internal/token"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type opts struct {
	Roots          []string
	Output         string
	Format         string
	Types          []string
	NonFatal       []string
	MaxConcurrency int
}

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, lookupEnv func(string) (string, bool), stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("swiftl", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for targets.")
	flags.StringVar(&op.Output, "output", "-", "Output directory or - for STDOUT.")
	flags.StringVar(&op.Format, "format", formatText, "Output format: text or json.")
	flags.StringArrayVar(&op.Types, "type", nil, "Only output tokens of this type. May be repeated.")
	flags.StringArrayVar(&op.NonFatal, "non-fatal", nil, "Treat this exception code as recoverable. May be repeated.")
	flags.IntVar(&op.MaxConcurrency, "max-concurrency", 0, "Number of files to tokenize at once. Zero uses "+driver.EnvMaxConcurrency+" or the CPU count.")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err.Error())
		flags.PrintDefaults()
		return 2
	}
	targets := flags.Args()
	if len(targets) < 1 {
		fmt.Fprintln(stderr, "usage: swiftl [flags] TARGET...")
		flags.PrintDefaults()
		return 2
	}
	if op.Format != formatText && op.Format != formatJSON {
		fmt.Fprintf(stderr, "unknown format %q\n", op.Format)
		return 2
	}
	types := make([]token.Type, 0, len(op.Types))
	for _, name := range op.Types {
		t, ok := token.ParseType(name)
		if !ok {
			fmt.Fprintf(stderr, "unknown token type %q\n", name)
			return 2
		}
		types = append(types, t)
	}

	fsys, err := driver.NewDefaultFS(op.Roots...)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	d, err := driver.New(
		driver.OptionWithLookupEnv(lookupEnv),
		driver.OptionWithFS(fsys),
		driver.OptionWithExcReporter(exc.NewReporter(op.NonFatal)),
		driver.OptionWithMaxConcurrency(op.MaxConcurrency),
	)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	var out *idl.TokenizeResponse
	if hasStdin(targets) {
		files, errFiles := openTargets(ctx, fsys, targets, stdin)
		if errFiles != nil {
			fmt.Fprintln(stderr, errFiles.Error())
			return 1
		}
		out, err = d.TokenizeFiles(ctx, files, types)
	} else {
		out, err = d.Tokenize(ctx, &idl.TokenizeRequest{
			Files: targets,
			Types: types,
		})
	}
	code := 0
	if err != nil {
		var me driver.MultiException
		if !errors.As(err, &me) {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		for _, e := range me {
			fmt.Fprintln(stderr, e.Error())
		}
		code = 1
	}

	if err := write(ctx, op, out.Files, stdout); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return code
}

func hasStdin(targets []string) bool {
	for _, t := range targets {
		if t == target.Stdin {
			return true
		}
	}
	return false
}

// openTargets resolves targets the way the driver does except that the Stdin
// target reads all of stdin up front.
func openTargets(ctx context.Context, fsys idl.FileSystem, targets []string, stdin io.Reader) ([]idl.File, error) {
	files := make([]idl.File, 0, len(targets))
	for _, t := range targets {
		if t == target.Stdin {
			b, err := io.ReadAll(stdin)
			if err != nil {
				return nil, exc.WrapUnknown(exc.Location{URI: t}, err)
			}
			files = append(files, fs.NewFileString(t, string(b), idl.FileKindSwift))
			continue
		}
		in, err := fsys.Open(ctx, target.Normalize(t))
		if err != nil {
			return nil, err
		}
		files = append(files, in...)
	}
	return files, nil
}

func write(ctx context.Context, op *opts, files []*idl.TokenizedFile, stdout io.Writer) error {
	render := dump.Text
	ext := ".tokens"
	if op.Format == formatJSON {
		render = dump.JSON
		ext = ".tokens.json"
	}
	if op.Output == "-" {
		return render(stdout, files...)
	}
	outFS, err := fs.NewFileSystemLocal(op.Output)
	if err != nil {
		return err
	}
	for _, f := range files {
		var b bytes.Buffer
		if err := render(&b, f); err != nil {
			return err
		}
		name := strings.TrimPrefix(f.URI, "/")
		if f.URI == target.Stdin {
			name = "stdin"
		}
		if err := outFS.Write(ctx, name+ext, b.String()); err != nil {
			return err
		}
	}
	return nil
}
