// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package dump renders tokenized files for people and for other programs.
package dump

import (
	"bufio"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"gopkg.microglot.org/swiftl.go/internal/idl"
)

// Text writes the tokens of each file on one line, separated by spaces. When
// more than one file is given each line starts with the file URI.
func Text(w io.Writer, files ...*idl.TokenizedFile) error {
	bw := bufio.NewWriter(w)
	for _, file := range files {
		if len(files) > 1 {
			if _, err := fmt.Fprintf(bw, "%s: ", file.URI); err != nil {
				return err
			}
		}
		for x, t := range file.Tokens {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(t.String()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// JSON writes one document describing every file:
//
//	{"files": [{"uri": "...", "tokens": [{"type": "Identifier", "value": "x"}]}]}
//
// The value key is present only for token types that carry a payload.
func JSON(w io.Writer, files ...*idl.TokenizedFile) error {
	doc, err := Struct(files...)
	if err != nil {
		return err
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// Struct builds the document JSON writes.
func Struct(files ...*idl.TokenizedFile) (*structpb.Struct, error) {
	list := make([]any, 0, len(files))
	for _, file := range files {
		tokens := make([]any, 0, len(file.Tokens))
		for _, t := range file.Tokens {
			entry := map[string]any{"type": t.Type.String()}
			if t.Type.HasPayload() {
				entry["value"] = t.Value
			}
			tokens = append(tokens, entry)
		}
		list = append(list, map[string]any{
			"uri":    file.URI,
			"tokens": tokens,
		})
	}
	return structpb.NewStruct(map[string]any{"files": list})
}
