package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.llib.dev/rangekit/pkg/errorkit"
)

const ErrUnknownFormat errorkit.Error = "unknown output format"

const (
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

type record struct {
	Index uint    `json:"index"`
	Key   *string `json:"key,omitempty"`
	Value string  `json:"value"`
}

type printer interface {
	Print(r record) error
}

func newPrinter(format string, w io.Writer) (printer, error) {
	switch format {
	case FormatTSV, "":
		return tsvPrinter{w: w}, nil
	case FormatJSON:
		return jsonPrinter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, ErrUnknownFormat.F("%q", format)
	}
}

type tsvPrinter struct{ w io.Writer }

func (p tsvPrinter) Print(r record) error {
	if r.Key != nil {
		_, err := fmt.Fprintf(p.w, "%d\t%s\t%s\n", r.Index, *r.Key, r.Value)
		return err
	}
	_, err := fmt.Fprintf(p.w, "%d\t%s\n", r.Index, r.Value)
	return err
}

type jsonPrinter struct{ enc *json.Encoder }

func (p jsonPrinter) Print(r record) error { return p.enc.Encode(r) }
