package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
)

// WriteJSON encodes a figure as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(f *figure.Figure, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a figure to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(f *figure.Figure, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "create %s", path)
	}
	if err := WriteJSON(f, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "close %s", path)
	}
	return nil
}
