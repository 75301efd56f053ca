package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

const previewWrap = 120

// renderPreview renders markdown for the terminal, falling back to the raw
// text if rendering fails.
func renderPreview(w io.Writer, md string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWrap),
	)
	if err != nil {
		return fmt.Errorf("preview renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		out = md + "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}
