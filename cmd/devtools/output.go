package main

import (
	"encoding/json"
	"io"
	"os"

	"golang.org/x/term"
)

// supportsColor reports whether writer is an interactive terminal.
func supportsColor(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
