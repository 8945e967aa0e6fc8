// Package main provides the modelmap CLI.
//
// modelmap applies YAML mapping files to JSON records:
//   - map: converts records between wire format and model form
//   - check: validates and lints a mapping file
//   - suggest: proposes direct entries from sample records
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
