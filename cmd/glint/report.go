package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/diag"
	"glint/internal/diagfmt"
	"glint/internal/driver"
)

// reportResult prints r's diagnostic (if any) to stderr in spec.md §6's
// pretty format and returns a non-nil error iff the compilation failed,
// matching the CLI's "non-zero exit on any diagnostic" contract.
func reportResult(cmd *cobra.Command, r *driver.Result) error {
	if r.Err == nil {
		return nil
	}
	d, ok := r.Err.(*diag.Diagnostic)
	if !ok || r.File == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), r.Err)
		return r.Err
	}
	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Context: 2}
	if err := diagfmt.Pretty(cmd.ErrOrStderr(), r.Path, r.File, d, opts); err != nil {
		return err
	}
	return r.Err
}
