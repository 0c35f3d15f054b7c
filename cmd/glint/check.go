package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glint/internal/driver"
	"glint/internal/encode"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.glint>",
	Short: "Type-check a glint source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	r := driver.CompileFile(args[0])
	if err := reportResult(cmd, r); err != nil {
		return err
	}

	emit, _ := cmd.Root().PersistentFlags().GetString("emit")
	if emit == "msgpack" {
		return encode.Program(cmd.OutOrStdout(), r.Summaries)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		return nil
	}
	for _, s := range r.Summaries {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s : %s\n", s.Kind, s.Name, s.Type); err != nil {
			return err
		}
	}
	return nil
}
