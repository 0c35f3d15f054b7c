// Command glint is the CLI front end for the Glint compiler: tokenize,
// parse, check, and compile subcommands over the four-phase pipeline in
// internal/driver, plus a REPL. Modeled on the teacher's cmd/surge/main.go,
// trimmed to the flags spec.md's Non-goals leave room for — no
// cancellation or timeouts (spec.md §5 rules both out).
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"glint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "Glint language compiler",
	Long:  "Glint is a small statically-typed functional language's compiler front end.",
}

func main() {
	rootCmd.Version = version.VersionString()

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show in directory mode")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers for directory mode (0=auto)")
	rootCmd.PersistentFlags().String("emit", "", "additional machine-readable output format (msgpack)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
