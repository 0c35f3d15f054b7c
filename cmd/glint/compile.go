package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/driver"
	"glint/internal/encode"
	"glint/internal/project"
)

var compileCmd = &cobra.Command{
	Use:   "compile [source-file|directory]",
	Short: "Compile a glint source file, directory, or stdin",
	Long: "With an argument: compiles the named file, or every *.glint file " +
		"under the named directory. With no argument: uses glint.toml's " +
		"[run].main entry if a manifest is found; otherwise reads stdin " +
		"line by line, compiling each non-empty line as an independent program.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return compilePath(cmd, args[0])
	}

	if manifest, ok, err := project.Load("."); err != nil {
		return err
	} else if ok {
		return compilePath(cmd, manifest.EntryPath())
	}

	return compileStdin(cmd)
}

func compilePath(cmd *cobra.Command, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return compileDir(cmd, path)
	}

	r := driver.CompileFile(path)
	if err := reportResult(cmd, r); err != nil {
		return err
	}
	return emitOne(cmd, r)
}

func compileDir(cmd *cobra.Command, dir string) error {
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")
	results, err := driver.CompileDir(cmd.Context(), dir, jobs)
	if err != nil {
		return err
	}

	maxDiags, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	var failed bool
	shown := 0
	for _, r := range results {
		if r.Err != nil {
			failed = true
			if maxDiags > 0 && shown >= maxDiags {
				continue
			}
			shown++
			_ = reportResult(cmd, r)
			continue
		}
		if err := emitOne(cmd, r); err != nil {
			return err
		}
	}
	if failed {
		return fmt.Errorf("compilation failed in %s", dir)
	}
	return nil
}

func emitOne(cmd *cobra.Command, r *driver.Result) error {
	emit, _ := cmd.Root().PersistentFlags().GetString("emit")
	if emit != "msgpack" {
		return nil
	}
	return encode.Program(cmd.OutOrStdout(), r.Summaries)
}

// compileStdin implements spec.md §6's fallback REPL: each non-empty line
// of stdin is compiled as an independent program, with no state shared
// between lines (a fresh driver.CompileSource call per line).
func compileStdin(cmd *cobra.Command) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	var failed bool
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}
		r := driver.CompileSource("<stdin>", line)
		if err := reportResult(cmd, r); err != nil {
			failed = true
			continue
		}
		if err := emitOne(cmd, r); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("compilation failed")
	}
	return nil
}
