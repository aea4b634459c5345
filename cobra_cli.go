package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/go-mdmerge/internal/merge"
)

const rootLongDesc = `
go-mdmerge concatenates every Markdown document (.md and .mdx) found directly inside
an input folder into a single merged_markdown.md written to the output folder.

Files are merged in lexicographic order. Each one gets a "# Content from: <name>"
header and consecutive files are divided by a line of 80 '=' characters. A file that
cannot be read is replaced by an "*Error reading file: ...*" note and the merge goes on.

Shell completion and the Markdown CLI reference are flags rather than subcommands,
so any folder name can be passed as an argument:

  go-mdmerge --completion bash > /usr/local/etc/bash_completion.d/go-mdmerge
  go-mdmerge --gen-docs ./docs/cli
`

const usageText = `Usage: go-mdmerge <input_folder> <output_folder>

Example:
  go-mdmerge ./docs ./output
`

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// newRootCmd builds the only command. It has no subcommands, which keeps cobra
// from adding its own help command: every positional argument is a folder.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           "go-mdmerge [flags] <input_folder> <output_folder>",
		Short:         "Merge a folder of Markdown files into one document",
		Long:          strings.TrimSpace(rootLongDesc),
		Example:       "  go-mdmerge ./docs ./output",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true
	app.root = cmd

	flags := cmd.Flags()
	flags.StringVar(&app.opts.logLevel, "log-level", "info", "diagnostic log level written to stderr (debug, info, warn, error)")
	flags.BoolVar(&app.opts.noColor, "no-color", false, "disable colored status lines")
	flags.StringVar(&app.opts.outputName, "name", merge.DefaultOutputName, "file name of the merged document inside the output folder")
	flags.StringVar(&app.opts.completion, "completion", "", "print a completion script for the shell ("+strings.Join(completionShells, ", ")+") and exit")
	flags.StringVar(&app.opts.docsDir, "gen-docs", "", "write the Markdown CLI reference into this directory and exit")
	_ = cmd.RegisterFlagCompletionFunc("completion", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return completionShells, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagDirname("gen-docs")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(args)
	}
	return cmd
}

func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch strings.ToLower(shell) {
	case "bash":
		return root.GenBashCompletion(w)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletion(w)
	default:
		return fmt.Errorf("unsupported shell %q (expected %s)", shell, strings.Join(completionShells, ", "))
	}
}

func writeCLIDocs(root *cobra.Command, target string) error {
	if err := os.MkdirAll(target, 0o755); err != nil {
		return err
	}
	return cobradoc.GenMarkdownTree(root, target)
}
