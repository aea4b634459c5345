package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agentflare-ai/go-mdmerge/internal/logging"
	"github.com/agentflare-ai/go-mdmerge/internal/merge"
)

type options struct {
	logLevel   string
	noColor    bool
	outputName string
	completion string
	docsDir    string
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	root   *cobra.Command
	opts   options
}

// exitError ends the process with code once the failure has been reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func run(argv []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(positionals []string) error {
	if app.opts.completion != "" || app.opts.docsDir != "" {
		return app.generate(positionals)
	}
	if len(positionals) != 2 {
		fmt.Fprint(app.stdout, usageText)
		return &exitError{code: 1}
	}
	logger, err := logging.New(app.opts.logLevel, app.stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	inputDir, outputDir := positionals[0], positionals[1]
	fmt.Fprintf(app.stdout, "Input folder: %s\n", inputDir)
	fmt.Fprintf(app.stdout, "Output folder: %s\n", outputDir)
	fmt.Fprintln(app.stdout, strings.Repeat("-", 50))

	merger := merge.New(
		merge.WithLogger(logger),
		merge.WithOutput(app.stdout),
		merge.WithOutputName(app.opts.outputName),
	)
	res, err := merger.Merge(inputDir, outputDir)
	if err != nil {
		logger.Debug("merge failed", zap.Error(err))
		fmt.Fprintln(app.stdout, failureMessage(err, inputDir))
		app.status(color.FgRed).Fprintln(app.stdout, "\nMerge failed.")
		return &exitError{code: 1}
	}
	logger.Debug("merge finished", zap.String("path", res.Path), zap.Int("files", len(res.Files)), zap.Int("failed", len(res.Failed)))
	app.status(color.FgGreen).Fprintln(app.stdout, "\nMerge completed successfully!")
	return nil
}

func (app *cliApp) generate(positionals []string) error {
	if app.opts.completion != "" && app.opts.docsDir != "" {
		return errors.New("--completion cannot be combined with --gen-docs")
	}
	if len(positionals) > 0 {
		fmt.Fprint(app.stdout, usageText)
		return &exitError{code: 1}
	}
	if app.opts.completion != "" {
		return writeCompletion(app.root, app.opts.completion, app.stdout)
	}
	return writeCLIDocs(app.root, app.opts.docsDir)
}

func failureMessage(err error, inputDir string) string {
	switch {
	case errors.Is(err, merge.ErrMissingInput):
		return fmt.Sprintf("Error: Input folder '%s' does not exist.", inputDir)
	case errors.Is(err, merge.ErrNoFiles):
		return fmt.Sprintf("No .md or .mdx files found in '%s'", inputDir)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func (app *cliApp) status(attr color.Attribute) *color.Color {
	c := color.New(attr, color.Bold)
	if app.opts.noColor {
		c.DisableColor()
	}
	return c
}
