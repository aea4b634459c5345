// # go-mdmerge
//
// `go-mdmerge` folds a folder of Markdown documents into one file. It is handy
// for feeding a documentation tree to tools that accept a single document, or
// for reviewing a set of notes in one pass.
//
// Key behaviour:
//
//   - every direct child of the input folder whose name ends in `.md` or
//     `.mdx` is merged; subfolders are not searched and matching is
//     case-sensitive.
//   - files are ordered lexicographically by path, whatever their extension.
//   - each file is introduced by a `# Content from: <name>` header, and
//     consecutive files are divided by a line of 80 `=` characters.
//   - a file that cannot be read or is not valid UTF-8 is replaced by an
//     `*Error reading file: ...*` note; the remaining files are still merged.
//   - the result is written to `merged_markdown.md` inside the output folder,
//     which is created when missing. An existing file is overwritten.
//
// ## Usage
//
//	go-mdmerge [flags] <input_folder> <output_folder>
//
// Example:
//
//	go-mdmerge ./docs ./output
//
// The command exits with status 1 when it is not given exactly two folders,
// when the input folder does not exist, or when it holds no Markdown files.
//
// ## Flags
//
//   - `--name FILE`: name of the merged document (default `merged_markdown.md`).
//   - `--log-level LEVEL`: diagnostics on stderr; `debug`, `info`, `warn` or
//     `error`. Unreadable files are reported at `warn`.
//   - `--no-color`: print the final status line without colour.
//   - `--version`: print the version.
//   - `--completion SHELL`: print a completion script and exit.
//   - `--gen-docs DIR`: write the Markdown CLI reference into DIR and exit.
//
// There are no subcommands, so a folder called `help` or `gen-docs` is merged
// like any other.
//
// ## Shell Completion
//
//	go-mdmerge --completion bash        # bash
//	go-mdmerge --completion zsh         # zsh
//	go-mdmerge --completion fish | source
//	go-mdmerge --completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
//	go-mdmerge --gen-docs ./docs/cli
package main
