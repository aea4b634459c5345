// Package merge concatenates the Markdown documents of one directory into a
// single document, one section per source file.
//
// Sections are written in lexicographic path order. Every section starts with
// a "# Content from: <name>" header, and consecutive sections are divided by a
// line of 80 '=' characters surrounded by blank lines. A file that cannot be
// read or decoded does not stop the merge: its section carries an
// "*Error reading file: ...*" placeholder instead of content.
package merge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultOutputName is the file created inside the output directory.
const DefaultOutputName = "merged_markdown.md"

// Separator is written between two consecutive sections.
const Separator = "\n\n================================================================================\n\n"

var (
	// ErrMissingInput reports that the input directory does not exist.
	ErrMissingInput = errors.New("input folder does not exist")
	// ErrNoFiles reports that the input directory holds no .md or .mdx entries.
	ErrNoFiles = errors.New("no .md or .mdx files found")
)

// Result describes a completed merge.
type Result struct {
	// Path is the merged document that was written.
	Path string
	// Files lists the merged file names in output order.
	Files []string
	// Failed lists the names whose section holds a read error placeholder.
	Failed []string
}

// Merger writes merged documents. The zero value is not usable; call New.
type Merger struct {
	log  *zap.Logger
	out  io.Writer
	name string
}

// Option configures a Merger.
type Option func(*Merger)

// WithLogger sets the logger receiving per-file warnings and debug traces.
func WithLogger(log *zap.Logger) Option {
	return func(m *Merger) {
		if log != nil {
			m.log = log
		}
	}
}

// WithOutput sets where the file listing and the created path are printed.
func WithOutput(w io.Writer) Option {
	return func(m *Merger) {
		if w != nil {
			m.out = w
		}
	}
}

// WithOutputName overrides DefaultOutputName.
func WithOutputName(name string) Option {
	return func(m *Merger) {
		if name = strings.TrimSpace(name); name != "" {
			m.name = name
		}
	}
}

// New returns a Merger configured by opts.
func New(opts ...Option) *Merger {
	m := &Merger{
		log:  zap.NewNop(),
		out:  io.Discard,
		name: DefaultOutputName,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge concatenates every eligible file of inputDir into one document inside
// outputDir. The output directory is created before enumeration, so it exists
// even when ErrNoFiles is returned; it is never created for ErrMissingInput.
func (m *Merger) Merge(inputDir, outputDir string) (Result, error) {
	if _, err := os.Stat(inputDir); err != nil {
		if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
			return Result{}, errors.Wrapf(ErrMissingInput, "%s", inputDir)
		}
		return Result{}, errors.Wrap(err, "stat input folder")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Result{}, errors.Wrap(err, "create output folder")
	}
	files, err := Collect(inputDir)
	if err != nil {
		return Result{}, err
	}
	if len(files) == 0 {
		return Result{}, errors.Wrapf(ErrNoFiles, "%s", inputDir)
	}
	m.log.Debug("collected markdown files", zap.String("input", inputDir), zap.Int("count", len(files)))

	fmt.Fprintf(m.out, "Found %d markdown files to merge:\n", len(files))
	for _, path := range files {
		fmt.Fprintf(m.out, "  - %s\n", filepath.Base(path))
	}

	res := Result{Path: filepath.Join(outputDir, m.name)}
	if err := m.write(res.Path, files, &res); err != nil {
		return Result{}, err
	}
	fmt.Fprintf(m.out, "\nMerged file created: %s\n", res.Path)
	return res, nil
}

func (m *Merger) write(target string, files []string, res *Result) (err error) {
	f, err := os.Create(target)
	if err != nil {
		return errors.Wrap(err, "create merged file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close merged file")
		}
	}()

	w := bufio.NewWriter(f)
	for i, path := range files {
		name := filepath.Base(path)
		if i > 0 {
			w.WriteString(Separator)
		}
		fmt.Fprintf(w, "# Content from: %s\n\n", name)
		res.Files = append(res.Files, name)

		m.log.Debug("merging file", zap.String("file", name))
		content, rerr := ReadText(path)
		if rerr != nil {
			m.log.Warn("could not read file", zap.String("file", name), zap.Error(rerr))
			fmt.Fprintf(m.out, "Warning: Could not read file '%s': %v\n", name, rerr)
			fmt.Fprintf(w, "*Error reading file: %v*\n\n", rerr)
			res.Failed = append(res.Failed, name)
			continue
		}
		w.WriteString(content)
		if content != "" && !strings.HasSuffix(content, "\n") {
			w.WriteByte('\n')
		}
	}
	// bufio.Writer keeps the first write error and reports it here.
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "write merged file")
	}
	return nil
}
