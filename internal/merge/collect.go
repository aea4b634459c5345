package merge

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Extensions are the name suffixes of eligible files. Matching is case-sensitive.
var Extensions = []string{".md", ".mdx"}

// Eligible reports whether name carries one of Extensions.
func Eligible(name string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Collect returns the eligible direct children of dir sorted by path.
// Subdirectories are not descended into, but an entry is not filtered by
// type: a directory named "notes.md" is collected and later fails to read.
// A dir that is not a directory yields no files.
func Collect(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(err, "stat input folder")
	}
	if !info.IsDir() {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read input folder")
	}
	var files []string
	for _, entry := range entries {
		if Eligible(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ReadText returns the UTF-8 text of path with line endings normalised to
// "\n". Invalid UTF-8 is an error.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return "", errors.Wrapf(err, "decode %s", path)
	}
	if err != nil {
		return "", err
	}
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
