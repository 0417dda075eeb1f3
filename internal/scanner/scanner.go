// Package scanner finds top-level message declarations in schema sources
// without parsing the full schema grammar. Only two line shapes are
// recognized: a package statement and an unindented message opener.
package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"iter"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/gazebosim/gz-msgs/internal/logger"
)

var (
	packageRe = regexp.MustCompile(`^package ([A-Za-z_][\w.]*);$`)
	messageRe = regexp.MustCompile(`^message (\w+)\s?\{?$`)
)

// ErrScan is the sentinel for unreadable schema files.
var ErrScan = errors.New("schema file could not be scanned")

// ScanError wraps the read or scan failure for one schema file.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

func (e *ScanError) Is(target error) bool { return target == ErrScan }

// MaxLineLength is the longest schema line the scanner accepts.
const MaxLineLength = 1024 * 1024

// Scan yields the message declarations in src in source order. The
// sequence can be ranged over more than once. It ends early at a line
// longer than MaxLineLength; ScanFile reports that case as an error.
func Scan(src []byte) iter.Seq[Located] {
	return func(yield func(Located) bool) {
		_ = scan("", src, yield)
	}
}

// scan feeds each declaration to yield and returns the reader error, if
// any, that cut the scan short.
func scan(path string, src []byte, yield func(Located) bool) error {
	var pkg []string
	sc := bufio.NewScanner(bytes.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if m := packageRe.FindStringSubmatch(text); m != nil {
			pkg = splitPackage(m[1])
			continue
		}
		if m := messageRe.FindStringSubmatch(text); m != nil {
			loc := Located{
				MessageDescriptor: MessageDescriptor{Package: pkg, Name: m[1]},
				Path:              path,
				Line:              line,
			}
			if !yield(loc) {
				return nil
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("after line %d: %w", line, err)
	}
	return nil
}

// splitPackage drops empty segments, so "a..b" is [a b].
func splitPackage(s string) []string {
	var out []string
	for _, seg := range strings.Split(s, ".") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// ScanFile reads path and scans it. A file that cannot be read, or that
// holds a line longer than MaxLineLength, yields an empty sequence and a
// *ScanError.
func ScanFile(path string) (iter.Seq[Located], error) {
	empty := func(func(Located) bool) {}
	src, err := os.ReadFile(path)
	if err != nil {
		return empty, &ScanError{Path: path, Err: err}
	}
	var found []Located
	if err := scan(path, src, func(loc Located) bool {
		found = append(found, loc)
		return true
	}); err != nil {
		return empty, &ScanError{Path: path, Err: err}
	}
	return slices.Values(found), nil
}

// ScanFiles scans every path in order. Files ScanFile rejects are logged
// and skipped; the number skipped is returned.
func ScanFiles(paths []string, log logger.Logger) ([]Located, int) {
	var (
		out     []Located
		skipped int
	)
	for _, path := range paths {
		seq, err := ScanFile(path)
		if err != nil {
			log.Warn("skipping schema file", logger.F("path", path), logger.Err(err))
			skipped++
			continue
		}
		n := 0
		for loc := range seq {
			out = append(out, loc)
			n++
		}
		log.Debug("scanned schema file", logger.F("path", path), logger.F("messages", n))
	}
	return out, skipped
}
