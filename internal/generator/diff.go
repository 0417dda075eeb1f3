package generator

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DiffOptions configures how diffs are rendered.
type DiffOptions struct {
	// ContextLines is the number of unchanged lines shown around changes.
	// Default: 3
	ContextLines int

	// Plain disables styling, for logs and tests.
	Plain bool
}

// maxDiffCells bounds the size of the LCS table.
const maxDiffCells = 4_000_000

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
)

type lineOp byte

const (
	opSame lineOp = ' '
	opAdd  lineOp = '+'
	opDel  lineOp = '-'
)

type editLine struct {
	op      lineOp
	oldNum  int
	newNum  int
	content string
}

// Diff returns a unified diff from old to newer, or "" when they are equal.
func Diff(oldPath, newPath string, old, newer []byte, opts *DiffOptions) string {
	if opts == nil {
		opts = &DiffOptions{}
	}
	if opts.ContextLines <= 0 {
		opts.ContextLines = 3
	}
	if bytes.Equal(old, newer) {
		return ""
	}
	if bytes.IndexByte(old, 0) >= 0 || bytes.IndexByte(newer, 0) >= 0 {
		return "Binary files differ\n"
	}

	a, b := splitLines(old), splitLines(newer)
	if len(a)*len(b) > maxDiffCells {
		return fmt.Sprintf("Files too large for diff (%d and %d lines)\n", len(a), len(b))
	}

	style := func(s lipgloss.Style, text string) string {
		if opts.Plain {
			return text
		}
		return s.Render(text)
	}
	width := terminalWidth()

	var buf strings.Builder
	buf.WriteString(style(headerStyle, "--- "+oldPath) + "\n")
	buf.WriteString(style(headerStyle, "+++ "+newPath) + "\n")
	for _, h := range hunks(editScript(a, b), opts.ContextLines) {
		buf.WriteString(style(hunkStyle, h.header()) + "\n")
		for _, l := range h.lines {
			text := string(l.op) + l.content
			if !opts.Plain {
				text = truncate(text, width)
			}
			switch l.op {
			case opAdd:
				text = style(addedStyle, text)
			case opDel:
				text = style(removedStyle, text)
			}
			buf.WriteString(text + "\n")
		}
	}
	return buf.String()
}

// editScript computes a shortest edit script from the longest common
// subsequence of a and b.
func editScript(a, b []string) []editLine {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	out := make([]editLine, 0, n+m)
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && a[i] == b[j]:
			out = append(out, editLine{op: opSame, oldNum: i + 1, newNum: j + 1, content: a[i]})
			i++
			j++
		case i < n && (j == m || lcs[i+1][j] >= lcs[i][j+1]):
			out = append(out, editLine{op: opDel, oldNum: i + 1, content: a[i]})
			i++
		default:
			out = append(out, editLine{op: opAdd, newNum: j + 1, content: b[j]})
			j++
		}
	}
	return out
}

type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	lines              []editLine
}

func (h hunk) header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)
}

// hunks groups changes with ctx lines of context, merging groups whose
// context would overlap.
func hunks(script []editLine, ctx int) []hunk {
	var changed []int
	for i, l := range script {
		if l.op != opSame {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	var out []hunk
	start := max(changed[0]-ctx, 0)
	end := min(changed[0]+ctx+1, len(script))
	for _, c := range changed[1:] {
		if c-ctx <= end {
			end = min(c+ctx+1, len(script))
			continue
		}
		out = append(out, newHunk(script[start:end]))
		start = c - ctx
		end = min(c+ctx+1, len(script))
	}
	return append(out, newHunk(script[start:end]))
}

func newHunk(lines []editLine) hunk {
	h := hunk{lines: lines}
	for _, l := range lines {
		if l.op != opAdd {
			if h.oldStart == 0 {
				h.oldStart = l.oldNum
			}
			h.oldCount++
		}
		if l.op != opDel {
			if h.newStart == 0 {
				h.newStart = l.newNum
			}
			h.newCount++
		}
	}
	return h
}

func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width || width < 4 {
		return s
	}
	return string(r[:width-3]) + "..."
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 120
	}
	return w
}
