package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConflictResolution is the decision for an artifact whose on-disk content
// differs from the freshly generated content.
type ConflictResolution int

const (
	Skip ConflictResolution = iota
	Overwrite
	ShowDiff
	Cancel
)

// ErrCancelled is returned when the user cancels generation at a prompt.
var ErrCancelled = errors.New("generation cancelled")

// ConflictStrategy decides what to do with one differing artifact.
type ConflictStrategy interface {
	Resolve(path string, existing, newer []byte) (ConflictResolution, error)
}

// Resolver applies a ConflictStrategy to a batch of artifacts.
type Resolver struct {
	strategy ConflictStrategy
}

// NewResolver picks a strategy from CLI flags. Generated artifacts are
// overwritten by default; skip keeps the on-disk copy, diff prints the
// change before overwriting and interactive asks for each file.
func NewResolver(skip, diff, interactive bool, w io.Writer) (*Resolver, error) {
	if skip && (diff || interactive) {
		return nil, fmt.Errorf("--skip cannot be combined with --diff or --interactive")
	}
	if w == nil {
		w = os.Stdout
	}

	var s ConflictStrategy
	switch {
	case skip:
		s = SkipStrategy{}
	case interactive:
		s = &InteractiveStrategy{Writer: w, ShowDiffFirst: diff}
	case diff:
		s = &DiffStrategy{Writer: w}
	default:
		s = OverwriteStrategy{}
	}
	return &Resolver{strategy: s}, nil
}

// NewResolverWithStrategy wraps an explicit strategy.
func NewResolverWithStrategy(s ConflictStrategy) *Resolver {
	return &Resolver{strategy: s}
}

// Artifact is a generated file and its intended content.
type Artifact struct {
	Path    string
	Content []byte
}

// Plan compares artifacts with the files on disk and returns write
// operations for those that are new or accepted by the strategy, along
// with the paths left untouched because they already match.
func (r *Resolver) Plan(artifacts []Artifact) (ops []Operation, unchanged []string, err error) {
	for _, a := range artifacts {
		existing, err := os.ReadFile(a.Path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			ops = append(ops, &WriteFileOp{Path: a.Path, Content: a.Content, Mode: 0o644})
			continue
		case err != nil:
			return nil, nil, IOError("read", a.Path, err)
		}

		if bytes.Equal(existing, a.Content) {
			unchanged = append(unchanged, a.Path)
			continue
		}

		res, err := r.strategy.Resolve(a.Path, existing, a.Content)
		if err != nil {
			return nil, nil, err
		}
		switch res {
		case Overwrite:
			ops = append(ops, &WriteFileOp{Path: a.Path, Content: a.Content, Mode: 0o644})
		case Skip:
			unchanged = append(unchanged, a.Path)
		default:
			return nil, nil, ErrCancelled
		}
	}
	return ops, unchanged, nil
}

// OverwriteStrategy always replaces the artifact.
type OverwriteStrategy struct{}

func (OverwriteStrategy) Resolve(string, []byte, []byte) (ConflictResolution, error) {
	return Overwrite, nil
}

// SkipStrategy always keeps the existing file.
type SkipStrategy struct{}

func (SkipStrategy) Resolve(string, []byte, []byte) (ConflictResolution, error) {
	return Skip, nil
}

// DiffStrategy prints the change and overwrites.
type DiffStrategy struct {
	Writer io.Writer
	Plain  bool
}

func (s *DiffStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	fmt.Fprint(s.Writer, Diff(path, path, existing, newer, &DiffOptions{Plain: s.Plain}))
	return Overwrite, nil
}

// InteractiveStrategy asks the user through a terminal menu.
type InteractiveStrategy struct {
	Writer        io.Writer
	ShowDiffFirst bool

	// run is replaced in tests; it returns the chosen resolution.
	run func(m conflictMenuModel) (ConflictResolution, error)
}

func (s *InteractiveStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	if s.ShowDiffFirst {
		fmt.Fprint(s.Writer, Diff(path, path, existing, newer, nil))
	}
	run := s.run
	if run == nil {
		run = runMenu
	}
	for {
		res, err := run(newConflictMenuModel(path))
		if err != nil {
			return Cancel, err
		}
		if res != ShowDiff {
			return res, nil
		}
		fmt.Fprint(s.Writer, Diff(path, path, existing, newer, nil))
	}
}

func runMenu(m conflictMenuModel) (ConflictResolution, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return Cancel, fmt.Errorf("failed to show menu: %w", err)
	}
	return final.(conflictMenuModel).choice, nil
}

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var menuChoices = []struct {
	label string
	res   ConflictResolution
}{
	{"Overwrite with generated content", Overwrite},
	{"Show diff", ShowDiff},
	{"Keep existing file", Skip},
	{"Cancel generation", Cancel},
}

type conflictMenuModel struct {
	path   string
	cursor int
	choice ConflictResolution
}

func newConflictMenuModel(path string) conflictMenuModel {
	return conflictMenuModel{path: path, choice: Cancel}
}

func (m conflictMenuModel) Init() tea.Cmd { return nil }

func (m conflictMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.choice = Cancel
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}
	case "enter":
		m.choice = menuChoices[m.cursor].res
		return m, tea.Quit
	}
	return m, nil
}

func (m conflictMenuModel) View() string {
	var b strings.Builder
	b.WriteString(warningStyle.Render("Generated artifact differs: ") + m.path + "\n")
	b.WriteString(mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")
	for i, c := range menuChoices {
		if i == m.cursor {
			b.WriteString("    " + selectedStyle.Render("> "+c.label) + "\n")
		} else {
			b.WriteString("      " + c.label + "\n")
		}
	}
	return b.String()
}
