package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeKind string

const (
	ChangeCreated  ChangeKind = "created"
	ChangeModified ChangeKind = "modified"
	ChangeDeleted  ChangeKind = "deleted"
)

// Change is one file that differs between two snapshots.
type Change struct {
	Path   string
	Kind   ChangeKind
	Before string
	After  string
	// TooLarge is set when either side was not kept in memory.
	TooLarge bool
}

func (c Change) Description() string {
	return fmt.Sprintf("%s %s", c.Kind, c.Path)
}

// Details returns extra lines for display: a character-level diff for
// modified files and a line count for created ones.
func (c Change) Details() []string {
	switch c.Kind {
	case ChangeModified:
		if c.TooLarge {
			return []string{"(too large to diff)"}
		}
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(c.Before, c.After, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		text := dmp.DiffPrettyText(diffs)
		if color.NoColor {
			text = plainDiffText(diffs)
		}
		return []string{
			"--- diff ---",
			text,
			"--- end diff ---",
		}
	case ChangeCreated:
		return []string{fmt.Sprintf("%d lines", lineCount(c.After))}
	default:
		return nil
	}
}

// Compare lists what changed from before to after, sorted by path.
func Compare(before, after Snapshot) []Change {
	var changes []Change
	for path, a := range after {
		b, existed := before[path]
		switch {
		case !existed:
			changes = append(changes, Change{Path: path, Kind: ChangeCreated, After: a.Content})
		case a != b:
			changes = append(changes, Change{
				Path:     path,
				Kind:     ChangeModified,
				Before:   b.Content,
				After:    a.Content,
				TooLarge: a.Truncated || b.Truncated,
			})
		}
	}
	for path, b := range before {
		if _, ok := after[path]; !ok {
			changes = append(changes, Change{Path: path, Kind: ChangeDeleted, Before: b.Content})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Path < changes[j].Path
	})
	return changes
}

// Report formats changes for display, one entry per file.
func Report(changes []Change) string {
	if len(changes) == 0 {
		return "No files changed."
	}
	var sb strings.Builder
	for _, c := range changes {
		fmt.Fprintf(&sb, "=> %s\n", c.Description())
		for _, d := range c.Details() {
			fmt.Fprintf(&sb, "   %s\n", d)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// plainDiffText marks deletions as [-text-] and insertions as {+text+} for
// output without colour.
func plainDiffText(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
