package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

// timeFormat is used for run timestamps in history listings.
const timeFormat = "2006-01-02 15:04:05"

// Renderer formats results as console lines.
type Renderer struct {
	styles *Styles
	styled bool
}

// New returns a renderer for w. Styling is enabled only when w is a terminal.
func New(w io.Writer) *Renderer {
	if IsTerminal(w) {
		return &Renderer{styles: NewStyles(nil), styled: true}
	}
	return &Renderer{styles: PlainStyles()}
}

// NewPlain returns a renderer that never styles output.
func NewPlain() *Renderer {
	return &Renderer{styles: PlainStyles()}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Styled reports whether the renderer emits terminal styling.
func (r *Renderer) Styled() bool {
	return r.styled
}

// Title renders a section heading.
func (r *Renderer) Title(text string) string {
	return r.styles.Title.Render(text)
}

// Updated renders the line for a changed file.
func (r *Renderer) Updated(path string, dryRun bool) string {
	if dryRun {
		return r.styles.Warning.Render("Would update: ") + path
	}
	return r.styles.Success.Render("Updated: ") + path
}

// Failed renders the line for a file that could not be processed.
func (r *Renderer) Failed(result domain.FileResult) string {
	return r.styles.Error.Render("Failed: ") + result.Path + r.styles.Muted.Render(" ("+result.Err.Error()+")")
}

// Done renders the closing summary of a run.
func (r *Renderer) Done(report *domain.RunReport) string {
	var b strings.Builder
	if report.DryRun {
		fmt.Fprintf(&b, "Done. Would update %d files.", report.Updated())
	} else {
		fmt.Fprintf(&b, "Done. Updated %d files.", report.Updated())
	}
	if failed := len(report.Failed()); failed > 0 {
		b.WriteString(" ")
		b.WriteString(r.styles.Error.Render(fmt.Sprintf("%d failed.", failed)))
	}
	return b.String()
}

// Summary renders the verbose per-pass substitution counts of a run.
func (r *Renderer) Summary(report *domain.RunReport, passes []string) string {
	totals := make(map[string]int, len(passes))
	for _, f := range report.Files {
		for name, n := range f.Substitutions {
			totals[name] += n
		}
	}
	parts := make([]string, 0, len(passes))
	for _, name := range passes {
		parts = append(parts, fmt.Sprintf("%s=%d", name, totals[name]))
	}
	return r.styles.Muted.Render(fmt.Sprintf("Scanned %d files in %s (%s)",
		len(report.Files), report.Duration.Round(time.Millisecond), strings.Join(parts, ", ")))
}

// Match renders a lookup result.
func (r *Renderer) Match(m domain.Match) string {
	return fmt.Sprintf("%s (%s)  %s",
		m.Target.Name, r.styles.Code.Render(m.Target.Code), r.styles.Muted.Render("via "+m.Surface))
}

// Alias renders one alias index entry.
func (r *Renderer) Alias(e domain.AliasEntry) string {
	return fmt.Sprintf("%-45s %-7s %s", e.Surface, e.Source, r.styles.Code.Render(e.Target.Code))
}

// Collision renders a surface form whose target was replaced.
func (r *Renderer) Collision(c domain.Collision) string {
	return fmt.Sprintf("%s: %s -> %s (%s)",
		r.styles.Warning.Render(c.Surface), c.Previous.Code, c.Current.Code, c.Source)
}

// Run renders one history row.
func (r *Renderer) Run(run domain.Run) string {
	status := string(run.Status)
	switch run.Status {
	case domain.RunFinished:
		status = r.styles.Success.Render(status)
	case domain.RunUndone:
		status = r.styles.Muted.Render(status)
	default:
		status = r.styles.Warning.Render(status)
	}
	return fmt.Sprintf("%s  %s  %-8s  %d/%d updated  %s",
		r.styles.Code.Render(run.ID), run.StartedAt.Local().Format(timeFormat), status,
		run.FilesUpdated, run.FilesScanned, run.Root)
}

// Restored renders the line for a file put back by undo.
func (r *Renderer) Restored(path string) string {
	return r.styles.Success.Render("Restored: ") + path
}

// Relative shortens path to be relative to root when it lies beneath it.
func Relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
