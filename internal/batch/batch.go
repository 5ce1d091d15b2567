// Package batch drives the compositor over an ordered list of icons.
//
// Each entry is resolved against the public directory and processed in
// order. A missing icon or one without an alpha channel is reported and
// skipped; any other failure stops the batch at that icon and is returned to
// the caller together with the results gathered so far.
package batch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"tools.zach/dev/iconbg/internal/compositor"
	"tools.zach/dev/iconbg/internal/hexcolor"
)

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// Applier flattens one icon. [compositor.Compositor] is the production
// implementation.
type Applier interface {
	Apply(inPath, outPath string) (compositor.Outcome, error)
}

// Result is the outcome for one icon.
type Result struct {
	// Name is the icon path relative to the public directory, or the
	// configured entry when nothing matched it.
	Name string
	// Path is the input file path.
	Path string
	// Outcome records whether the icon was processed or why it was skipped.
	Outcome compositor.Outcome
}

// Driver runs the compositor over a list of icons.
type Driver struct {
	// PublicDir is the directory icon entries are resolved against.
	PublicDir string
	// OutputDir receives flattened icons. Empty overwrites each icon in place.
	OutputDir string
	// Icons are file names or doublestar patterns, processed in order.
	Icons []string
	// Compositor flattens each icon.
	Compositor Applier
	// Out receives human-readable progress lines.
	Out io.Writer
	// Logger receives diagnostics. Nil uses [slog.Default].
	Logger *slog.Logger
}

// ///////////////////////////////////////////////
// Run
// ///////////////////////////////////////////////

// Run processes every icon entry in order and returns one [Result] per icon
// handled. It never stops for a missing or wrong-mode icon. Any other error
// ends the run immediately; the returned results then cover only the icons
// handled before the failure.
func (d *Driver) Run() ([]Result, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	out := d.Out
	if out == nil {
		out = io.Discard
	}

	var results []Result
	for _, entry := range d.Icons {
		names, err := d.expand(entry)
		if err != nil {
			return results, fmt.Errorf("resolve %s: %w", entry, err)
		}
		if len(names) == 0 {
			fmt.Fprintf(out, "  missing: %s\n", entry)
			logger.Info("icon not found", "entry", entry, "dir", d.PublicDir)
			results = append(results, Result{
				Name:    entry,
				Path:    filepath.Join(d.PublicDir, filepath.FromSlash(entry)),
				Outcome: compositor.SkippedMissing,
			})
			continue
		}

		for _, name := range names {
			res, err := d.process(out, logger, name)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}
	return results, nil
}

// expand resolves an entry to the icon names it refers to. A literal name
// yields itself when the file exists; a pattern yields its sorted matches.
// A public directory that is missing or not a directory yields nothing.
func (d *Driver) expand(entry string) ([]string, error) {
	if !hasMeta(entry) {
		_, err := os.Stat(filepath.Join(d.PublicDir, filepath.FromSlash(entry)))
		switch {
		case err == nil:
			return []string{entry}, nil
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
			return nil, nil
		default:
			return nil, err
		}
	}

	matches, err := doublestar.Glob(os.DirFS(d.PublicDir), entry, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func (d *Driver) process(out io.Writer, logger *slog.Logger, name string) (Result, error) {
	in := filepath.Join(d.PublicDir, filepath.FromSlash(name))
	dst := in
	if d.OutputDir != "" {
		dst = filepath.Join(d.OutputDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return Result{}, fmt.Errorf("create output dir: %w", err)
		}
	}

	fmt.Fprintf(out, "processing: %s\n", name)
	outcome, err := d.Compositor.Apply(in, dst)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}

	switch outcome {
	case compositor.Processed:
		fmt.Fprintf(out, "  %s: background added\n", filepath.Base(dst))
	case compositor.SkippedWrongMode:
		fmt.Fprintf(out, "  skipping: %s has no alpha channel\n", name)
	}
	logger.Info("icon handled", "icon", name, "outcome", outcome)
	return Result{Name: name, Path: in, Outcome: outcome}, nil
}

// hasMeta reports whether entry contains doublestar pattern syntax.
func hasMeta(entry string) bool {
	for i := 0; i < len(entry); i++ {
		switch entry[i] {
		case '*', '?', '[', '{', '\\':
			return true
		}
	}
	return false
}

// ///////////////////////////////////////////////
// Summary
// ///////////////////////////////////////////////

// Counts tallies results by outcome.
func Counts(results []Result) map[compositor.Outcome]int {
	counts := make(map[compositor.Outcome]int, 3)
	for _, r := range results {
		counts[r.Outcome]++
	}
	return counts
}

// PrintSummary writes the closing lines: how many icons were flattened, the
// background color and its legend.
func PrintSummary(w io.Writer, bg hexcolor.Choice, results []Result) {
	counts := Counts(results)
	fmt.Fprintf(w, "\nDone. Flattened %d of %d icons", counts[compositor.Processed], len(results))
	if skipped := counts[compositor.SkippedMissing] + counts[compositor.SkippedWrongMode]; skipped > 0 {
		fmt.Fprintf(w, " (%d skipped)", skipped)
	}
	fmt.Fprintln(w, ".")
	fmt.Fprintf(w, "  background: %s (%s)\n", hexcolor.Hex(bg.Color), bg.Name())
	fmt.Fprintf(w, "  style: %s\n", bg.Legend())
}
