package fetcher

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Reporter prints the per-file status lines and the final summary.
type Reporter struct {
	w io.Writer

	ok   *color.Color
	warn *color.Color
	fail *color.Color
}

func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	r := &Reporter{
		w:    w,
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed),
	}
	// color only checks stdout for a terminal
	if w != os.Stdout {
		r.ok.DisableColor()
		r.warn.DisableColor()
		r.fail.DisableColor()
	}
	return r
}

func (r *Reporter) Creating(dir string) {
	fmt.Fprintf(r.w, "Creating directory: %s\n", dir)
}

func (r *Reporter) Start(source, dir string) {
	fmt.Fprintf(r.w, "Starting download from %s to %s\n", source, dir)
}

func (r *Reporter) Skipped(name string) {
	r.warn.Fprintf(r.w, "File %s already exists. Skipping.\n", name)
}

func (r *Reporter) Downloading(name string) {
	fmt.Fprintf(r.w, "Downloading %s...\n", name)
}

func (r *Reporter) Downloaded(name string, written int64) {
	r.ok.Fprintf(r.w, "Successfully downloaded %s (%s)\n", name, humanize.Bytes(uint64(written)))
}

func (r *Reporter) Failed(name string) {
	r.fail.Fprintf(r.w, "Warning: Could not download %s\n", name)
}

func (r *Reporter) Summary(s Summary) {
	fmt.Fprintf(r.w, "\nDownload complete. %s files ready.\n", s)
}
