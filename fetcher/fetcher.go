// Package fetcher downloads the files of a manifest into a local directory,
// one after another, skipping the ones that are already there.
package fetcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/handsomefox/modelfetch/api"
	"github.com/rs/zerolog/log"
)

// ChunkSize is the size of a single read from the response body.
const ChunkSize = 1024

// TransferError wraps failures of the request layer: connection errors,
// non-2xx statuses and broken bodies. These never abort a run.
type TransferError struct {
	File string
	err  error
}

func (te *TransferError) Error() string {
	return fmt.Sprintf("%s: transfer failed(name=%s)", te.err, te.File)
}

func (te *TransferError) Unwrap() error {
	return te.err
}

type Fetcher struct {
	client *api.Client
	report *Reporter
	dir    string

	results []Result
}

func New(client *api.Client, dir string, report *Reporter) *Fetcher {
	if report == nil {
		report = NewReporter(io.Discard)
	}
	return &Fetcher{
		client: client,
		report: report,
		dir:    dir,
	}
}

// Path returns the destination path of the file.
func (f *Fetcher) Path(filename string) string {
	return filepath.Join(f.dir, filename)
}

// Results returns the outcomes of the last RunAll call, in manifest order.
func (f *Fetcher) Results() []Result {
	return f.results
}

// RunAll processes the manifest sequentially. Files that exist at their destination
// are counted as ready without touching the network. Transfer failures are logged
// and counted, filesystem errors stop the run and are returned.
func (f *Fetcher) RunAll(ctx context.Context, manifest Manifest) (Summary, error) {
	f.results = make([]Result, 0, len(manifest))

	if err := manifest.Validate(); err != nil {
		return Summary{}, err
	}

	if !FileExists(f.dir) {
		f.report.Creating(f.dir)
	}
	if err := EnsureDirectory(f.dir); err != nil {
		return Summary{}, err
	}

	f.report.Start(f.client.BaseURL().String(), f.dir)

	for _, name := range manifest {
		path := f.Path(name)
		if FileExists(path) {
			log.Debug().Str("path", path).Msg("file exists, skipping")
			f.report.Skipped(name)
			f.results = append(f.results, Result{File: name, Path: path, Outcome: OutcomeAlreadyPresent})
			continue
		}

		res, err := f.download(ctx, name)
		if err != nil {
			return Summarize(f.results), err
		}
		f.results = append(f.results, res)
	}

	summary := Summarize(f.results)
	f.report.Summary(summary)

	return summary, nil
}

// Download fetches a single file regardless of whether it exists.
// It returns false on a transfer failure and a non-nil error only on filesystem failures.
func (f *Fetcher) Download(ctx context.Context, filename string) (bool, error) {
	if err := ValidateFilename(filename); err != nil {
		return false, err
	}

	res, err := f.download(ctx, filename)
	if err != nil {
		return false, err
	}

	return res.Outcome == OutcomeDownloaded, nil
}

func (f *Fetcher) download(ctx context.Context, name string) (Result, error) {
	path := f.Path(name)
	res := Result{File: name, Path: path, Outcome: OutcomeDownloaded}

	f.report.Downloading(name)

	n, err := f.save(ctx, name, path)
	res.Written = n

	var te *TransferError
	switch {
	case err == nil:
		log.Debug().Int64("written_bytes", n).Str("path", path).Msg("wrote to disk")
		f.report.Downloaded(name, n)
	case errors.As(err, &te):
		log.Err(err).Str("file", name).Msg("error downloading file")
		f.report.Failed(name)
		res.Outcome = OutcomeFailed
		res.Err = err
	default:
		return res, err
	}

	return res, nil
}

// save streams the remote file to path. The file is only created once the hub
// answered with a 2xx status, and removed again if the transfer breaks.
func (f *Fetcher) save(ctx context.Context, name, path string) (int64, error) {
	res, err := f.client.GetFile(ctx, name)
	if err != nil {
		return 0, &TransferError{File: name, err: err}
	}
	defer res.Body.Close()

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: couldn't create file(name=%s)", err, path)
	}

	n, err := copyChunks(file, res.Body, name, path)
	if cerr := file.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("%w: couldn't close file(name=%s)", cerr, path)
	}
	if err != nil {
		if rerr := os.Remove(path); rerr != nil {
			log.Err(rerr).Str("path", path).Msg("failed to remove partial file")
		} else {
			log.Debug().Str("path", path).Msg("removed partial file")
		}
		return n, err
	}

	return n, nil
}

// copyChunks copies src to dst in ChunkSize reads. Read errors are reported
// as *TransferError, write errors are returned as is.
func copyChunks(dst io.Writer, src io.Reader, name, path string) (int64, error) {
	var (
		fw      = bufio.NewWriter(dst)
		buf     = make([]byte, ChunkSize)
		written int64
	)

	for {
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := fw.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, fmt.Errorf("%w: couldn't write file(name=%s)", werr, path)
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return written, &TransferError{File: name, err: rerr}
		}
	}

	if err := fw.Flush(); err != nil {
		return written, fmt.Errorf("%w: couldn't write file(name=%s)", err, path)
	}

	return written, nil
}
