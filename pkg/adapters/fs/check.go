package fs

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notenik/pkg/core"
)

// Report summarizes how one file reads and how it would be written back.
type Report struct {
	Path    string
	Title   string
	Dialect core.Dialect
	// WriteDialect differs from Dialect when saving would escalate the note.
	WriteDialect core.Dialect
	Fields       int
	// Stable is set when writing the note and reading it back yields the
	// same field values.
	Stable bool
	Err    error
}

// Check reads every path with up to workers goroutines and reports on each,
// in the order given. Every file is parsed into its own clone of base, so
// no dictionary is shared between goroutines.
func (s *Store) Check(ctx context.Context, paths []string, base *core.Collection, workers int) []Report {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	reports := make([]Report, len(paths))
	jobs := make(chan int)

	// workers must always start so wg.Wait returns; cancellation is
	// handled by the feed loop below.
	workerCtx := context.WithoutCancel(ctx)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		lifecycle.Go(workerCtx, func(context.Context) error {
			defer wg.Done()
			for i := range jobs {
				reports[i] = s.checkOne(paths[i], base.Clone())
			}
			return nil
		}, lifecycle.WithErrorHandler(func(err error) {
			s.config.Logger.Error("check worker failed", "error", err)
		}))
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range reports {
			if reports[i].Path == "" {
				reports[i] = Report{Path: paths[i], Err: err}
			}
		}
	}
	return reports
}

func (s *Store) checkOne(path string, c *core.Collection) Report {
	r := Report{Path: path}
	n, err := s.ReadNote(path, c)
	if err != nil {
		r.Err = err
		return r
	}
	r.Title = n.Title()
	r.Dialect = n.Dialect
	r.WriteDialect = s.writer.Dialect(n)
	r.Fields = n.Len()

	// Write a copy so the report does not change the parsed note's dialect.
	text := s.writer.Write(n.Clone())
	again := s.parser.Parse(text, c.Clone(), TitleFromPath(path))
	r.Stable = sameFields(n, again)
	if !r.Stable {
		s.config.Logger.Warn("note does not survive a rewrite", "path", path)
	}
	return r
}

func sameFields(a, b *core.Note) bool {
	am, bm := a.Map(), b.Map()
	if len(am) != len(bm) {
		return false
	}
	for k, v := range am {
		if bm[k] != v {
			return false
		}
	}
	return true
}

// String renders a one-line summary of the report.
func (r Report) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", r.Path, r.Err)
	}
	return fmt.Sprintf("%s: %q %s, %d fields", r.Path, r.Title, r.Dialect, r.Fields)
}
