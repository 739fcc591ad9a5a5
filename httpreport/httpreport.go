// seehuhn.de/go/report - evidence reports in PDF format
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package httpreport serves evidence reports over HTTP.
//
// Every request renders its own report.  The number of reports rendered
// at the same time is bounded; requests wait for a free slot until their
// context is cancelled.
package httpreport

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"seehuhn.de/go/report/evidence"
)

// ErrNotFound is returned by a [Lookup] function for unknown identifiers.
var ErrNotFound = errors.New("httpreport: record not found")

// Renderer renders evidence reports with bounded concurrency.
type Renderer struct {
	sem *semaphore.Weighted
	opt evidence.Options
	log *zap.Logger
}

// NewRenderer returns a renderer which renders at most limit reports at a
// time, using the given options for every report.
func NewRenderer(limit int, opt *evidence.Options, log *zap.Logger) *Renderer {
	if limit < 1 {
		limit = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		sem: semaphore.NewWeighted(int64(limit)),
		log: log,
	}
	if opt != nil {
		r.opt = *opt
	}
	r.opt.Logger = log
	return r
}

// Single renders a single-document report.
func (r *Renderer) Single(ctx context.Context, rec *evidence.SingleRecord) (*evidence.Report, error) {
	return r.render(ctx, func(opt *evidence.Options) (*evidence.Report, error) {
		return evidence.BuildSingle(rec, opt)
	})
}

// Stack renders a stack report.
func (r *Renderer) Stack(ctx context.Context, rec *evidence.StackRecord) (*evidence.Report, error) {
	return r.render(ctx, func(opt *evidence.Options) (*evidence.Report, error) {
		return evidence.BuildStack(rec, opt)
	})
}

func (r *Renderer) render(ctx context.Context, build func(*evidence.Options) (*evidence.Report, error)) (*evidence.Report, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer r.sem.Release(1)

	// each report gets its own copy of the options
	opt := r.opt
	return build(&opt)
}

// Lookup loads the record with the given identifier.
type Lookup[R any] func(ctx context.Context, id string) (*R, error)

// SingleHandler returns a handler serving single-document reports.
// The record identifier is taken from the "id" path value.
func (r *Renderer) SingleHandler(lookup Lookup[evidence.SingleRecord]) http.Handler {
	return handler(r, lookup, r.Single)
}

// StackHandler returns a handler serving stack reports.
// The record identifier is taken from the "id" path value.
func (r *Renderer) StackHandler(lookup Lookup[evidence.StackRecord]) http.Handler {
	return handler(r, lookup, r.Stack)
}

func handler[R any](r *Renderer, lookup Lookup[R],
	render func(context.Context, *R) (*evidence.Report, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		id := req.PathValue("id")
		log := r.log.With(zap.String("id", id))

		rec, err := lookup(ctx, id)
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
			return
		case err != nil:
			log.Error("cannot load record", zap.Error(err))
			http.Error(w, "cannot load record", http.StatusInternalServerError)
			return
		}

		start := time.Now()
		rep, err := render(ctx, rec)
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			log.Warn("report request abandoned", zap.Error(err))
			http.Error(w, "report not available", http.StatusServiceUnavailable)
			return
		case err != nil:
			log.Error("cannot render report", zap.Error(err))
			http.Error(w, "cannot render report", http.StatusInternalServerError)
			return
		}
		log.Info("report rendered",
			zap.Int("pages", rep.Pages),
			zap.Duration("elapsed", time.Since(start)))

		Serve(w, rep)
	})
}

// ContentDisposition returns the value of a Content-Disposition header
// which asks the client to save the response under the given file name.
func ContentDisposition(filename string) string {
	if isPlain(filename) {
		return `attachment; filename="` + filename + `"`
	}
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}

// isPlain reports whether s can be used as a quoted string without escaping.
func isPlain(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if c < 0x20 || c >= 0x7f || c == '"' || c == '\\' {
			return false
		}
	}
	return true
}

// Serve writes a report as the response.
func Serve(w http.ResponseWriter, rep *evidence.Report) {
	h := w.Header()
	h.Set("Content-Type", "application/pdf")
	h.Set("Content-Disposition", ContentDisposition(rep.Filename))
	h.Set("Content-Length", strconv.Itoa(len(rep.Data)))
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(rep.Data)
}
