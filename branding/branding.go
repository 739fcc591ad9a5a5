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

// Package branding fetches the images used to brand evidence reports.
//
// Branding images are fetched before layout starts.  All images are
// optional: a source which cannot be fetched is logged and left empty.
package branding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrTooLarge is returned when an image exceeds the size limit.
var ErrTooLarge = errors.New("branding: image too large")

// DefaultMaxBytes is the default size limit for a single image.
const DefaultMaxBytes = 4 << 20

// Fetcher retrieves the bytes of an image.
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// HTTPFetcher fetches images over HTTP.
type HTTPFetcher struct {
	Client *http.Client

	// MaxBytes limits the size of an image.  If this is zero,
	// DefaultMaxBytes is used.
	MaxBytes int64
}

// Fetch implements the [Fetcher] interface.
func (f *HTTPFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "image/*")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("branding: %s: %s", source, resp.Status)
	}
	return readLimited(resp.Body, maxBytes(f.MaxBytes))
}

// FileFetcher reads images from the local file system.
type FileFetcher struct {
	// Dir, if set, is the directory relative file names are resolved
	// against.
	Dir string

	MaxBytes int64
}

// Fetch implements the [Fetcher] interface.
func (f *FileFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(source, "file://")
	if f.Dir != "" && !filepath.IsAbs(name) {
		name = filepath.Join(f.Dir, name)
	}
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return readLimited(fd, maxBytes(f.MaxBytes))
}

// SourceFetcher chooses a fetcher based on the form of the source:
// http and https URLs are fetched with HTTP, everything else is read
// from a file.
type SourceFetcher struct {
	HTTP *HTTPFetcher
	File *FileFetcher
}

// NewFetcher returns a fetcher for both URLs and file names.
func NewFetcher(timeout time.Duration, limit int64) *SourceFetcher {
	return &SourceFetcher{
		HTTP: &HTTPFetcher{
			Client:   &http.Client{Timeout: timeout},
			MaxBytes: limit,
		},
		File: &FileFetcher{MaxBytes: limit},
	}
}

// Fetch implements the [Fetcher] interface.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return f.HTTP.Fetch(ctx, source)
	}
	return f.File.Fetch(ctx, source)
}

func maxBytes(n int64) int64 {
	if n <= 0 {
		return DefaultMaxBytes
	}
	return n
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}

// Sources names the branding images of a report.  Empty sources are
// skipped.
type Sources struct {
	Logo      string
	Watermark string
	PoweredBy string
}

// Assets holds the fetched branding images.  The images are not decoded.
type Assets struct {
	Logo      []byte
	Watermark []byte
	PoweredBy []byte
}

// Load fetches all branding images concurrently.
//
// Images which cannot be fetched are logged and left empty.  An error is
// only returned if ctx is cancelled before all images are fetched.
func Load(ctx context.Context, f Fetcher, src Sources, log *zap.Logger) (*Assets, error) {
	if log == nil {
		log = zap.NewNop()
	}

	res := &Assets{}
	jobs := []struct {
		name   string
		source string
		dst    *[]byte
	}{
		{"logo", src.Logo, &res.Logo},
		{"watermark", src.Watermark, &res.Watermark},
		{"powered-by", src.PoweredBy, &res.PoweredBy},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(jobs))
	for _, job := range jobs {
		if job.source == "" {
			continue
		}
		g.Go(func() error {
			start := time.Now()
			data, err := f.Fetch(gctx, job.source)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.Warn("branding image not available",
					zap.String("image", job.name),
					zap.String("source", job.source),
					zap.Error(err))
				return nil
			}
			*job.dst = data
			log.Debug("branding image fetched",
				zap.String("image", job.name),
				zap.Int("bytes", len(data)),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
