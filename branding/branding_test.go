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

package branding

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var logoData = []byte("\x89PNG\r\n\x1a\n fake image data")

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/logo.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(logoData)
	})
	mux.HandleFunc("/large.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte{0}, 4096))
	})
	mux.HandleFunc("/slow.png", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcher(t *testing.T) {
	srv := newServer(t)
	f := &HTTPFetcher{Client: srv.Client(), MaxBytes: 1024}
	ctx := context.Background()

	data, err := f.Fetch(ctx, srv.URL+"/logo.png")
	require.NoError(t, err)
	assert.Equal(t, logoData, data)

	_, err = f.Fetch(ctx, srv.URL+"/large.png")
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = f.Fetch(ctx, srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "404")
}

func TestFileFetcher(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), logoData, 0o644))
	f := &FileFetcher{Dir: dir}

	data, err := f.Fetch(context.Background(), "logo.png")
	require.NoError(t, err)
	assert.Equal(t, logoData, data)

	data, err = f.Fetch(context.Background(), "file://"+filepath.Join(dir, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, logoData, data)

	_, err = f.Fetch(context.Background(), "missing.png")
	assert.ErrorIs(t, err, os.ErrNotExist)

	small := &FileFetcher{Dir: dir, MaxBytes: 4}
	_, err = small.Fetch(context.Background(), "logo.png")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestLoad(t *testing.T) {
	srv := newServer(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mark.png"), logoData, 0o644))

	f := NewFetcher(time.Second, 1024)
	f.HTTP.Client = srv.Client()
	f.File.Dir = dir

	core, logs := observer.New(zapcore.WarnLevel)
	assets, err := Load(context.Background(), f, Sources{
		Logo:      srv.URL + "/logo.png",
		Watermark: "mark.png",
		PoweredBy: srv.URL + "/large.png",
	}, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, logoData, assets.Logo)
	assert.Equal(t, logoData, assets.Watermark)
	assert.Nil(t, assets.PoweredBy)

	entries := logs.FilterMessage("branding image not available").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "powered-by", entries[0].ContextMap()["image"])
}

func TestLoadEmpty(t *testing.T) {
	assets, err := Load(context.Background(), NewFetcher(time.Second, 0), Sources{}, nil)
	require.NoError(t, err)
	assert.Equal(t, &Assets{}, assets)
}

func TestLoadCancelled(t *testing.T) {
	srv := newServer(t)
	f := &HTTPFetcher{Client: srv.Client()}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := Load(ctx, f, Sources{Logo: srv.URL + "/slow.png"}, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
