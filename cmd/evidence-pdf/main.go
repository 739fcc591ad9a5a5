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

// Evidence-pdf renders acknowledgement evidence reports.
//
// Usage:
//
//	evidence-pdf [-config report.yaml] [-o out.pdf] input.yaml
//	evidence-pdf [-config report.yaml] -serve :8080 -data dir
//
// The input file describes either a single document with its completions
// (kind: single) or a stack with its acknowledged documents (kind: stack).
// JSON input is accepted as well.  In server mode, records are read from
// <dir>/<id>.yaml and served at /documents/{id}/evidence.pdf and
// /stacks/{id}/evidence.pdf.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"seehuhn.de/go/report/branding"
	"seehuhn.de/go/report/config"
	"seehuhn.de/go/report/evidence"
	"seehuhn.de/go/report/httpreport"
)

var (
	configFile = flag.String("config", "", "configuration file")
	outFile    = flag.String("o", "", "output file (default: standard output)")
	serveAddr  = flag.String("serve", "", "serve reports on this address")
	dataDir    = flag.String("data", ".", "directory with the input records, in server mode")
	force      = flag.Bool("f", false, "write PDF data even if standard output is a terminal")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "evidence-pdf:", err)
		os.Exit(1)
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "evidence-pdf:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *serveAddr != "" {
		err = serve(ctx, cfg, log)
	} else {
		err = render(ctx, cfg, log)
	}
	if err != nil {
		log.Fatal("evidence-pdf failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// reportOptions returns the rendering options, including the branding
// images.
func reportOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) (*evidence.Options, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	f := branding.NewFetcher(cfg.FetchTimeout, cfg.MaxImageBytes)
	assets, err := branding.Load(fetchCtx, f, branding.Sources{
		Logo:      cfg.LogoSource,
		Watermark: cfg.WatermarkSource,
		PoweredBy: cfg.PoweredBySource,
	}, log)
	if err != nil {
		return nil, err
	}

	opt := cfg.ReportOptions()
	opt.Logo = assets.Logo
	opt.WatermarkLogo = assets.Watermark
	opt.PoweredByLogo = assets.PoweredBy
	opt.Logger = log
	return opt, nil
}

func render(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *outFile == "" && !*force && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PDF data to a terminal, use -o or -f")
	}

	in, err := readInput(flag.Arg(0))
	if err != nil {
		return err
	}
	opt, err := reportOptions(ctx, cfg, log)
	if err != nil {
		return err
	}
	rep, err := in.build(opt)
	if err != nil {
		return err
	}

	if *outFile == "" {
		_, err = os.Stdout.Write(rep.Data)
		return err
	}
	return os.WriteFile(*outFile, rep.Data, 0o644)
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	opt, err := reportOptions(ctx, cfg, log)
	if err != nil {
		return err
	}
	r := httpreport.NewRenderer(cfg.MaxConcurrentRenders, opt, log)
	store := &dirStore{dir: *dataDir}

	mux := http.NewServeMux()
	mux.Handle("GET /documents/{id}/evidence.pdf", r.SingleHandler(store.single))
	mux.Handle("GET /stacks/{id}/evidence.pdf", r.StackHandler(store.stack))

	srv := &http.Server{
		Addr:              *serveAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info("serving evidence reports", zap.String("addr", *serveAddr), zap.String("data", *dataDir))
	err = srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
