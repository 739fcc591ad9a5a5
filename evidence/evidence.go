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

// Package evidence builds acknowledgement evidence reports.
//
// Two report shapes are supported: [BuildSingle] documents all
// acknowledgements of one document, [BuildStack] documents one recipient
// acknowledging a bundle of documents.
package evidence

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"seehuhn.de/go/report"
	"seehuhn.de/go/report/theme"
)

// Producer is written to the metadata of every report.
const Producer = "seehuhn.de/go/report"

// DefaultBrand is used when no brand name is given.
const DefaultBrand = "Evidence"

// Document describes an acknowledged document.
type Document struct {
	ID         string    `yaml:"id" json:"id"`
	PublicID   string    `yaml:"public_id" json:"public_id"`
	Title      string    `yaml:"title" json:"title"`
	Version    string    `yaml:"version" json:"version"`
	Status     string    `yaml:"status" json:"status"`
	SourceHash string    `yaml:"source_hash" json:"source_hash"`
	SourceURL  string    `yaml:"source_url" json:"source_url"`
	CreatedAt  time.Time `yaml:"created_at" json:"created_at"`
	Workspace  string    `yaml:"workspace" json:"workspace"`
}

// Completion is one acknowledgement of a document.
type Completion struct {
	Name        string    `yaml:"name" json:"name"`
	Email       string    `yaml:"email" json:"email"`
	Method      string    `yaml:"method" json:"method"`
	SubmittedAt time.Time `yaml:"submitted_at" json:"submitted_at"`
	IP          string    `yaml:"ip" json:"ip"`
	UserAgent   string    `yaml:"user_agent" json:"user_agent"`

	// ScrollPercent is nil if the scroll depth was not recorded.
	ScrollPercent *float64      `yaml:"scroll_percent" json:"scroll_percent"`
	TimeOnPage    time.Duration `yaml:"time_on_page" json:"time_on_page"`
	ActiveTime    time.Duration `yaml:"active_time" json:"active_time"`

	// Statement is the acknowledgement text the respondent agreed to.
	Statement string `yaml:"statement" json:"statement"`
}

// SingleRecord is the input of [BuildSingle].
type SingleRecord struct {
	Document    Document     `yaml:"document" json:"document"`
	Completions []Completion `yaml:"completions" json:"completions"`
}

// Stack is a bundle of documents acknowledged together.
type Stack struct {
	ID          string `yaml:"id" json:"id"`
	PublicID    string `yaml:"public_id" json:"public_id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Recipient is the person a stack was sent to.
type Recipient struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

// StackItem is the acknowledgement of one document of a stack.
type StackItem struct {
	Title          string        `yaml:"title" json:"title"`
	PublicID       string        `yaml:"public_id" json:"public_id"`
	Status         string        `yaml:"status" json:"status"`
	Method         string        `yaml:"method" json:"method"`
	AcknowledgedAt time.Time     `yaml:"acknowledged_at" json:"acknowledged_at"`
	ScrollPercent  *float64      `yaml:"scroll_percent" json:"scroll_percent"`
	TimeOnPage     time.Duration `yaml:"time_on_page" json:"time_on_page"`
	ActiveTime     time.Duration `yaml:"active_time" json:"active_time"`
	IP             string        `yaml:"ip" json:"ip"`
}

// StackRecord is the input of [BuildStack].
type StackRecord struct {
	Stack       Stack       `yaml:"stack" json:"stack"`
	Recipient   Recipient   `yaml:"recipient" json:"recipient"`
	SubmittedAt time.Time   `yaml:"submitted_at" json:"submitted_at"`
	Items       []StackItem `yaml:"items" json:"items"`
}

// Options control the appearance of a report.
type Options struct {
	// StyleVersion selects the theme, see [theme.Lookup].
	StyleVersion string

	// Watermark enables the brand mark behind the page content.
	Watermark bool

	// Deterministic pins all time stamps and identifiers, so that
	// identical input gives identical output.
	Deterministic bool

	// Timestamp is used as the generation time in deterministic mode.
	// If this is zero, [report.FixedTimestamp] is used.
	Timestamp time.Time

	// Brand is shown in the footer and written as the creator of the PDF.
	Brand string

	// Logo, WatermarkLogo and PoweredByLogo hold encoded images.  Images
	// which cannot be decoded are ignored.  If WatermarkLogo is empty or
	// cannot be decoded, the logo is used for the watermark.
	Logo          []byte
	LogoWidth     float64
	WatermarkLogo []byte
	PoweredByLogo []byte

	Logger *zap.Logger
}

// Report is a finished evidence report.
type Report struct {
	Data     []byte
	Title    string
	Filename string
	Pages    int

	// Records lists all text lines and images drawn.
	Records []report.Record
}

// Text returns the text of the report, one line per drawn text line.
func (r *Report) Text() string {
	b := &strings.Builder{}
	for _, rec := range r.Records {
		if rec.Text == "" {
			continue
		}
		b.WriteString(rec.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// builder holds the state shared by both report shapes.
type builder struct {
	c   *report.Context
	log *zap.Logger

	brand     string
	now       time.Time
	logo      *report.Image
	logoWidth float64
	poweredBy *report.Image
}

func newBuilder(opt *Options) (*builder, error) {
	if opt == nil {
		opt = &Options{}
	}
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}

	th, err := theme.Lookup(opt.StyleVersion)
	if err != nil {
		return nil, err
	}

	b := &builder{
		log:       log,
		brand:     opt.Brand,
		logoWidth: opt.LogoWidth,
	}
	if b.brand == "" {
		b.brand = DefaultBrand
	}

	b.now = time.Now()
	if opt.Deterministic {
		b.now = opt.Timestamp
		if b.now.IsZero() {
			b.now = report.FixedTimestamp
		}
	}

	b.logo = report.LoadImage(opt.Logo, log, "logo")
	b.poweredBy = report.LoadImage(opt.PoweredByLogo, log, "powered-by")
	mark := b.logo
	if m := report.LoadImage(opt.WatermarkLogo, log, "watermark"); m != nil {
		mark = m
	}
	wm := report.WatermarkSpec{
		Enabled:      opt.Watermark,
		Logo:         mark,
		FallbackText: b.brand,
	}

	b.c, err = report.New(th, &report.Options{
		OnPageAdded: func(c *report.Context) {
			c.Watermark(wm)
		},
		Deterministic: opt.Deterministic,
		Timestamp:     b.now,
		Logger:        log,
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (b *builder) header(eyebrow, title, subtitle string, meta ...string) {
	meta = append(meta, "Generated "+b.now.UTC().Format("2006-01-02 15:04 UTC"))
	b.c.Header(report.HeaderSpec{
		Eyebrow:   eyebrow,
		Title:     title,
		Subtitle:  subtitle,
		Meta:      meta,
		Logo:      b.logo,
		LogoWidth: b.logoWidth,
	})
}

// finish draws the footer and serializes the report.
func (b *builder) finish(title, subject, id, footer string) (*Report, error) {
	c := b.c
	c.Footer(report.FooterSpec{
		Text:           footer,
		PoweredByBrand: b.brand,
		PoweredByLogo:  b.poweredBy,
	})
	data, err := c.Finish(report.Metadata{
		Title:    title,
		Subject:  subject,
		Producer: Producer,
		Creator:  b.brand,
	})
	if err != nil {
		return nil, err
	}

	b.log.Info("evidence report generated",
		zap.String("title", title),
		zap.String("id", id),
		zap.Int("pages", c.NumPages()),
		zap.Int("bytes", len(data)))

	return &Report{
		Data:     data,
		Title:    title,
		Filename: Filename(title, id),
		Pages:    c.NumPages(),
		Records:  c.Records(),
	}, nil
}
