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

package report

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"seehuhn.de/go/pdf"
)

// Metadata is written to the document information dictionary.
type Metadata struct {
	Title    string
	Subject  string
	Producer string
	Creator  string
}

// FixedTimestamp is used for all dates in deterministic mode,
// unless a time stamp is given in the options.
var FixedTimestamp = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// idNamespace is used to derive file identifiers in deterministic mode.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://seehuhn.de/go/report"))

// Finish completes the report and returns the PDF data.
//
// All pages are written out in order.  After Finish has been called,
// the Context can no longer be used.
func (c *Context) Finish(meta Metadata) ([]byte, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if c.closed {
		return nil, ErrFinalized
	}
	c.closed = true
	c.finalized = true

	if c.debug {
		c.outlineRecords()
	}

	now := time.Now()
	var id uuid.UUID
	if c.deterministic {
		now = c.timestamp
		if now.IsZero() {
			now = FixedTimestamp
		}
		h := sha256.New()
		fmt.Fprintf(h, "%s\x00%s\x00%d\x00%s", meta.Title, meta.Subject,
			len(c.pages), now.UTC().Format(time.RFC3339Nano))
		id = uuid.NewSHA1(idNamespace, h.Sum(nil))
	} else {
		id = uuid.New()
	}

	for i, page := range c.pages {
		err := page.Close()
		if err != nil {
			return nil, fmt.Errorf("report: page %d: %w", i+1, err)
		}
	}

	out := c.doc.Out.GetMeta()
	out.Info = &pdf.Info{
		Title:        pdf.TextString(meta.Title),
		Subject:      pdf.TextString(meta.Subject),
		Producer:     pdf.TextString(meta.Producer),
		Creator:      pdf.TextString(meta.Creator),
		CreationDate: pdf.Date(now),
		ModDate:      pdf.Date(now),
	}
	out.ID = [][]byte{id[:], id[:]}

	err := c.doc.Close()
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	c.log.Debug("report finished",
		zap.String("title", meta.Title),
		zap.Int("pages", len(c.pages)),
		zap.Int("bytes", c.buf.Len()),
		zap.Bool("deterministic", c.deterministic))

	return c.buf.Bytes(), nil
}
