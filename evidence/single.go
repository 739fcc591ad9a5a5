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

package evidence

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"seehuhn.de/go/report"
)

// NoCompletions is shown when a document has not been acknowledged yet.
const NoCompletions = "No completions recorded yet."

// BuildSingle renders the evidence report for a single document,
// with one section per acknowledgement.
func BuildSingle(rec *SingleRecord, opt *Options) (*Report, error) {
	b, err := newBuilder(opt)
	if err != nil {
		return nil, err
	}
	c := b.c
	doc := &rec.Document

	title := doc.Title
	if title == "" {
		title = "Untitled document"
	}

	var subtitle string
	if doc.Workspace != "" {
		subtitle = "Workspace: " + doc.Workspace
	}
	var meta []string
	if doc.PublicID != "" {
		meta = append(meta, "Document "+doc.PublicID)
	}
	if doc.Version != "" {
		meta = append(meta, "Version "+doc.Version)
	}
	b.header("Acknowledgement evidence", title, subtitle, meta...)

	completions := slices.Clone(rec.Completions)
	slices.SortStableFunc(completions, func(x, y Completion) int {
		if d := y.SubmittedAt.Compare(x.SubmittedAt); d != 0 {
			return d
		}
		return cmp.Compare(x.Name, y.Name)
	})

	latest := missing
	if len(completions) > 0 {
		latest = formatShortTime(completions[0].SubmittedAt)
	}
	c.KPIRow([]report.KPI{
		{Label: "Status", Value: orMissing(doc.Status)},
		{Label: "Acknowledgements", Value: strconv.Itoa(len(completions))},
		{Label: "Latest acknowledgement", Value: latest},
	}, 3)

	c.Section("Document details", "")
	c.KeyValueList([]report.KeyValue{
		{Label: "Title", Value: doc.Title},
		{Label: "Version", Value: doc.Version},
		{Label: "Status", Value: doc.Status},
		{Label: "Workspace", Value: doc.Workspace},
		{Label: "Created", Value: formatTime(doc.CreatedAt)},
		{Label: "Document ID", Value: doc.ID, Mono: true},
		{Label: "Public ID", Value: doc.PublicID, Mono: true},
		{Label: "Source", Value: doc.SourceURL, Mono: true},
		{Label: "Source hash (SHA-256)", Value: doc.SourceHash, Mono: true},
	})

	switch n := len(completions); n {
	case 0:
		c.Section("Submissions", "")
		c.Note(NoCompletions, report.NoteOptions{Muted: true})
	default:
		c.Section("Submissions", submissionCount(n))
		for i := range completions {
			completionSection(c, &completions[i])
		}
	}

	return b.finish(title, "Acknowledgement evidence for "+title, doc.PublicID,
		"Acknowledgement evidence · "+title)
}

func submissionCount(n int) string {
	if n == 1 {
		return "1 acknowledgement"
	}
	return fmt.Sprintf("%d acknowledgements, newest first", n)
}

func completionSection(c *report.Context, comp *Completion) {
	heading := comp.Name
	var subtitle string
	switch {
	case heading == "" && comp.Email == "":
		heading = "Anonymous respondent"
	case heading == "":
		heading = comp.Email
	default:
		subtitle = comp.Email
	}
	c.Section(heading, subtitle)

	c.KeyValueList([]report.KeyValue{
		{Label: "Submitted", Value: formatTime(comp.SubmittedAt)},
		{Label: "Method", Value: comp.Method},
		{Label: "Scroll depth", Value: formatPercent(comp.ScrollPercent)},
		{Label: "Time on page", Value: formatDuration(comp.TimeOnPage)},
		{Label: "Active time", Value: formatDuration(comp.ActiveTime)},
		{Label: "IP address", Value: comp.IP, Mono: true},
		{Label: "User agent", Value: comp.UserAgent, Mono: true},
	})
	if comp.Statement != "" {
		c.Note(comp.Statement, report.NoteOptions{Muted: true})
	}
}
