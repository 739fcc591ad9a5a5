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

// NoItems is shown when no document of a stack has been acknowledged.
const NoItems = "No documents acknowledged yet."

// stackTable lists the acknowledged documents of a stack.
var stackTable = &report.Table[StackItem]{
	Columns: []report.Column[StackItem]{
		{
			Header:   "Document",
			MinWidth: 100,
			Value: func(it StackItem) string {
				if it.PublicID == "" {
					return it.Title
				}
				return it.Title + "\n" + it.PublicID
			},
		},
		{
			Header: "Status",
			Width:  48,
			Value:  func(it StackItem) string { return orMissing(it.Status) },
		},
		{
			Header: "Method",
			Width:  48,
			Value:  func(it StackItem) string { return orMissing(it.Method) },
		},
		{
			Header: "Acknowledged",
			Width:  78,
			Value:  func(it StackItem) string { return formatShortTime(it.AcknowledgedAt) },
		},
		{
			Header: "Scroll",
			Width:  34,
			Align:  report.AlignRight,
			Value:  func(it StackItem) string { return orMissing(formatPercent(it.ScrollPercent)) },
		},
		{
			Header: "Time",
			Width:  38,
			Align:  report.AlignRight,
			Value:  func(it StackItem) string { return orMissing(formatDuration(it.TimeOnPage)) },
		},
		{
			Header: "Active",
			Width:  38,
			Align:  report.AlignRight,
			Value:  func(it StackItem) string { return orMissing(formatDuration(it.ActiveTime)) },
		},
		{
			Header: "IP",
			Width:  64,
			Mono:   true,
			Value:  func(it StackItem) string { return orMissing(it.IP) },
		},
	},
	RepeatHeader: true,
}

// BuildStack renders the evidence report for a stack of documents
// acknowledged by one recipient.
func BuildStack(rec *StackRecord, opt *Options) (*Report, error) {
	b, err := newBuilder(opt)
	if err != nil {
		return nil, err
	}
	c := b.c
	st := &rec.Stack

	title := st.Title
	if title == "" {
		title = "Untitled bundle"
	}
	var meta []string
	if st.PublicID != "" {
		meta = append(meta, "Bundle "+st.PublicID)
	}
	b.header("Bundle acknowledgement evidence", title, st.Description, meta...)

	items := slices.Clone(rec.Items)
	slices.SortStableFunc(items, func(x, y StackItem) int {
		if d := cmp.Compare(x.Title, y.Title); d != 0 {
			return d
		}
		return cmp.Compare(x.PublicID, y.PublicID)
	})

	c.Section("Summary", "")
	c.KeyValueList([]report.KeyValue{
		{Label: "Recipient", Value: rec.Recipient.Name},
		{Label: "Email", Value: rec.Recipient.Email},
		{Label: "Submitted", Value: formatTime(rec.SubmittedAt)},
		{Label: "Documents", Value: strconv.Itoa(len(items))},
		{Label: "Bundle ID", Value: st.ID, Mono: true},
		{Label: "Public ID", Value: st.PublicID, Mono: true},
	})

	if len(items) == 0 {
		c.Section("Acknowledged documents", "")
		c.Note(NoItems, report.NoteOptions{Muted: true})
	} else {
		sub := "1 document"
		if len(items) != 1 {
			sub = fmt.Sprintf("%d documents, sorted by title", len(items))
		}
		c.Section("Acknowledged documents", sub)
		report.DrawTable(c, stackTable, items)
	}

	return b.finish(title, "Bundle acknowledgement evidence for "+title, st.PublicID,
		"Bundle acknowledgement evidence · "+title)
}
