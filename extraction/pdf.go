// Copyright 2025 docdex contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// cellGapPts is the minimal horizontal gap (in PDF points) between two text
// chunks of the same row for them to count as separate table cells. Roughly
// the width of three spaces in a common body font.
const cellGapPts = 12.0

// extractPDF merges two feeds from a PDF: the running text parsed with the
// one-colon line rule and, with higher precedence, key/value pairs from
// embedded tables (rows clustering into at least three cells; cell 1 is the
// key, cell 2 the value).
func extractPDF(data []byte) (md Metadata, err error) {
	// the pdf library is known to panic on malformed files
	defer func() {
		if r := recover(); r != nil {
			md = nil
			err = fmt.Errorf("failed to parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pdf: %w", err)
	}

	var rows [][]pdf.Text
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		// a single broken page must not lose the rest of the document
		func() {
			defer func() { _ = recover() }()
			page := reader.Page(i)
			if page.V.IsNull() {
				return
			}
			pageRows, err := page.GetTextByRow()
			if err != nil {
				return
			}
			for _, row := range pageRows {
				rows = append(rows, row.Content)
			}
		}()
	}
	return pairsFromRows(rows), nil
}

// pairsFromRows turns the text rows of a whole document into metadata.
// The running text goes through the line rule; rows clustering into at
// least three cells are table rows whose pairs (cell 1 key, cell 2 value)
// overwrite any line-rule pair of the same key.
func pairsFromRows(rows [][]pdf.Text) Metadata {
	tablePairs := make(Metadata)
	var lines []string
	for _, row := range rows {
		cells := rowCells(row)
		if len(cells) >= 3 {
			key := collapseWhitespace(cells[1])
			value := collapseWhitespace(cells[2])
			if key != "" && value != "" {
				tablePairs[key] = value
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	md := ParseTextMetadata(strings.Join(lines, "\n"))
	md.Update(tablePairs)
	return md
}

// rowCells groups the text chunks of one row into cells, starting a new
// cell whenever the horizontal gap to the previous chunk exceeds
// cellGapPts. Chunks within a cell are concatenated in x order.
func rowCells(texts []pdf.Text) []string {
	var cells []string
	var cur strings.Builder
	prevEnd := 0.0
	for i, t := range texts {
		if i > 0 && t.X-prevEnd > cellGapPts {
			cells = append(cells, cur.String())
			cur.Reset()
		}
		cur.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	if cur.Len() > 0 {
		cells = append(cells, cur.String())
	}
	return cells
}
