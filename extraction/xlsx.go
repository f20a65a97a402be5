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

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// metadataSheet is the designated sheet carrying key/value metadata rows.
const metadataSheet = "Metadata"

// extractXLSX reads key/value pairs from the "Metadata" sheet: column 0 is
// the key, column 1 the value. An optional header row ("S. No." / "Data
// Elements") is skipped.
func extractXLSX(data []byte) (Metadata, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := book.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	rows, err := book.GetRows(metadataSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", metadataSheet, err)
	}

	md := make(Metadata)
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		if len(row) < 2 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		md[key] = strings.TrimSpace(row[1])
	}
	return md, nil
}

func isHeaderRow(row []string) bool {
	return len(row) >= 2 &&
		strings.Contains(row[0], "S. No.") &&
		strings.Contains(row[1], "Data Elements")
}
