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

// Package extraction turns office documents (PDF, XLSX, DOCX) into flat
// metadata records. Readers produce raw key/value pairs; Normalize applies
// the shared post-processing (versioned-field split, lower-casing, default
// fields) that makes a record indexable.
package extraction

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Metadata is a flat field name -> value mapping. Field names are
// content-derived and open-ended; only a small core set (filename, status,
// language, date) is guaranteed after normalization.
type Metadata map[string]string

// Update merges other into m, overwriting existing keys.
func (m Metadata) Update(other Metadata) {
	for k, v := range other {
		m[k] = v
	}
}

// ParseTextMetadata extracts key/value pairs from running text. A line
// produces a pair when it contains a colon; the text before the first
// colon is the key, the remainder is the value (so a value may itself
// contain colons). Both sides are trimmed, lines with an empty key are
// discarded.
func ParseTextMetadata(text string) Metadata {
	ans := make(Metadata)
	for _, line := range strings.Split(text, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		ans[key] = strings.TrimSpace(parts[1])
	}
	return ans
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// collapseWhitespace replaces internal whitespace runs with a single space
// and trims the result.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Extract parses a document's bytes based on its filename extension.
// Unsupported extensions yield an empty mapping and no error - the caller
// still injects the default fields for such objects. An error means the
// file could not be parsed at all (corrupt data, missing expected sheet);
// the caller is expected to skip the object and continue.
func Extract(data []byte, filename string) (Metadata, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".xlsx":
		return extractXLSX(data)
	case ".docx":
		return extractDOCX(data)
	}
	return Metadata{}, nil
}
