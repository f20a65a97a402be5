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

import "strings"

// Core fields guaranteed to be present in every normalized record.
const (
	FieldFilename = "filename"
	FieldStatus   = "status"
	FieldLanguage = "language"
	FieldDate     = "date"
)

const (
	statusSourceField   = "present status"
	languageSourceField = "language"

	// UnknownValue is the explicit default for status and language when
	// the source document carries no such field.
	UnknownValue = "unknown"
)

// Normalize turns a raw extraction result into an indexable record:
//
//  1. entries with an empty key (after trimming) are dropped
//  2. the composite version field is split into version/month/year
//     (against the original-case value, hence before step 3)
//  3. every key and value is lower-cased
//  4. filename is set to the lower-cased input name
//  5. status and language are derived from their source fields,
//     defaulting to "unknown"
//
// The input mapping is left untouched.
func Normalize(raw Metadata, filename string) Metadata {
	split := make(Metadata, len(raw)+4)
	for k, v := range raw {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if k == CompositeVersionField {
			if version, month, year, ok := SplitVersionedValue(v); ok {
				split[fieldDocumentVersion] = version
				split[fieldMonth] = month
				split[fieldYear] = year
				continue
			}
		}
		split[k] = v
	}

	ans := make(Metadata, len(split)+4)
	for k, v := range split {
		ans[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(v)
	}

	ans[FieldFilename] = strings.ToLower(filename)
	if status, ok := ans[statusSourceField]; ok {
		ans[FieldStatus] = status

	} else {
		ans[FieldStatus] = UnknownValue
	}
	if _, ok := ans[languageSourceField]; !ok {
		ans[FieldLanguage] = UnknownValue
	}
	return ans
}
