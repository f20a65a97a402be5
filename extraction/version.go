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

import "regexp"

// CompositeVersionField is the source field that encodes version, month
// and year of release in a single value ("Version 2.1, March 2021").
const CompositeVersionField = "Document Version, Month, Year of Release"

// Field names emitted by the splitter. The year field is deliberately not
// called "date" - that name is reserved for the object store's
// last-modified timestamp injected during indexing.
const (
	fieldDocumentVersion = "Document Version"
	fieldMonth           = "Month"
	fieldYear            = "Year"
)

// The match is case-sensitive against the original-case value, so the
// splitter must run before the lower-casing pass of the normalizer.
var versionedValueRe = regexp.MustCompile(`^Version (\S+), (\w+) (\d{4})`)

// SplitVersionedValue decomposes a composite version value into its three
// parts. This is a best-effort heuristic: ok == false means the value does
// not follow the "Version <token>, <month> <year>" convention and the
// caller should keep the original field untouched.
func SplitVersionedValue(value string) (version, month, year string, ok bool) {
	m := versionedValueRe.FindStringSubmatch(value)
	if m == nil {
		return "", "", "", false
	}
	return "Version " + m[1], m[2], m[3], true
}
