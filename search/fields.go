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

package search

// FieldKind determines how a filter value for a field is
// translated into an index query.
type FieldKind int

const (

	// KindPhrase matches the value as an exact phrase within
	// an analyzed field.
	KindPhrase FieldKind = iota

	// KindTerm matches the value verbatim against an
	// untokenized (keyword) field.
	KindTerm

	// KindWildcard matches the value as a substring
	// (`*value*`) of a keyword field.
	KindWildcard
)

// Field describes one searchable metadata field.
type Field struct {

	// Param is the name of the HTTP query parameter carrying
	// the filter value.
	Param string

	// Name is the field's name in the index (normalized
	// metadata keys are lower-cased, hence the spaces).
	Name string

	Kind FieldKind
}

// Fields enumerates all the metadata fields the search API
// accepts as filters. Combined free-text search ORs a clause
// over each of them.
var Fields = []Field{
	{"filename", "filename", KindWildcard},
	{"title", "title", KindPhrase},
	{"title_alternative", "title alternative", KindWildcard},
	{"document_identifier", "document identifier", KindPhrase},
	{"document_version", "document version", KindPhrase},
	{"month", "month", KindPhrase},
	{"year", "year", KindPhrase},
	{"date", "date", KindTerm},
	{"status", "status", KindTerm},
	{"publisher", "publisher", KindPhrase},
	{"document_type", "type of standard document", KindPhrase},
	{"enforcement", "enforcement category", KindPhrase},
	{"creator", "creator", KindPhrase},
	{"contributor", "contributor", KindPhrase},
	{"brief_description", "brief description", KindPhrase},
	{"target_audience", "target audience", KindPhrase},
	{"owner", "owner of approved standard", KindPhrase},
	{"subject", "subject", KindPhrase},
	{"subject_category", "subject category", KindPhrase},
	{"coverage", "coverage: spatial", KindPhrase},
	{"format", "format", KindPhrase},
	{"language", "language", KindTerm},
	{"copyrights", "copyrights", KindPhrase},
}
