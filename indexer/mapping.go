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

package indexer

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"

	"docdex/extraction"
)

// metadataAnalyzer tokenizes on unicode word boundaries and
// lowercases tokens. Compared to Bleve's `simple` analyzer it
// keeps digits, which matters for values like years and version
// numbers.
const metadataAnalyzer = "metadata"

// titleAlternativeField supports substring search, which needs
// the whole value stored as a single term (a wildcard matches
// index terms, and tokenized terms never contain spaces).
const titleAlternativeField = "title alternative"

// keywordFields are metadata fields indexed verbatim (no
// tokenization) so they can be matched exactly or by wildcard.
var keywordFields = []string{
	extraction.FieldFilename,
	extraction.FieldStatus,
	extraction.FieldLanguage,
	extraction.FieldDate,
	titleAlternativeField,
}

// IsKeywordField tests whether a field is indexed verbatim
// and thus requires a term (or wildcard) query rather than
// an analyzed match query.
func IsKeywordField(name string) bool {
	for _, f := range keywordFields {
		if f == name {
			return true
		}
	}
	return false
}

// CreateMapping creates a mapping for indexing of normalized
// document metadata. All the dynamic metadata fields go through
// the metadata analyzer while the core fields (filename, status,
// language, date) are stored as keywords.
func CreateMapping() (mapping.IndexMapping, error) {
	indexMapping := bleve.NewIndexMapping()
	err := indexMapping.AddCustomAnalyzer(
		metadataAnalyzer,
		map[string]any{
			"type":          custom.Name,
			"tokenizer":     unicode.Name,
			"token_filters": []string{lowercase.Name},
		},
	)
	if err != nil {
		return nil, err
	}
	indexMapping.DefaultAnalyzer = metadataAnalyzer

	exactMapping := bleve.NewKeywordFieldMapping()
	for _, field := range keywordFields {
		indexMapping.DefaultMapping.AddFieldMappingsAt(field, exactMapping)
	}
	return indexMapping, nil
}
