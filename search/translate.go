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

import (
	"errors"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// ErrNoFilters means a filtered search request carried no
// non-empty filter values. Such a request never reaches the
// index - the caller gets this error instead of the full corpus.
var ErrNoFilters = errors.New("no filters provided")

// Filters maps field parameter names (see Fields) to requested
// values. Unknown parameters are ignored by the translation.
type Filters map[string]string

// clause translates a single filter value into an index query.
// Values are lower-cased to match the canonical form the
// normalizer stores. Keyword fields need this explicitly, for
// analyzed fields the analyzer would do it anyway.
func (f Field) clause(value string) query.Query {
	value = strings.ToLower(value)
	switch f.Kind {
	case KindTerm:
		q := bleve.NewTermQuery(value)
		q.SetField(f.Name)
		return q
	case KindWildcard:
		q := bleve.NewWildcardQuery("*" + value + "*")
		q.SetField(f.Name)
		return q
	default:
		q := bleve.NewMatchPhraseQuery(value)
		q.SetField(f.Name)
		return q
	}
}

// TranslateFilters turns a set of filter values into a single
// conjunction query (all the filters must match).
func TranslateFilters(filters Filters) (query.Query, error) {
	clauses := make([]query.Query, 0, len(Fields))
	for _, f := range Fields {
		value := strings.TrimSpace(filters[f.Param])
		if value == "" {
			continue
		}
		clauses = append(clauses, f.clause(value))
	}
	if len(clauses) == 0 {
		return nil, ErrNoFilters
	}
	return bleve.NewConjunctionQuery(clauses...), nil
}

// TranslateCombined turns a free-text token into a disjunction
// over all the known fields plus a filename substring clause.
// A document matches if any single clause matches.
func TranslateCombined(token string) query.Query {
	token = strings.ToLower(token)
	clauses := make([]query.Query, 0, len(Fields)+1)
	for _, f := range Fields {
		// keyword-mapped fields (term and wildcard kinds) hold the
		// whole value as one term, so an analyzed match cannot apply
		if f.Kind == KindTerm || f.Kind == KindWildcard {
			q := bleve.NewTermQuery(token)
			q.SetField(f.Name)
			clauses = append(clauses, q)
			continue
		}
		q := bleve.NewMatchQuery(token)
		q.SetField(f.Name)
		clauses = append(clauses, q)
	}
	fnq := bleve.NewWildcardQuery("*" + token + "*")
	fnq.SetField("filename")
	clauses = append(clauses, fnq)
	ans := bleve.NewDisjunctionQuery(clauses...)
	ans.SetMin(1)
	return ans
}
