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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/rs/zerolog/log"

	"docdex/extraction"
	"docdex/storage"
)

// ErrDocumentNotFound means no indexed document matched the
// requested filename.
var ErrDocumentNotFound = errors.New("document not found")

const noDescriptionAvailable = "no description available"

// TaggedObject combines object store metadata with the
// object's tag set.
type TaggedObject struct {
	storage.ObjectInfo
	Tags map[string]string `json:"tags"`
}

// CombinedResult holds the two branches of a combined search.
// The index branch and the tag branch are reported separately
// and may overlap.
type CombinedResult struct {
	IndexResults []string       `json:"index_results"`
	MinioResults []TaggedObject `json:"minio_results"`
}

// Service answers metadata queries. It translates filter sets
// and free-text tokens into index queries and, for the tag-based
// paths, scans object store tag sets directly.
type Service struct {
	conf  *Conf
	index bleve.Index
	store storage.ObjectStore
	tags  *storage.TagReader
}

// FilteredSearch runs a conjunction of the provided filters and
// returns the filenames of matching documents. Hits without a
// stored filename field (ad-hoc documents) are left out.
func (service *Service) FilteredSearch(filters Filters) ([]string, error) {
	q, err := TranslateFilters(filters)
	if err != nil {
		return nil, err
	}
	req := bleve.NewSearchRequest(q)
	req.Size = service.conf.PageSize
	req.Fields = []string{extraction.FieldFilename}
	res, err := service.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("failed to run filtered search: %w", err)
	}
	ans := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if fn, ok := hit.Fields[extraction.FieldFilename].(string); ok && fn != "" {
			ans = append(ans, fn)
		}
	}
	return ans, nil
}

// CombinedSearch runs a free-text token against the index (any
// known field may match) and, independently, against the object
// store's tag sets where an object matches if it carries a tag
// whose key and value both equal the token. The two result lists
// are kept separate.
func (service *Service) CombinedSearch(ctx context.Context, token string) (CombinedResult, error) {
	ans := CombinedResult{
		IndexResults: []string{},
		MinioResults: []TaggedObject{},
	}
	req := bleve.NewSearchRequest(TranslateCombined(token))
	req.Size = service.conf.PageSize
	req.Fields = []string{extraction.FieldFilename}
	res, err := service.index.Search(req)
	if err != nil {
		return ans, fmt.Errorf("failed to run combined search: %w", err)
	}
	for _, hit := range res.Hits {
		if fn, ok := hit.Fields[extraction.FieldFilename].(string); ok && fn != "" {
			ans.IndexResults = append(ans.IndexResults, fn)
		}
	}

	objects, err := service.store.List(ctx)
	if err != nil {
		return ans, fmt.Errorf("failed to run combined search: %w", err)
	}
	for _, obj := range objects {
		tags, err := service.tags.Tags(ctx, obj.Name)
		if err != nil {
			log.Warn().Err(err).Str("object", obj.Name).Msg("failed to fetch tags, skipping object")
			continue
		}
		if tags[token] == token {
			ans.MinioResults = append(ans.MinioResults, TaggedObject{ObjectInfo: obj, Tags: tags})
		}
	}
	return ans, nil
}

// TagSearch scans all the objects' tag sets for an exact
// key/value match and returns full object metadata for the
// matching ones. This path bypasses the index entirely.
func (service *Service) TagSearch(ctx context.Context, key, value string) ([]TaggedObject, error) {
	objects, err := service.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run tag search: %w", err)
	}
	ans := make([]TaggedObject, 0, len(objects))
	for _, obj := range objects {
		tags, err := service.tags.Tags(ctx, obj.Name)
		if err != nil {
			log.Warn().Err(err).Str("object", obj.Name).Msg("failed to fetch tags, skipping object")
			continue
		}
		if tags[key] == value {
			ans = append(ans, TaggedObject{ObjectInfo: obj, Tags: tags})
		}
	}
	return ans, nil
}

// RecordByFilename returns the full stored metadata record of
// a single document.
func (service *Service) RecordByFilename(filename string) (map[string]any, error) {
	q := bleve.NewMatchQuery(strings.ToLower(filename))
	q.SetField(extraction.FieldFilename)
	req := bleve.NewSearchRequest(q)
	req.Size = 1
	req.Fields = []string{"*"}
	res, err := service.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch record: %w", err)
	}
	if len(res.Hits) == 0 {
		return nil, ErrDocumentNotFound
	}
	return res.Hits[0].Fields, nil
}

// DescriptionByFilename returns the `brief description` field
// of a document (or a placeholder if the document carries none).
func (service *Service) DescriptionByFilename(filename string) (string, error) {
	rec, err := service.RecordByFilename(filename)
	if err != nil {
		return "", err
	}
	if desc, ok := rec["brief description"].(string); ok && desc != "" {
		return desc, nil
	}
	return noDescriptionAvailable, nil
}

func NewService(
	conf *Conf,
	index bleve.Index,
	store storage.ObjectStore,
	tags *storage.TagReader,
) *Service {
	return &Service{
		conf:  conf,
		index: index,
		store: store,
		tags:  tags,
	}
}
