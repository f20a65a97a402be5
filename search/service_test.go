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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docdex/extraction"
	"docdex/indexer"
	"docdex/storage"
)

func newTestService(t *testing.T, store *storage.DummyStore, docs map[string]extraction.Metadata) *Service {
	idx, err := indexer.NewIndexer(&indexer.Conf{IndexDirPath: indexer.MemoryIndex}, store)
	assert.NoError(t, err)
	t.Cleanup(func() { idx.Stop(context.Background()) })
	for id, doc := range docs {
		assert.NoError(t, idx.Upsert(id, doc))
	}
	conf := &Conf{}
	assert.NoError(t, conf.ValidateAndDefaults())
	tags := storage.NewTagReader(store, &storage.NullTagCache{})
	return NewService(conf, idx.Index(), store, tags)
}

func TestFilteredSearchNoFilters(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), nil)
	_, err := srv.FilteredSearch(Filters{})
	assert.ErrorIs(t, err, ErrNoFilters)

	_, err = srv.FilteredSearch(Filters{"status": "  "})
	assert.ErrorIs(t, err, ErrNoFilters)
}

func TestFilteredSearchExactTerm(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), map[string]extraction.Metadata{
		"a.pdf": {"filename": "a.pdf", "status": "approved", "language": "english"},
		"b.pdf": {"filename": "b.pdf", "status": "draft", "language": "english"},
	})
	files, err := srv.FilteredSearch(Filters{"status": "approved"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, files)
}

func TestFilteredSearchConjunction(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), map[string]extraction.Metadata{
		"a.pdf": {"filename": "a.pdf", "status": "approved", "language": "english"},
		"b.pdf": {"filename": "b.pdf", "status": "approved", "language": "french"},
	})
	files, err := srv.FilteredSearch(Filters{"status": "approved", "language": "french"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"b.pdf"}, files)
}

func TestFilteredSearchFilenameSubstring(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), map[string]extraction.Metadata{
		"1 digital grenada.pdf": {"filename": "1 digital grenada.pdf"},
		"analog.pdf":            {"filename": "analog.pdf"},
	})
	files, err := srv.FilteredSearch(Filters{"filename": "digital"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"1 digital grenada.pdf"}, files)
}

func TestFilteredSearchTitleAlternativeSubstring(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), map[string]extraction.Metadata{
		"a.pdf": {"filename": "a.pdf", "title alternative": "digital grenada strategy"},
		"b.pdf": {"filename": "b.pdf", "title alternative": "egov roadmap"},
	})
	files, err := srv.FilteredSearch(Filters{"title_alternative": "digital grenada"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, files)

	files, err = srv.FilteredSearch(Filters{"title_alternative": "grena"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, files)
}

func TestFilteredSearchPhraseField(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), map[string]extraction.Metadata{
		"a.pdf": {"filename": "a.pdf", "publisher": "ministry of finance"},
		"b.pdf": {"filename": "b.pdf", "publisher": "central bank"},
	})
	files, err := srv.FilteredSearch(Filters{"publisher": "Ministry of Finance"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, files)
}

func TestFilteredSearchSkipsHitsWithoutFilename(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), map[string]extraction.Metadata{
		"adhoc-1": {"status": "approved"},
		"a.pdf":   {"filename": "a.pdf", "status": "approved"},
	})
	files, err := srv.FilteredSearch(Filters{"status": "approved"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, files)
}

func TestCombinedSearchIndexBranch(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), map[string]extraction.Metadata{
		"a.pdf": {"filename": "a.pdf", "subject": "digital identity"},
		"b.pdf": {"filename": "b.pdf", "subject": "taxation"},
	})
	result, err := srv.CombinedSearch(context.Background(), "identity")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, result.IndexResults)
	assert.Empty(t, result.MinioResults)
}

func TestCombinedSearchTagBranch(t *testing.T) {
	store := storage.NewDummyStore()
	store.Objects["tagged.pdf"] = &storage.DummyObject{
		Data:         []byte("x"),
		LastModified: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Tags:         map[string]string{"GEA": "GEA"},
	}
	store.Objects["plain.pdf"] = &storage.DummyObject{
		Tags: map[string]string{"GEA": "other"},
	}
	srv := newTestService(t, store, nil)
	result, err := srv.CombinedSearch(context.Background(), "GEA")
	assert.NoError(t, err)
	assert.Len(t, result.MinioResults, 1)
	assert.Equal(t, "tagged.pdf", result.MinioResults[0].Name)
	assert.Equal(t, map[string]string{"GEA": "GEA"}, result.MinioResults[0].Tags)
}

func TestCombinedSearchTagFailureIsNotFatal(t *testing.T) {
	store := storage.NewDummyStore()
	store.Objects["bad.pdf"] = &storage.DummyObject{}
	store.Objects["good.pdf"] = &storage.DummyObject{
		Tags: map[string]string{"x": "x"},
	}
	store.TagErrors["bad.pdf"] = true
	srv := newTestService(t, store, nil)
	result, err := srv.CombinedSearch(context.Background(), "x")
	assert.NoError(t, err)
	assert.Len(t, result.MinioResults, 1)
	assert.Equal(t, "good.pdf", result.MinioResults[0].Name)
}

func TestTagSearch(t *testing.T) {
	store := storage.NewDummyStore()
	store.Objects["a.pdf"] = &storage.DummyObject{
		Data: []byte("abc"),
		Tags: map[string]string{"department": "finance"},
	}
	store.Objects["b.pdf"] = &storage.DummyObject{
		Tags: map[string]string{"department": "health"},
	}
	srv := newTestService(t, store, nil)
	matches, err := srv.TagSearch(context.Background(), "department", "finance")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, "a.pdf", matches[0].Name)
	assert.Equal(t, int64(3), matches[0].Size)
}

func TestTagSearchNoMatch(t *testing.T) {
	store := storage.NewDummyStore()
	store.Objects["a.pdf"] = &storage.DummyObject{
		Tags: map[string]string{"department": "finance"},
	}
	srv := newTestService(t, store, nil)
	matches, err := srv.TagSearch(context.Background(), "department", "defence")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRecordByFilename(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), map[string]extraction.Metadata{
		"a.pdf": {"filename": "a.pdf", "title": "annual report", "status": "final"},
	})
	rec, err := srv.RecordByFilename("a.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "annual report", rec["title"])
	assert.Equal(t, "final", rec["status"])
}

func TestRecordByFilenameNotFound(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), nil)
	_, err := srv.RecordByFilename("missing.pdf")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDescriptionByFilename(t *testing.T) {
	srv := newTestService(t, storage.NewDummyStore(), map[string]extraction.Metadata{
		"a.pdf": {"filename": "a.pdf", "brief description": "tax guidance"},
		"b.pdf": {"filename": "b.pdf"},
	})
	desc, err := srv.DescriptionByFilename("a.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "tax guidance", desc)

	desc, err = srv.DescriptionByFilename("b.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "no description available", desc)
}
