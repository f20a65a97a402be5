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
	"context"
	"testing"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/stretchr/testify/assert"

	"docdex/storage"
)

func newTestIndexer(t *testing.T, store storage.ObjectStore) *Indexer {
	idx, err := NewIndexer(&Conf{IndexDirPath: MemoryIndex}, store)
	assert.NoError(t, err)
	t.Cleanup(func() { idx.Stop(context.Background()) })
	return idx
}

func searchExact(t *testing.T, idx *Indexer, field, value string) *bleve.SearchResult {
	q := bleve.NewTermQuery(value)
	q.SetField(field)
	req := bleve.NewSearchRequest(q)
	req.Fields = []string{"*"}
	res, err := idx.Index().Search(req)
	assert.NoError(t, err)
	return res
}

func TestReindexAllUnsupportedFormatGetsDefaults(t *testing.T) {
	store := storage.NewDummyStore()
	store.Objects["Notes.txt"] = &storage.DummyObject{
		Data:         []byte("anything"),
		LastModified: time.Date(2021, 5, 3, 10, 0, 0, 0, time.UTC),
	}
	idx := newTestIndexer(t, store)
	result, err := idx.ReindexAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Notes.txt"}, result.Indexed)
	assert.Equal(t, []string{}, result.Skipped)

	res := searchExact(t, idx, "filename", "notes.txt")
	assert.Equal(t, uint64(1), res.Total)
	fields := res.Hits[0].Fields
	assert.Equal(t, "unknown", fields["status"])
	assert.Equal(t, "unknown", fields["language"])
	assert.Equal(t, "2021-05-03T10:00:00Z", fields["date"])
}

func TestReindexAllSkipsBrokenObjects(t *testing.T) {
	store := storage.NewDummyStore()
	store.Objects["ok.txt"] = &storage.DummyObject{LastModified: time.Now()}
	store.Objects["bad.pdf"] = &storage.DummyObject{
		Data:         []byte("not a pdf"),
		LastModified: time.Now(),
	}
	store.Objects["unreachable.txt"] = &storage.DummyObject{
		LastModified: time.Now(),
		Broken:       true,
	}
	idx := newTestIndexer(t, store)
	result, err := idx.ReindexAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"ok.txt"}, result.Indexed)
	assert.Equal(t, []string{"bad.pdf", "unreachable.txt"}, result.Skipped)

	count, err := idx.Count()
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestReindexAllReplacesExisting(t *testing.T) {
	store := storage.NewDummyStore()
	store.Objects["doc.txt"] = &storage.DummyObject{LastModified: time.Now()}
	idx := newTestIndexer(t, store)

	_, err := idx.ReindexAll(context.Background())
	assert.NoError(t, err)
	_, err = idx.ReindexAll(context.Background())
	assert.NoError(t, err)

	count, err := idx.Count()
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestIndexDocumentUsesFilenameAsID(t *testing.T) {
	idx := newTestIndexer(t, storage.NewDummyStore())
	id, err := idx.IndexDocument(map[string]string{
		"filename": "report.pdf",
		"status":   "final",
	})
	assert.NoError(t, err)
	assert.Equal(t, "report.pdf", id)

	res := searchExact(t, idx, "status", "final")
	assert.Equal(t, uint64(1), res.Total)
	assert.Equal(t, "report.pdf", res.Hits[0].ID)
}

func TestIndexDocumentGeneratesID(t *testing.T) {
	idx := newTestIndexer(t, storage.NewDummyStore())
	id, err := idx.IndexDocument(map[string]string{"title": "standalone record"})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestIndexDocumentDropsEmptyKeys(t *testing.T) {
	idx := newTestIndexer(t, storage.NewDummyStore())
	id, err := idx.IndexDocument(map[string]string{
		"":         "ignored",
		"  ":       "also ignored",
		"filename": "kept.docx",
	})
	assert.NoError(t, err)
	assert.Equal(t, "kept.docx", id)
}

func TestIndexDocumentEmpty(t *testing.T) {
	idx := newTestIndexer(t, storage.NewDummyStore())
	_, err := idx.IndexDocument(map[string]string{"": "value", " ": "other"})
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = idx.IndexDocument(map[string]string{})
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestAnalyzerKeepsDigits(t *testing.T) {
	idx := newTestIndexer(t, storage.NewDummyStore())
	_, err := idx.IndexDocument(map[string]string{
		"filename":         "spec.pdf",
		"document version": "version 2.1",
		"year":             "2021",
	})
	assert.NoError(t, err)

	q := bleve.NewMatchQuery("2021")
	q.SetField("year")
	req := bleve.NewSearchRequest(q)
	res, err := idx.Index().Search(req)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), res.Total)
}

func TestIsKeywordField(t *testing.T) {
	assert.True(t, IsKeywordField("filename"))
	assert.True(t, IsKeywordField("date"))
	assert.True(t, IsKeywordField("title alternative"))
	assert.False(t, IsKeywordField("title"))
}
