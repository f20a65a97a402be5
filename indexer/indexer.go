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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"docdex/extraction"
	"docdex/storage"
)

// ErrEmptyDocument means a submitted document contained no
// usable metadata fields (all the keys were empty).
var ErrEmptyDocument = errors.New("document contains no non-empty fields")

// Indexer maintains a fulltext index of normalized document
// metadata. It reads source documents from an object store,
// extracts and normalizes their metadata and writes the result
// to a Bleve index. Besides the full sweep over the store it
// also accepts ad-hoc documents submitted via API.
type Indexer struct {
	conf     *Conf
	store    storage.ObjectStore
	bleveIdx bleve.Index
}

// ReindexResult describes the outcome of a full sweep over
// the object store.
type ReindexResult struct {

	// Indexed lists object names whose metadata made it
	// into the index.
	Indexed []string `json:"files"`

	// Skipped lists object names which failed to be processed
	// (typically corrupt or unreadable files). Their failure
	// does not abort the sweep.
	Skipped []string `json:"skipped"`
}

// ReindexAll enumerates all the objects in the store and
// (re)indexes their metadata one by one. A failure of an
// individual object is logged and reported in the result's
// Skipped list without stopping the sweep. Only a failure to
// enumerate the store itself (i.e. a connectivity problem)
// produces an error.
func (idx *Indexer) ReindexAll(ctx context.Context) (ReindexResult, error) {
	objects, err := idx.store.List(ctx)
	if err != nil {
		return ReindexResult{}, fmt.Errorf("failed to reindex: %w", err)
	}
	ans := ReindexResult{
		Indexed: []string{},
		Skipped: []string{},
	}
	for _, obj := range objects {
		if err := idx.indexObject(ctx, obj.Name); err != nil {
			log.Error().Err(err).Str("object", obj.Name).Msg("failed to index object, skipping")
			ans.Skipped = append(ans.Skipped, obj.Name)
			continue
		}
		ans.Indexed = append(ans.Indexed, obj.Name)
	}
	log.Info().
		Int("numIndexed", len(ans.Indexed)).
		Int("numSkipped", len(ans.Skipped)).
		Msg("finished object store sweep")
	return ans, nil
}

func (idx *Indexer) indexObject(ctx context.Context, name string) error {
	info, err := idx.store.Stat(ctx, name)
	if err != nil {
		return err
	}
	data, err := idx.store.Get(ctx, name)
	if err != nil {
		return err
	}
	raw, err := extraction.Extract(data, name)
	if err != nil {
		return err
	}
	doc := extraction.Normalize(raw, name)
	doc[extraction.FieldDate] = info.LastModified.UTC().Format(time.RFC3339)
	return idx.Upsert(name, doc)
}

// IndexDocument indexes an ad-hoc metadata document submitted
// via API. Fields with empty keys are dropped first; if nothing
// remains, ErrEmptyDocument is returned. The document is stored
// under its `filename` field or, if the field is missing, under
// a generated identifier which is returned to the caller.
func (idx *Indexer) IndexDocument(doc map[string]string) (string, error) {
	clean := make(extraction.Metadata, len(doc))
	for k, v := range doc {
		if strings.TrimSpace(k) == "" {
			continue
		}
		clean[k] = v
	}
	if len(clean) == 0 {
		return "", ErrEmptyDocument
	}
	id := clean[extraction.FieldFilename]
	if id == "" {
		id = uuid.New().String()
	}
	if err := idx.Upsert(id, clean); err != nil {
		return "", err
	}
	return id, nil
}

// Upsert writes a normalized metadata document to the index,
// replacing any previous document stored under the same id.
func (idx *Indexer) Upsert(id string, doc extraction.Metadata) error {
	if err := idx.bleveIdx.Index(id, map[string]string(doc)); err != nil {
		return fmt.Errorf("failed to index document %s: %w", id, err)
	}
	log.Debug().Str("id", id).Msg("indexed document")
	return nil
}

// Count returns the total number of documents in the index.
func (idx *Indexer) Count() (uint64, error) {
	return idx.bleveIdx.DocCount()
}

// Index exposes the underlying Bleve index for search.
func (idx *Indexer) Index() bleve.Index {
	return idx.bleveIdx
}

// Stop closes the underlying index.
func (idx *Indexer) Stop(ctx context.Context) error {
	return idx.bleveIdx.Close()
}

func NewIndexer(conf *Conf, store storage.ObjectStore) (*Indexer, error) {
	if conf.IndexDirPath == MemoryIndex {
		mapping, err := CreateMapping()
		if err != nil {
			return nil, err
		}
		bleveIdx, err := bleve.NewMemOnly(mapping)
		if err != nil {
			return nil, fmt.Errorf("failed to create memory index: %w", err)
		}
		return &Indexer{conf: conf, store: store, bleveIdx: bleveIdx}, nil
	}
	bleveIdx, err := bleve.Open(conf.IndexDirPath)
	if err == bleve.ErrorIndexMetaMissing || err == bleve.ErrorIndexPathDoesNotExist {
		mapping, err := CreateMapping()
		if err != nil {
			return nil, err
		}
		bleveIdx, err = bleve.New(conf.IndexDirPath, mapping)
		if err != nil {
			return nil, fmt.Errorf("failed to create new index: %w", err)
		}
		return &Indexer{conf: conf, store: store, bleveIdx: bleveIdx}, nil

	} else if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	return &Indexer{
		conf:     conf,
		store:    store,
		bleveIdx: bleveIdx,
	}, nil
}
