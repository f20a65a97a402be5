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

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapTagCache struct {
	entries map[string]map[string]string
	sets    int
}

func (mc *mapTagCache) Get(ctx context.Context, name string) (map[string]string, bool) {
	tags, ok := mc.entries[name]
	return tags, ok
}

func (mc *mapTagCache) Set(ctx context.Context, name string, tags map[string]string) {
	mc.entries[name] = tags
	mc.sets++
}

func (mc *mapTagCache) Invalidate(ctx context.Context, name string) {
	delete(mc.entries, name)
}

func TestTagReaderFillsCache(t *testing.T) {
	store := NewDummyStore()
	store.Objects["a.pdf"] = &DummyObject{Tags: map[string]string{"x": "y"}}
	cache := &mapTagCache{entries: make(map[string]map[string]string)}
	tr := NewTagReader(store, cache)

	tags, err := tr.Tags(context.Background(), "a.pdf")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"x": "y"}, tags)
	assert.Equal(t, 1, cache.sets)

	// second read must come from the cache
	store.TagErrors["a.pdf"] = true
	tags, err = tr.Tags(context.Background(), "a.pdf")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"x": "y"}, tags)
	assert.Equal(t, 1, cache.sets)
}

func TestTagReaderPropagatesStoreError(t *testing.T) {
	store := NewDummyStore()
	store.Objects["a.pdf"] = &DummyObject{}
	store.TagErrors["a.pdf"] = true
	tr := NewTagReader(store, NullTagCache{})

	_, err := tr.Tags(context.Background(), "a.pdf")
	assert.Error(t, err)
}

func TestNullTagCacheNeverHits(t *testing.T) {
	store := NewDummyStore()
	store.Objects["a.pdf"] = &DummyObject{Tags: map[string]string{"k": "v"}}
	tr := NewTagReader(store, NullTagCache{})

	tags, err := tr.Tags(context.Background(), "a.pdf")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "v"}, tags)
}
