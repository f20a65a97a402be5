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

// Package storage provides access to the document object store (MinIO)
// and to the Redis-backed cache of per-object tag sets.
package storage

import (
	"context"
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes one stored object as reported by the object store.
type ObjectInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	ETag         string    `json:"etag"`
}

// ObjectStore is the object store contract the indexing and search
// pipelines depend on. The production implementation is MinioAdapter;
// tests use DummyStore.
type ObjectStore interface {
	// List returns info for every object in the bucket, recursively.
	List(ctx context.Context) ([]ObjectInfo, error)

	// Get fetches the full contents of one object.
	Get(ctx context.Context, name string) ([]byte, error)

	// Stat fetches object info without the contents.
	Stat(ctx context.Context, name string) (ObjectInfo, error)

	// GetTags returns the object's native tag set. An untagged object
	// yields an empty map, not an error.
	GetTags(ctx context.Context, name string) (map[string]string, error)

	// SetTags replaces the object's tag set.
	SetTags(ctx context.Context, name string, tags map[string]string) error

	// Put uploads an object, overwriting any previous version.
	Put(ctx context.Context, name string, data []byte, contentType string) (ObjectInfo, error)
}
