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
	"errors"
	"sort"
	"time"
)

// DummyObject is one entry of a DummyStore.
type DummyObject struct {
	Data         []byte
	LastModified time.Time
	ETag         string
	Tags         map[string]string

	// Broken makes Get fail for this object, simulating a fetch error
	// during a sweep.
	Broken bool
}

// DummyStore is an in-memory ObjectStore for tests.
type DummyStore struct {
	Objects map[string]*DummyObject

	// TagErrors lists objects whose GetTags call should fail.
	TagErrors map[string]bool
}

func (ds *DummyStore) info(name string, obj *DummyObject) ObjectInfo {
	return ObjectInfo{
		Name:         name,
		Size:         int64(len(obj.Data)),
		LastModified: obj.LastModified,
		ETag:         obj.ETag,
	}
}

func (ds *DummyStore) List(ctx context.Context) ([]ObjectInfo, error) {
	names := make([]string, 0, len(ds.Objects))
	for name := range ds.Objects {
		names = append(names, name)
	}
	sort.Strings(names)
	ans := make([]ObjectInfo, 0, len(names))
	for _, name := range names {
		ans = append(ans, ds.info(name, ds.Objects[name]))
	}
	return ans, nil
}

func (ds *DummyStore) Get(ctx context.Context, name string) ([]byte, error) {
	obj, ok := ds.Objects[name]
	if !ok {
		return nil, ErrObjectNotFound
	}
	if obj.Broken {
		return nil, errors.New("simulated fetch failure")
	}
	return obj.Data, nil
}

func (ds *DummyStore) Stat(ctx context.Context, name string) (ObjectInfo, error) {
	obj, ok := ds.Objects[name]
	if !ok {
		return ObjectInfo{}, ErrObjectNotFound
	}
	return ds.info(name, obj), nil
}

func (ds *DummyStore) GetTags(ctx context.Context, name string) (map[string]string, error) {
	if ds.TagErrors[name] {
		return nil, errors.New("simulated tag failure")
	}
	obj, ok := ds.Objects[name]
	if !ok {
		return nil, ErrObjectNotFound
	}
	if obj.Tags == nil {
		return map[string]string{}, nil
	}
	return obj.Tags, nil
}

func (ds *DummyStore) SetTags(ctx context.Context, name string, tags map[string]string) error {
	obj, ok := ds.Objects[name]
	if !ok {
		return ErrObjectNotFound
	}
	obj.Tags = tags
	return nil
}

func (ds *DummyStore) Put(ctx context.Context, name string, data []byte, contentType string) (ObjectInfo, error) {
	obj := &DummyObject{Data: data, LastModified: time.Now()}
	if ds.Objects == nil {
		ds.Objects = make(map[string]*DummyObject)
	}
	ds.Objects[name] = obj
	return ds.info(name, obj), nil
}

func NewDummyStore() *DummyStore {
	return &DummyStore{
		Objects:   make(map[string]*DummyObject),
		TagErrors: make(map[string]bool),
	}
}
