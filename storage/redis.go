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
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TagCache caches per-object tag sets so full-bucket tag scans do not hit
// the object store once per object on every request. A cache failure is
// never fatal - it only means a round trip to the store.
type TagCache interface {
	Get(ctx context.Context, name string) (map[string]string, bool)
	Set(ctx context.Context, name string, tags map[string]string)
	Invalidate(ctx context.Context, name string)
}

// ----

type RedisTagCache struct {
	conf  *RedisConf
	redis *redis.Client
}

func (tc *RedisTagCache) String() string {
	return fmt.Sprintf(
		"RedisTagCache, address %s:%d, db %d", tc.conf.Host, tc.conf.Port, tc.conf.DB)
}

func (tc *RedisTagCache) key(name string) string {
	return "docdex:tags:" + name
}

func (tc *RedisTagCache) Get(ctx context.Context, name string) (map[string]string, bool) {
	cmd := tc.redis.Get(ctx, tc.key(name))
	if cmd.Err() == redis.Nil {
		return nil, false
	}
	if cmd.Err() != nil {
		log.Warn().Err(cmd.Err()).Str("object", name).Msg("failed to read tag cache entry")
		return nil, false
	}
	var tags map[string]string
	if err := json.Unmarshal([]byte(cmd.Val()), &tags); err != nil {
		log.Warn().Err(err).Str("object", name).Msg("failed to decode tag cache entry")
		return nil, false
	}
	return tags, true
}

func (tc *RedisTagCache) Set(ctx context.Context, name string, tags map[string]string) {
	data, err := json.Marshal(tags)
	if err != nil {
		log.Warn().Err(err).Str("object", name).Msg("failed to encode tag cache entry")
		return
	}
	if cmd := tc.redis.Set(ctx, tc.key(name), data, tc.conf.TagCacheTTL()); cmd.Err() != nil {
		log.Warn().Err(cmd.Err()).Str("object", name).Msg("failed to write tag cache entry")
	}
}

func (tc *RedisTagCache) Invalidate(ctx context.Context, name string) {
	if cmd := tc.redis.Del(ctx, tc.key(name)); cmd.Err() != nil {
		log.Warn().Err(cmd.Err()).Str("object", name).Msg("failed to drop tag cache entry")
	}
}

func NewRedisTagCache(conf *RedisConf) *RedisTagCache {
	return &RedisTagCache{
		conf: conf,
		redis: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
	}
}

// ----

// NullTagCache is used when no `redis` section is configured.
type NullTagCache struct{}

func (NullTagCache) Get(ctx context.Context, name string) (map[string]string, bool) {
	return nil, false
}

func (NullTagCache) Set(ctx context.Context, name string, tags map[string]string) {}

func (NullTagCache) Invalidate(ctx context.Context, name string) {}

// ----

// TagReader serves tag sets, going through the cache when one is enabled.
type TagReader struct {
	store ObjectStore
	cache TagCache
}

func (tr *TagReader) Tags(ctx context.Context, name string) (map[string]string, error) {
	if tags, ok := tr.cache.Get(ctx, name); ok {
		return tags, nil
	}
	tags, err := tr.store.GetTags(ctx, name)
	if err != nil {
		return nil, err
	}
	tr.cache.Set(ctx, name, tags)
	return tags, nil
}

func NewTagReader(store ObjectStore, cache TagCache) *TagReader {
	return &TagReader{store: store, cache: cache}
}
