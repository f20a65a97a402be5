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
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const dfltTagCacheTTLSecs = 300

// MinioConf configures the connection to the document bucket.
type MinioConf struct {
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"accessKey"`
	SecretKey string `json:"secretKey"`
	Bucket    string `json:"bucket"`
	Secure    bool   `json:"secure"`
}

func (conf *MinioConf) ValidateAndDefaults() error {
	if conf == nil {
		return fmt.Errorf("missing `minio` section")
	}
	if conf.Endpoint == "" {
		return fmt.Errorf("missing object store address (endpoint)")
	}
	if conf.AccessKey == "" || conf.SecretKey == "" {
		return fmt.Errorf("missing object store credentials (accessKey, secretKey)")
	}
	if conf.Bucket == "" {
		return fmt.Errorf("missing object store bucket name (bucket)")
	}
	return nil
}

// RedisConf configures the optional tag cache. A nil section disables
// caching (NullTagCache is used instead).
type RedisConf struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	DB              int    `json:"db"`
	Password        string `json:"password"`
	TagCacheTTLSecs int    `json:"tagCacheTtlSecs"`
}

func (conf *RedisConf) TagCacheTTL() time.Duration {
	return time.Duration(conf.TagCacheTTLSecs) * time.Second
}

func (conf *RedisConf) ValidateAndDefaults() error {
	if conf == nil {
		return nil
	}
	if conf.Host == "" {
		return fmt.Errorf("missing redis host")
	}
	if conf.Port == 0 {
		return fmt.Errorf("missing redis port")
	}
	if conf.TagCacheTTLSecs == 0 {
		conf.TagCacheTTLSecs = dfltTagCacheTTLSecs
		log.Warn().
			Int("value", conf.TagCacheTTLSecs).
			Msg("redis value `tagCacheTtlSecs` not set, using default")
	}
	return nil
}
