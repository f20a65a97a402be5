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

package cnf

import (
	"encoding/json"
	"os"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"docdex/indexer"
	"docdex/search"
	"docdex/storage"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltServerReadTimeoutSecs  = 30
)

// Conf is a top-level configuration of the docdex service.
// It is loaded from a single JSON file whose sections map
// to the individual packages' Conf types.
type Conf struct {
	ListenAddress          string `json:"listenAddress"`
	ListenPort             int    `json:"listenPort"`
	ServerReadTimeoutSecs  int    `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int    `json:"serverWriteTimeoutSecs"`

	LogFile  string           `json:"logFile"`
	LogLevel logging.LogLevel `json:"logLevel"`

	Minio *storage.MinioConf `json:"minio"`

	// Redis is optional. Without it, object tags are read
	// from the object store on each request.
	Redis *storage.RedisConf `json:"redis"`

	Indexer *indexer.Conf `json:"indexer"`

	Search *search.Conf `json:"search"`

	srcPath string
}

// GetSourcePath returns the path of the JSON file the
// configuration was loaded from.
func (conf *Conf) GetSourcePath() string {
	return conf.srcPath
}

// LoadConfig reads and unmarshals the configuration. Any
// failure here means the service cannot run at all, so the
// function does not bother with error returns.
func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	var conf Conf
	if err := json.Unmarshal(rawData, &conf); err != nil {
		log.Fatal().Err(err).Msg("cannot parse config")
	}
	conf.srcPath = path
	return &conf
}

// ValidateAndDefaults checks the top-level values and delegates
// to the sections' own validation. Invalid configuration is
// fatal.
func ValidateAndDefaults(conf *Conf) {
	if conf.ListenPort == 0 {
		log.Fatal().Msg("missing listenPort")
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().
			Int("value", conf.ServerReadTimeoutSecs).
			Msg("serverReadTimeoutSecs not specified, using default")
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().
			Int("value", conf.ServerWriteTimeoutSecs).
			Msg("serverWriteTimeoutSecs not specified, using default")
	}
	if err := conf.Minio.ValidateAndDefaults(); err != nil {
		log.Fatal().Err(err).Msg("invalid `minio` configuration")
	}
	if err := conf.Redis.ValidateAndDefaults(); err != nil {
		log.Fatal().Err(err).Msg("invalid `redis` configuration")
	}
	if err := conf.Indexer.ValidateAndDefaults(); err != nil {
		log.Fatal().Err(err).Msg("invalid `indexer` configuration")
	}
	if conf.Search == nil {
		conf.Search = &search.Conf{}
	}
	if err := conf.Search.ValidateAndDefaults(); err != nil {
		log.Fatal().Err(err).Msg("invalid `search` configuration")
	}
}
