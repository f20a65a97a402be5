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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"docdex/cnf"
	"docdex/indexer"
	"docdex/search"
	"docdex/storage"
)

var (
	version   string
	buildDate string
	gitCommit string
)

type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func runService(conf *cnf.Conf, version VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewMinioAdapter(conf.Minio)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to object store")
	}
	var cache storage.TagCache = storage.NullTagCache{}
	if conf.Redis != nil {
		cache = storage.NewRedisTagCache(conf.Redis)
	}
	tags := storage.NewTagReader(store, cache)

	idx, err := indexer.NewIndexer(conf.Indexer, store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open index")
	}

	// the index must reflect the bucket contents before we
	// start answering queries
	result, err := idx.ReindexAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("startup reindex failed")
	}
	log.Info().
		Int("numIndexed", len(result.Indexed)).
		Int("numSkipped", len(result.Skipped)).
		Msg("startup reindex finished")

	fulltext := search.NewService(conf.Search, idx.Index(), store, tags)

	srv := &apiServer{
		conf:     conf,
		version:  version,
		store:    store,
		tags:     tags,
		cache:    cache,
		idx:      idx,
		fulltext: fulltext,
	}
	srv.Start(ctx)

	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down api server")
	}
	if err := idx.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close index")
	}
}

func main() {
	version := VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Docdex - document metadata extraction and search\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] start [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("docdex %s\nbuild date: %s\nlast commit: %s\n",
			version.Version, version.BuildDate, version.GitCommit)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.LogFile, conf.LogLevel)
	log.Info().Msg("Starting Docdex")
	cnf.ValidateAndDefaults(conf)

	switch action {
	case "start":
		runService(conf, version)
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
