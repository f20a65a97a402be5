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
	"fmt"
	"net/http"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"docdex/cnf"
	"docdex/indexer"
	"docdex/search"
	"docdex/storage"
)

type apiServer struct {
	server   *http.Server
	conf     *cnf.Conf
	version  VersionInfo
	store    storage.ObjectStore
	tags     *storage.TagReader
	cache    storage.TagCache
	idx      *indexer.Indexer
	fulltext *search.Service
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.LogLevel.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	handler := Actions{
		version: api.version,
		store:   api.store,
		idx:     api.idx,
	}
	engine.GET("/overview", handler.Overview)

	indexerHandler := indexer.NewActions(api.idx)
	engine.GET("/indexer/reindex", indexerHandler.ReindexAll)
	engine.POST("/indexer/document", indexerHandler.IndexDocument)

	searchHandler := search.NewActions(api.fulltext)
	engine.GET("/search/documents", searchHandler.FilteredSearch)
	engine.GET("/search/combined", searchHandler.CombinedSearch)
	engine.GET("/search/tags", searchHandler.TagSearch)

	repoHandler := storage.NewActions(api.store, api.tags, api.cache)
	engine.GET("/repository/files", repoHandler.ListFiles)
	engine.GET("/repository/files-with-tags", repoHandler.ListFilesWithTags)
	engine.GET("/repository/file/:name", repoHandler.DownloadFile)
	engine.POST("/repository/file/:name", repoHandler.UploadFile)
	engine.PUT("/repository/file/:name/tags", repoHandler.SetTags)
	engine.GET("/repository/metadata", searchHandler.Metadata)
	engine.GET("/repository/description", searchHandler.Description)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (api *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down http api server")
	return api.server.Shutdown(ctx)
}
