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
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Actions struct {
	store ObjectStore
	tags  *TagReader
	cache TagCache
}

func (a *Actions) ListFiles(ctx *gin.Context) {
	objects, err := a.store.List(ctx)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	files := make([]string, 0, len(objects))
	for _, obj := range objects {
		files = append(files, obj.Name)
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"files": files})
}

func (a *Actions) ListFilesWithTags(ctx *gin.Context) {
	objects, err := a.store.List(ctx)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	ans := make(map[string]map[string]string, len(objects))
	for _, obj := range objects {
		tags, err := a.tags.Tags(ctx, obj.Name)
		if err != nil {
			log.Warn().Err(err).Str("object", obj.Name).Msg("failed to fetch tags, skipping")
			ans[obj.Name] = map[string]string{}
			continue
		}
		ans[obj.Name] = tags
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func (a *Actions) DownloadFile(ctx *gin.Context) {
	name := ctx.Param("name")
	data, err := a.store.Get(ctx, name)
	if errors.Is(err, ErrObjectNotFound) {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return
	}
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	ctx.Data(http.StatusOK, "application/octet-stream", data)
}

func (a *Actions) UploadFile(ctx *gin.Context) {
	name := ctx.Param("name")
	data, err := ctx.GetRawData()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("empty request body"), http.StatusBadRequest)
		return
	}
	contentType := ctx.ContentType()
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	info, err := a.store.Put(ctx, name, data, contentType)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	// optional tags, repeated `tag=key=value` parameters
	tags := make(map[string]string)
	for _, t := range ctx.QueryArray("tag") {
		key, value, ok := strings.Cut(t, "=")
		if !ok || key == "" {
			uniresp.RespondWithErrorJSON(
				ctx, fmt.Errorf("invalid tag %s (expected key=value)", t), http.StatusBadRequest)
			return
		}
		tags[key] = value
	}
	if len(tags) > 0 {
		if err := a.store.SetTags(ctx, name, tags); err != nil {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
			return
		}
		a.cache.Invalidate(ctx, name)
	}
	uniresp.WriteJSONResponse(ctx.Writer, info)
}

func (a *Actions) SetTags(ctx *gin.Context) {
	name := ctx.Param("name")
	var tags map[string]string
	if err := ctx.BindJSON(&tags); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if err := a.store.SetTags(ctx, name, tags); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrObjectNotFound) {
			status = http.StatusNotFound
		}
		uniresp.RespondWithErrorJSON(ctx, err, status)
		return
	}
	a.cache.Invalidate(ctx, name)
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"ok": true, "tags": tags})
}

func NewActions(store ObjectStore, tags *TagReader, cache TagCache) *Actions {
	return &Actions{store: store, tags: tags, cache: cache}
}
