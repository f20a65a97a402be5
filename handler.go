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
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"docdex/indexer"
	"docdex/storage"
)

type Actions struct {
	version VersionInfo
	store   storage.ObjectStore
	idx     *indexer.Indexer
}

// Overview provides basic runtime information - version and
// the sizes of the two data stores the service keeps in sync.
func (a *Actions) Overview(ctx *gin.Context) {
	count, err := a.idx.Count()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	objects, err := a.store.List(ctx.Request.Context())
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	ans := map[string]any{
		"version":          a.version,
		"indexedDocuments": count,
		"storedObjects":    len(objects),
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
