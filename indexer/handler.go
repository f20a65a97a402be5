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

package indexer

import (
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type Actions struct {
	indexer *Indexer
}

// ReindexAll handles a request for a full sweep over the object
// store. The sweep runs synchronously so the response already
// reflects the new index contents.
func (a *Actions) ReindexAll(ctx *gin.Context) {
	result, err := a.indexer.ReindexAll(ctx.Request.Context())
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	count, err := a.indexer.Count()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	resp := map[string]any{
		"files":          result.Indexed,
		"skipped":        result.Skipped,
		"totalDocuments": count,
	}
	uniresp.WriteJSONResponse(ctx.Writer, resp)
}

// IndexDocument handles submission of an ad-hoc metadata document.
func (a *Actions) IndexDocument(ctx *gin.Context) {
	var doc map[string]string
	if err := ctx.BindJSON(&doc); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	id, err := a.indexer.IndexDocument(doc)
	if err == ErrEmptyDocument {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return

	} else if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"id": id})
}

func NewActions(indexer *Indexer) *Actions {
	return &Actions{indexer: indexer}
}
