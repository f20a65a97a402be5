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

package search

import (
	"fmt"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type Actions struct {
	service *Service
}

// FilteredSearch handles filtered document search. Filter values
// come as query parameters named after the Fields registry.
func (a *Actions) FilteredSearch(ctx *gin.Context) {
	filters := make(Filters)
	for _, f := range Fields {
		if v := ctx.Query(f.Param); v != "" {
			filters[f.Param] = v
		}
	}
	files, err := a.service.FilteredSearch(filters)
	if err == ErrNoFilters {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return

	} else if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"filenames": files})
}

// CombinedSearch handles free-text search over the index
// combined with tag matching against the object store.
func (a *Actions) CombinedSearch(ctx *gin.Context) {
	token := ctx.Query("q")
	if token == "" {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("missing query token (q)"), http.StatusBadRequest)
		return
	}
	result, err := a.service.CombinedSearch(ctx.Request.Context(), token)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// TagSearch handles exact tag key/value lookup against the
// object store.
func (a *Actions) TagSearch(ctx *gin.Context) {
	key := ctx.Query("key")
	value := ctx.Query("value")
	if key == "" || value == "" {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("missing tag key or value"), http.StatusBadRequest)
		return
	}
	matches, err := a.service.TagSearch(ctx.Request.Context(), key, value)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"files": matches})
}

// Metadata returns the full stored metadata record of one document.
func (a *Actions) Metadata(ctx *gin.Context) {
	filename := ctx.Query("filename")
	if filename == "" {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("missing filename"), http.StatusBadRequest)
		return
	}
	rec, err := a.service.RecordByFilename(filename)
	if err == ErrDocumentNotFound {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return

	} else if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, rec)
}

// Description returns the `brief description` field of one document.
func (a *Actions) Description(ctx *gin.Context) {
	filename := ctx.Query("filename")
	if filename == "" {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("missing filename"), http.StatusBadRequest)
		return
	}
	desc, err := a.service.DescriptionByFilename(filename)
	if err == ErrDocumentNotFound {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return

	} else if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"description": desc})
}

func NewActions(service *Service) *Actions {
	return &Actions{service: service}
}
