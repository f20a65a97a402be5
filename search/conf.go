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

	"github.com/rs/zerolog/log"
)

const dfltPageSize = 100

// Conf contains configuration of the search service.
type Conf struct {

	// PageSize caps the number of hits returned by a single
	// search request.
	PageSize int `json:"pageSize"`
}

func (conf *Conf) ValidateAndDefaults() error {
	if conf == nil {
		return fmt.Errorf("missing `search` section")
	}
	if conf.PageSize <= 0 {
		conf.PageSize = dfltPageSize
		log.Warn().
			Int("value", conf.PageSize).
			Msg("search pageSize not specified, using default")
	}
	return nil
}
