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
	"fmt"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/fs"
)

// MemoryIndex is a special value of IndexDirPath which makes
// the indexer keep its data in memory only. This is intended
// mostly for testing.
const MemoryIndex = ":memory:"

// Conf contains indexer's configuration as obtained
// from a JSON file (or chunk). Please note that the
// instance should be treated as ready only after
// ValidateAndDefaults is called. Otherwise, it may
// provide incorrect or inconsistent data.
type Conf struct {

	// IndexDirPath specifies a directory where Bleve stores
	// its fulltext index data. The directory itself is created
	// by the indexer but its parent must exist.
	IndexDirPath string `json:"indexDirPath"`
}

func (conf *Conf) ValidateAndDefaults() error {
	if conf == nil {
		return fmt.Errorf("missing `indexer` section")
	}
	if conf.IndexDirPath == "" {
		return fmt.Errorf("missing path to index dir (indexDirPath)")
	}
	if conf.IndexDirPath == MemoryIndex {
		return nil
	}
	parent := filepath.Dir(conf.IndexDirPath)
	isDir, err := fs.IsDir(parent)
	if err != nil {
		return err

	} else if !isDir {
		return fmt.Errorf("parent directory of indexDirPath does not exist")
	}
	return nil
}
