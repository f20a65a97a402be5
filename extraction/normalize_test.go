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

package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLowercasesEverything(t *testing.T) {
	raw := Metadata{
		"Title":     "Digital Grenada",
		"Publisher": "GEA",
	}
	ans := Normalize(raw, "1 Digital Grenada.PDF")
	assert.Equal(t, "digital grenada", ans["title"])
	assert.Equal(t, "gea", ans["publisher"])
	assert.Equal(t, "1 digital grenada.pdf", ans[FieldFilename])
}

func TestNormalizeDefaultsToUnknown(t *testing.T) {
	ans := Normalize(Metadata{}, "empty.docx")
	assert.Equal(t, UnknownValue, ans[FieldStatus])
	assert.Equal(t, UnknownValue, ans[FieldLanguage])
	assert.Equal(t, "empty.docx", ans[FieldFilename])
}

func TestNormalizeDerivesStatusAndLanguage(t *testing.T) {
	raw := Metadata{
		"Present Status": "Approved",
		"Language":       "English",
	}
	ans := Normalize(raw, "doc.pdf")
	assert.Equal(t, "approved", ans[FieldStatus])
	assert.Equal(t, "english", ans[FieldLanguage])
}

func TestNormalizeDropsEmptyKeys(t *testing.T) {
	raw := Metadata{
		"  ":    "orphan",
		"Owner": "GEA",
	}
	ans := Normalize(raw, "doc.pdf")
	_, hasEmpty := ans[""]
	assert.False(t, hasEmpty)
	assert.Equal(t, "gea", ans["owner"])
}

func TestNormalizeSplitsCompositeVersionField(t *testing.T) {
	raw := Metadata{
		CompositeVersionField: "Version 2.1, March 2021",
	}
	ans := Normalize(raw, "doc.pdf")
	assert.Equal(t, "version 2.1", ans["document version"])
	assert.Equal(t, "march", ans["month"])
	assert.Equal(t, "2021", ans["year"])
	_, kept := ans[strings.ToLower(CompositeVersionField)]
	assert.False(t, kept)
}

func TestNormalizeCompositeVersionPassThrough(t *testing.T) {
	raw := Metadata{
		CompositeVersionField: "not a version string",
	}
	ans := Normalize(raw, "doc.pdf")
	assert.Equal(t, "not a version string", ans[strings.ToLower(CompositeVersionField)])
	_, split := ans["month"]
	assert.False(t, split)
}
