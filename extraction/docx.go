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
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const docxDocumentEntry = "word/document.xml"

// extractDOCX reads the paragraphs of word/document.xml and feeds them,
// one per line, to the text line rule.
func extractDOCX(data []byte) (Metadata, error) {
	paragraphs, err := docxParagraphs(data)
	if err != nil {
		return nil, err
	}
	return ParseTextMetadata(strings.Join(paragraphs, "\n")), nil
}

// docxParagraphs walks the document XML token stream and collects the text
// of each w:p element. Character data outside paragraphs is ignored.
func docxParagraphs(data []byte) ([]string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx archive: %w", err)
	}

	var docFile *zip.File
	for _, f := range archive.File {
		if f.Name == docxDocumentEntry {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%s not found in docx archive", docxDocumentEntry)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", docxDocumentEntry, err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				current.Reset()
			}
		case xml.CharData:
			if inParagraph {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				paragraphs = append(paragraphs, current.String())
			}
		}
	}
	return paragraphs, nil
}
