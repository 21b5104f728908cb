package loader

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// loadDOCX extracts paragraph text from the word/document.xml part of a
// DOCX archive. Only text runs are kept; formatting, tables structure and
// embedded objects are ignored.
func loadDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening DOCX archive: %w", err)
	}
	defer archive.Close()

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("DOCX archive has no word/document.xml part")
	}

	r, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("opening document part: %w", err)
	}
	defer r.Close()

	return extractDocumentText(r)
}

// extractDocumentText walks the WordprocessingML token stream, collecting
// character data inside <w:t> runs and inserting a newline at each
// paragraph end.
func extractDocumentText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		b      strings.Builder
		inText bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding document part: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return strings.TrimSpace(b.String()), nil
}
