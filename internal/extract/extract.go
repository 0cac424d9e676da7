// Package extract converts uploaded documents to plain text. PDF and DOCX
// payloads are parsed by format; anything else is treated as UTF-8 text.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Text extracts the plain text of a document. The format is chosen by the
// file name's extension.
func Text(name string, content []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		text, err = fromPDF(content)
	case ".docx":
		text, err = fromDOCX(content)
	default:
		text, err = fromPlain(content)
	}
	if err != nil {
		return "", fmt.Errorf("could not process %s: %w", name, err)
	}
	return text, nil
}

func fromPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("parsing PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("reading PDF text: %w", err)
	}
	return buf.String(), nil
}

func fromPlain(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(content), nil
}
