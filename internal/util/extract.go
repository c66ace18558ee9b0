package util

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/fadilmartias/submitme/internal/model"
	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

const unsupportedFormatMessage = "Invalid file format. Only PDF and DOCX are supported."

// ExtractText picks the extractor from the file extension. The result may be
// empty; deciding whether that is usable is up to the caller.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return ExtractPDFText(data)
	case ".docx":
		return ExtractDOCXText(data)
	default:
		return "", UnsupportedFormatError()
	}
}

// UnsupportedFormatError is the client error reported for any file that is
// neither PDF nor DOCX.
func UnsupportedFormatError() error {
	return model.NewClientInputError(unsupportedFormatMessage, model.ErrUnsupportedFormat)
}

// IsSupportedFile reports whether ExtractText accepts filename.
func IsSupportedFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

// ExtractPDFText reads the text layer page by page through MuPDF and falls
// back to the pure Go reader when MuPDF cannot open the document.
func ExtractPDFText(data []byte) (string, error) {
	text, fitzErr := extractWithFitz(data)
	if fitzErr == nil {
		return text, nil
	}

	text, err := extractWithPDFReader(data)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", errors.Join(fitzErr, err))
	}
	return text, nil
}

func extractWithFitz(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("mupdf open: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("mupdf page %d: %w", n+1, err)
		}
		pages = append(pages, strings.TrimRight(pageText, "\n"))
	}

	return strings.Join(pages, "\n"), nil
}

func extractWithPDFReader(data []byte) (text string, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader open: %w", err)
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}

// ExtractDOCXText returns the document's paragraphs separated by newlines.
func ExtractDOCXText(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	return strings.TrimSpace(text), nil
}
