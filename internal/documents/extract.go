// Package documents turns uploaded resume files into plain text.
package documents

import (
	"bytes"
	"fmt"
	"html"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/margdarshak/career-api/internal/models"
)

// Supported content types
const (
	MimePlainText = "text/plain"
	MimeMarkdown  = "text/markdown"
	MimePDF       = "application/pdf"
	MimeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var extensionTypes = map[string]string{
	".txt":  MimePlainText,
	".md":   MimeMarkdown,
	".pdf":  MimePDF,
	".docx": MimeDOCX,
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
	blankLines   = regexp.MustCompile(`\n{3,}`)
)

// DetectType resolves the content type of an upload. A declared type that is
// missing or generic falls back to the file extension.
func DetectType(filename, contentType string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case MimePlainText, MimeMarkdown, MimePDF, MimeDOCX:
			return mediaType
		}
	}
	return extensionTypes[strings.ToLower(filepath.Ext(filename))]
}

// ExtractText returns the readable text of an uploaded resume. Unsupported,
// unreadable and empty documents are reported as *models.ValidationError.
func ExtractText(upload models.ResumeUpload) (string, error) {
	var (
		text string
		err  error
	)

	switch kind := DetectType(upload.Filename, upload.ContentType); kind {
	case MimePlainText, MimeMarkdown:
		text = string(upload.Data)
	case MimePDF:
		text, err = extractPDFText(upload.Data)
	case MimeDOCX:
		text, err = extractDocxText(upload.Data)
	default:
		return "", models.NewValidationError("unsupported file type: %s", upload.ContentType)
	}
	if err != nil {
		return "", &models.ValidationError{Message: err.Error()}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", models.NewValidationError("resume contains no readable text")
	}
	return text, nil
}

func extractPDFText(data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	return blankLines.ReplaceAllString(content, "\n\n"), nil
}
