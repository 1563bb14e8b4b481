package documents

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/margdarshak/career-api/internal/models"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body +
			`</w:body></w:document>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        string
	}{
		{"declared pdf", "cv", "application/pdf", MimePDF},
		{"declared text with charset", "cv", "text/plain; charset=utf-8", MimePlainText},
		{"octet stream falls back to extension", "CV.DOCX", "application/octet-stream", MimeDOCX},
		{"missing type uses extension", "notes.md", "", MimeMarkdown},
		{"unknown", "cv.odt", "application/vnd.oasis.opendocument.text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectType(tt.filename, tt.contentType))
		})
	}
}

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText(models.ResumeUpload{
		Filename:    "cv.txt",
		ContentType: "text/plain",
		Data:        []byte("  Jane Doe\nGo developer  \n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", text)
}

func TestExtractText_Docx(t *testing.T) {
	data := buildDocx(t,
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Skills: Go &amp; SQL</w:t></w:r></w:p>`)

	text, err := ExtractText(models.ResumeUpload{Filename: "cv.docx", ContentType: MimeDOCX, Data: data})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Go & SQL", text)
}

func TestExtractText_Errors(t *testing.T) {
	tests := []struct {
		name   string
		upload models.ResumeUpload
	}{
		{"unsupported type", models.ResumeUpload{Filename: "cv.png", ContentType: "image/png", Data: []byte{0x89}}},
		{"empty text", models.ResumeUpload{Filename: "cv.txt", ContentType: "text/plain", Data: []byte("   \n")}},
		{"corrupt pdf", models.ResumeUpload{Filename: "cv.pdf", ContentType: MimePDF, Data: []byte("not a pdf")}},
		{"corrupt docx", models.ResumeUpload{Filename: "cv.docx", ContentType: MimeDOCX, Data: []byte("not a zip")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractText(tt.upload)
			require.Error(t, err)

			var vErr *models.ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}
