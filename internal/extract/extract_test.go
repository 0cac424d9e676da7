package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestTextPlain(t *testing.T) {
	got, err := Text("notes.txt", []byte("plain rubric content"))
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if got != "plain rubric content" {
		t.Errorf("got %q", got)
	}
}

func TestTextUnknownExtensionTreatedAsPlain(t *testing.T) {
	got, err := Text("README", []byte("no extension here"))
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if got != "no extension here" {
		t.Errorf("got %q", got)
	}
}

func TestTextInvalidUTF8(t *testing.T) {
	_, err := Text("binary.txt", []byte{0xff, 0xfe, 0x00, 0x01})
	if err == nil {
		t.Fatal("expected error for non-UTF-8 content")
	}
	if !strings.Contains(err.Error(), "could not process binary.txt") {
		t.Errorf("error = %q, want file name in message", err)
	}
}

func TestTextMalformedPDF(t *testing.T) {
	_, err := Text("paper.pdf", []byte("this is not a pdf"))
	if err == nil {
		t.Fatal("expected error for malformed PDF")
	}
	if !strings.Contains(err.Error(), "could not process paper.pdf") {
		t.Errorf("error = %q, want file name in message", err)
	}
}

func TestTextDOCX(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	got, err := Text("essay.docx", buildDOCX(t, body))
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	want := "First paragraph. Second paragraph."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextDOCXMissingBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<styles/>")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	_, err = Text("essay.docx", buf.Bytes())
	if err == nil {
		t.Fatal("expected error for DOCX without document body")
	}
}

func TestTextDOCXNotAnArchive(t *testing.T) {
	_, err := Text("essay.docx", []byte("not a zip at all"))
	if err == nil {
		t.Fatal("expected error for non-archive DOCX")
	}
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
