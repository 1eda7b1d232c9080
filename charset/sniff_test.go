package charset

import (
	"io"
	"testing"
)

// replayReader is a minimal MarkResetReader over an in-memory byte slice.
type replayReader struct {
	data []byte
	pos  int
	mark int
}

func (r *replayReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *replayReader) Mark(capacity int)  { r.mark = r.pos }
func (r *replayReader) ResetToMark() error { r.pos = r.mark; return nil }

func TestSniffBOM(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"utf-8 BOM", []byte{0xEF, 0xBB, 0xBF, '<', 'p', '>'}, "utf-8"},
		{"utf-16be BOM", []byte{0xFE, 0xFF, 0x00, '<'}, "utf-16be"},
		{"utf-16le BOM", []byte{0xFF, 0xFE, '<', 0x00}, "utf-16le"},
		{"no BOM", []byte("<html>"), ""},
		{"short input", []byte{0xEF}, ""},
		{"empty input", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &replayReader{data: tt.data}
			got, err := SniffBOM(src)
			if err != nil {
				t.Fatalf("SniffBOM() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("SniffBOM() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSniffBOMRestoresPosition(t *testing.T) {
	data := []byte{0xEF, 0xBB, 0xBF, 'a', 'b', 'c'}
	src := &replayReader{data: data}
	if _, err := SniffBOM(src); err != nil {
		t.Fatalf("SniffBOM() error: %v", err)
	}
	rest, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("reading after sniff: %v", err)
	}
	if string(rest) != string(data) {
		t.Errorf("bytes after sniff = %q, want %q", rest, data)
	}
}

func TestSniffXMLDeclaration(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected string
	}{
		{
			"declared encoding",
			`<?xml version="1.0" encoding="UTF-16"?><doc/>`,
			"UTF-16",
		},
		{
			"single quoted",
			`<?xml version='1.0' encoding='ISO-8859-1'?><doc/>`,
			"ISO-8859-1",
		},
		{
			"no encoding attribute",
			`<?xml version="1.0"?><doc/>`,
			"",
		},
		{
			"no declaration",
			`<doc encoding="trap"/>`,
			"",
		},
		{
			"declaration not at start",
			` <?xml version="1.0" encoding="UTF-8"?>`,
			"",
		},
		{
			"BOM before declaration",
			"\xef\xbb\xbf<?xml version=\"1.0\" encoding=\"UTF-8\"?><doc/>",
			"UTF-8",
		},
		{
			"encoding outside declaration",
			`<?xml version="1.0"?><doc encoding="trap"/>`,
			"",
		},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &replayReader{data: []byte(tt.data)}
			got, err := SniffXMLDeclaration(src)
			if err != nil {
				t.Fatalf("SniffXMLDeclaration() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("SniffXMLDeclaration() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSniffXMLDeclarationRestoresPosition(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?><doc>body</doc>`
	src := &replayReader{data: []byte(data)}
	if _, err := SniffXMLDeclaration(src); err != nil {
		t.Fatalf("SniffXMLDeclaration() error: %v", err)
	}
	rest, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("reading after sniff: %v", err)
	}
	if string(rest) != data {
		t.Errorf("bytes after sniff = %q, want %q", rest, data)
	}
}
