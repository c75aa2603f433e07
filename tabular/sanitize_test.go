package tabular

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"
)

func TestSkipBOM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "file with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("NIT,RAZON_SOCIAL")...),
			expected: "NIT,RAZON_SOCIAL",
		},
		{
			name:     "file without BOM",
			input:    []byte("NIT,RAZON_SOCIAL"),
			expected: "NIT,RAZON_SOCIAL",
		},
		{
			name:     "empty file",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "partial BOM preserved",
			input:    []byte{0xEF, 0xBB, 'a'},
			expected: string([]byte{0xEF, 0xBB, 'a'}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := io.ReadAll(SkipBOM(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestSanitizingReader(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "valid ASCII",
			input:    []byte("NIT,RAZON_SOCIAL"),
			expected: "NIT,RAZON_SOCIAL",
		},
		{
			name:     "valid UTF-8 with accents",
			input:    []byte("notificación,año"),
			expected: "notificación,año",
		},
		{
			name:     "invalid single byte replaced",
			input:    []byte{'a', 0x80, 'b'},
			expected: "a?b",
		},
		{
			name:     "latin1 accent replaced",
			input:    []byte{'a', 0xF1, 'o'}, // Latin-1 enye pasted into UTF-8
			expected: "a?o",
		},
		{
			name:     "truncated sequence at end replaced",
			input:    []byte{'o', 'k', 0xC3},
			expected: "ok?",
		},
		{
			name:     "empty input",
			input:    []byte{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := io.ReadAll(NewSanitizingReader(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestSanitizingReaderSplitSequence(t *testing.T) {
	// One byte per read forces every multi-byte sequence to arrive split
	// across chunk boundaries; the carry logic must reassemble them.
	input := "año de fiscalización"
	r := NewSanitizingReader(iotest.OneByteReader(bytes.NewReader([]byte(input))))

	result, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != input {
		t.Errorf("got %q, want %q", string(result), input)
	}
}

func TestNewReaderCombined(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte{'a', 0x80, 'b'}...)

	result, err := io.ReadAll(NewReader(bytes.NewReader(input)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != "a?b" {
		t.Errorf("got %q, want %q", string(result), "a?b")
	}
}
