// sanitize.go provides byte-level cleanup for agency exports. Files arrive
// from Windows desktops: UTF-8 BOMs from Excel, and the occasional Latin-1
// byte pasted into an otherwise UTF-8 file. Both are handled while
// streaming so large exports never need a full in-memory copy.
package tabular

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// SkipBOM returns a reader with any leading UTF-8 byte order mark removed.
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(3); err == nil && bytes.Equal(lead, bomUTF8) {
		br.Discard(3)
	}
	return br
}

// SanitizingReader replaces bytes that do not form valid UTF-8 with '?' so
// downstream CSV parsing never sees broken runes. Multi-byte sequences split
// across reads are reassembled before being judged.
type SanitizingReader struct {
	r     io.Reader
	chunk []byte       // reusable read buffer
	carry []byte       // possible incomplete sequence held across chunks
	out   bytes.Buffer // sanitized output awaiting delivery
	err   error        // deferred error from the underlying reader
}

// NewSanitizingReader wraps r with on-the-fly UTF-8 sanitization.
func NewSanitizingReader(r io.Reader) *SanitizingReader {
	return &SanitizingReader{r: r, chunk: make([]byte, 4096)}
}

// Read implements io.Reader.
func (s *SanitizingReader) Read(p []byte) (int, error) {
	for s.out.Len() == 0 {
		if s.err != nil {
			return 0, s.err
		}
		n, err := s.r.Read(s.chunk)
		if n > 0 {
			s.sanitize(s.chunk[:n], false)
		}
		if err != nil {
			s.err = err
			// Whatever is still carried can no longer complete.
			s.sanitize(nil, true)
		}
	}
	return s.out.Read(p)
}

// sanitize decodes data rune by rune, emitting '?' for invalid bytes. When
// atEOF is false an incomplete trailing sequence is carried to the next
// chunk instead of being judged invalid.
func (s *SanitizingReader) sanitize(data []byte, atEOF bool) {
	if len(s.carry) > 0 {
		data = append(append([]byte{}, s.carry...), data...)
		s.carry = s.carry[:0]
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			rest := data[i:]
			if !atEOF && len(rest) < utf8.UTFMax && utf8.RuneStart(rest[0]) && !utf8.FullRune(rest) {
				s.carry = append(s.carry, rest...)
				return
			}
			s.out.WriteByte('?')
			i++
			continue
		}
		s.out.Write(data[i : i+size])
		i += size
	}
}

// NewReader wraps r for reading an agency export: BOM stripped first, then
// invalid UTF-8 replaced.
func NewReader(r io.Reader) io.Reader {
	return NewSanitizingReader(SkipBOM(r))
}
