package unityyaml

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"

	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentStream = (*Stream)(nil)

var (
	utf8BOM        = []byte{0xEF, 0xBB, 0xBF}
	directiveYAML  = []byte("%YAML")
	documentStart  = []byte("---")
	documentEnd    = []byte("...")
	classTagPrefix = "!u!"
)

// Stream reads the documents of a scene file one at a time.
// It is forward-only and cannot be restarted.
type Stream struct {
	r     *bufio.Reader
	line  int
	index int
	done  bool

	// pending is a document marker line read while scanning the previous document.
	pending   []byte
	pendingAt int
}

// NewStream consumes the stream header of r and positions the stream before
// the first document. The header must open with a %YAML directive.
func NewStream(r io.Reader) (*Stream, error) {
	s := &Stream{r: bufio.NewReaderSize(r, 64*1024)}
	if err := s.readHeader(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stream) readHeader() error {
	sawDirective := false
	for {
		line, err := s.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if s.line == 1 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}

		switch {
		case len(line) == 0 && errors.Is(err, io.EOF) && !sawDirective:
			return formatError(s.line, "missing %YAML stream header")
		case isIgnorable(line):
		case !sawDirective:
			if !bytes.HasPrefix(line, directiveYAML) {
				return formatError(s.line, "missing %YAML stream header")
			}
			sawDirective = true
		case line[0] == '%':
		case isMarker(line, documentStart):
			s.pending, s.pendingAt = line, s.line
			return nil
		default:
			return formatError(s.line, "content before the first document marker")
		}

		if errors.Is(err, io.EOF) {
			s.done = true
			return nil
		}
	}
}

// Next returns the next document of the stream, or io.EOF once all documents were read.
func (s *Stream) Next() (*domain.Document, error) {
	if s.pending == nil {
		if s.done {
			return nil, io.EOF
		}
		if err := s.seekMarker(); err != nil {
			return nil, err
		}
	}

	doc, err := parseHeader(s.pending, s.pendingAt)
	if err != nil {
		return nil, err
	}
	doc.Index = s.index
	s.index++
	s.pending = nil

	var body bytes.Buffer
	for !s.done {
		line, err := s.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if errors.Is(err, io.EOF) {
			s.done = true
			if len(line) == 0 {
				break
			}
		}

		if isMarker(line, documentStart) {
			s.pending, s.pendingAt = line, s.line
			break
		}
		if isMarker(line, documentEnd) {
			break
		}
		body.Write(line)
		body.WriteByte('\n')
	}

	doc.Body = body.Bytes()
	return doc, nil
}

// seekMarker skips the gap after an explicit document end up to the next document marker.
func (s *Stream) seekMarker() error {
	for {
		line, err := s.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		switch {
		case isMarker(line, documentStart):
			s.pending, s.pendingAt = line, s.line
			if errors.Is(err, io.EOF) {
				s.done = true
			}
			return nil
		case isIgnorable(line), line[0] == '%':
		default:
			return formatError(s.line, "content outside of a document")
		}
		if errors.Is(err, io.EOF) {
			s.done = true
			return io.EOF
		}
	}
}

// readLine returns the next line without its terminator. The returned slice is owned by the caller.
func (s *Stream) readLine() ([]byte, error) {
	line, err := s.r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrSourceReadFailed, zerr.With(zerr.Wrap(err, "read line"), "line", s.line+1))
	}
	if len(line) > 0 || err == nil {
		s.line++
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, err
}

func parseHeader(line []byte, lineNo int) (*domain.Document, error) {
	doc := &domain.Document{Line: lineNo}
	for _, tok := range bytes.Fields(line[len(documentStart):]) {
		t := string(tok)
		if t[0] == '#' {
			break
		}
		switch {
		case len(t) > len(classTagPrefix) && t[:len(classTagPrefix)] == classTagPrefix:
			id, err := strconv.Atoi(t[len(classTagPrefix):])
			if err != nil {
				return nil, formatError(lineNo, "invalid class tag "+strconv.Quote(t))
			}
			doc.ClassID = id
		case len(t) > 1 && t[0] == '&':
			id, err := strconv.ParseInt(t[1:], 10, 64)
			if err != nil {
				return nil, formatError(lineNo, "invalid anchor "+strconv.Quote(t))
			}
			doc.FileID = id
		case t == "stripped":
			doc.Stripped = true
		default:
			return nil, formatError(lineNo, "unexpected document header token "+strconv.Quote(t))
		}
	}
	return doc, nil
}

// isMarker reports whether line is the given document marker, optionally followed by header tokens.
func isMarker(line, marker []byte) bool {
	if !bytes.HasPrefix(line, marker) {
		return false
	}
	rest := line[len(marker):]
	return len(rest) == 0 || rest[0] == ' ' || rest[0] == '\t'
}

func isIgnorable(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	return len(trimmed) == 0 || trimmed[0] == '#'
}

func formatError(line int, msg string) error {
	return errors.Join(domain.ErrFormat, zerr.With(zerr.New(msg), "line", line))
}
