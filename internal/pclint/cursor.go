package pclint

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/cxxtools/lintport/internal/types"
)

// ErrEmptyReport is returned when the document root cannot be read.
// The report carries no findings and the caller should skip it; it is
// not a fatal condition for the run.
var ErrEmptyReport = errors.New("cannot read report root element")

// ElementReader yields the raw attributes of successive <issue>
// elements. Next returns io.EOF once the stream is exhausted; any
// other error means the remainder of the stream is unreadable.
type ElementReader interface {
	Next() (types.RawAttributes, error)
}

// StreamReader reads <issue> elements that are direct children of the
// report's root element.
type StreamReader struct {
	dec *xml.Decoder
}

// NewStreamReader advances to the document root. It returns
// ErrEmptyReport when the stream ends before a root element appears.
func NewStreamReader(r io.Reader) (*StreamReader, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyReport
			}
			return nil, fmt.Errorf("reading report root: %w", err)
		}
		if _, ok := tok.(xml.StartElement); ok {
			return &StreamReader{dec: dec}, nil
		}
	}
}

// Next returns the attributes of the next <issue> element. Elements
// under the root with a different name are skipped whole.
func (r *StreamReader) Next() (types.RawAttributes, error) {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return types.RawAttributes{}, io.EOF
			}
			return types.RawAttributes{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "issue" {
				if err := r.dec.Skip(); err != nil {
					return types.RawAttributes{}, err
				}
				continue
			}
			attrs := readAttributes(t)
			if err := r.dec.Skip(); err != nil {
				return types.RawAttributes{}, err
			}
			return attrs, nil
		case xml.EndElement:
			// end of the root element
			return types.RawAttributes{}, io.EOF
		}
	}
}

func readAttributes(el xml.StartElement) types.RawAttributes {
	var attrs types.RawAttributes
	for _, a := range el.Attr {
		switch a.Name.Local {
		case "file":
			attrs.File = a.Value
		case "line":
			attrs.Line = a.Value
		case "number":
			attrs.Number = a.Value
		case "desc":
			attrs.Desc = a.Value
		case "type":
			attrs.Type = a.Value
		}
	}
	return attrs
}
