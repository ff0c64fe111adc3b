// Package response decodes OSS XML response bodies into generic nodes and
// retypes the fields the service documents as non-string.
package response

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// A Map holds one decoded XML element: child tag name to a string leaf, a
// nested Map, or a List of repeated siblings.
type Map map[string]interface{}

// A List collects repeated sibling elements in document order.
type List []interface{}

// Decode reads a whole XML document into a Map keyed by the root element
// name, so an error body is reachable as doc["Error"]. Elements with child
// elements become Maps, repeated sibling tags collect into Lists, and
// text-only elements stay strings. Attributes are ignored; the service
// never carries data in them. Every leaf is a string at this stage, see
// Cast. Malformed input returns the parser diagnostic and no partial
// result.
func Decode(r io.Reader) (Map, error) {
	d := xml.NewDecoder(r)
	doc := Map{}
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decoding response XML")
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		node, err := decodeElement(d, start)
		if err != nil {
			return nil, errors.Wrap(err, "decoding response XML")
		}
		insert(doc, start.Name.Local, node)
	}
	if len(doc) == 0 {
		return nil, errors.New("decoding response XML: no root element")
	}
	return doc, nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(raw []byte) (Map, error) {
	return Decode(bytes.NewReader(raw))
}

func decodeElement(d *xml.Decoder, start xml.StartElement) (interface{}, error) {
	children := Map{}
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(d, t)
			if err != nil {
				return nil, err
			}
			insert(children, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			// Whitespace between child elements is formatting, not data.
			if len(children) > 0 {
				return children, nil
			}
			return text.String(), nil
		}
	}
}

func insert(m Map, name string, node interface{}) {
	switch prev := m[name].(type) {
	case nil:
		m[name] = node
	case List:
		m[name] = append(prev, node)
	default:
		m[name] = List{prev, node}
	}
}
