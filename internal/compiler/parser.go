package compiler

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// Parser is responsible for converting a raw route document into an Element tree.
// Comments and processing instructions are dropped; source lines are kept for diagnostics.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a complete document held in memory.
func (p *Parser) Parse(data []byte) (*domain.Element, error) {
	return p.ParseReader(bytes.NewReader(data))
}

// ParseReader decodes a complete document and returns its root element.
func (p *Parser) ParseReader(r io.Reader) (*domain.Element, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	var (
		root  *domain.Element
		stack []*domain.Element
		text  []*strings.Builder
	)

	for {
		// The position before reading a token is where that token starts.
		line, _ := dec.InputPos()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &domain.Element{
				Space: t.Name.Space,
				Tag:   t.Name.Local,
				Line:  line,
			}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				if el.Attrs == nil {
					el.Attrs = make(map[string]string, len(t.Attr))
				}
				el.Attrs[a.Name.Local] = a.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", domain.ErrMalformedDocument)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
			text = append(text, &strings.Builder{})

		case xml.EndElement:
			top := len(stack) - 1
			stack[top].Text = text[top].String()
			stack = stack[:top]
			text = text[:top]

		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", domain.ErrMalformedDocument)
	}
	return root, nil
}
