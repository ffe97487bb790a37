// Package data holds the order-preserving document model behind the
// Data view. Generic map decoding would lose member order, which the
// export round-trip depends on, so documents are decoded off the
// stdlib JSON token stream into an explicit tree.
package data

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Kind selects the active variant of a Value.
type Kind int

const (
	// KindScalar is a primitive: string, number, bool or null.
	KindScalar Kind = iota
	// KindMapping is an object; member order is source order.
	KindMapping
	// KindSequence is an array.
	KindSequence
)

// Value is one node of a decoded document. The tree is acyclic by
// construction, it only ever comes out of Decode.
type Value struct {
	Kind    Kind
	Members []Member // KindMapping
	Items   []*Value // KindSequence

	// scalar holds the primitive token for KindScalar: string,
	// json.Number, bool or nil. Numbers keep their source literal so
	// Encode does not reformat them.
	scalar any
}

// Member is one (key, value) pair of a mapping.
type Member struct {
	Key   string
	Value *Value
}

// Scalar returns the display rendering of a primitive node: the bare
// string, the source number literal, "true"/"false" or "null".
func (v *Value) Scalar() string {
	switch s := v.scalar.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		return "null"
	}
}

// Decode parses text as a single structured-data document. The whole
// input must be one document: leading/trailing garbage, an empty
// string, or any syntax error make it fail. Failure is the normal
// negative outcome the classifier falls through on.
func Decode(text string) (*Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v := &Value{Kind: KindMapping}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				v.Members = append(v.Members, Member{Key: key, Value: child})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return v, nil
		case '[':
			v := &Value{Kind: KindSequence}
			for dec.More() {
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				v.Items = append(v.Items, child)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return v, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	default:
		return &Value{Kind: KindScalar, scalar: tok}, nil
	}
}

// Encode re-serializes the document. Member order is preserved, which
// is the whole point of this package: decode(Encode(v)) is equal to v
// for any decoded document.
func (v *Value) Encode() string {
	var b strings.Builder
	v.encode(&b)
	return b.String()
}

func (v *Value) encode(b *strings.Builder) {
	switch v.Kind {
	case KindMapping:
		b.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				b.WriteString(", ")
			}
			writeString(b, m.Key)
			b.WriteString(": ")
			m.Value.encode(b)
		}
		b.WriteByte('}')
	case KindSequence:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			item.encode(b)
		}
		b.WriteByte(']')
	default:
		if s, ok := v.scalar.(string); ok {
			writeString(b, s)
			return
		}
		b.WriteString(v.Scalar())
	}
}

func writeString(b *strings.Builder, s string) {
	// json.Marshal never fails for a plain string.
	enc, _ := json.Marshal(s)
	b.Write(enc)
}
