package pronunciation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Width 0 puts every array element on its own line.
var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "    ",
	SortKeys: false,
}

// ReadFile loads a dataset from a JSON file.
func ReadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	ds, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a JSON object of word to pronunciation in document order.
func Decode(data []byte) (*Dataset, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrParse)
	}
	if !gjson.ValidBytes(data) {
		var syntaxErr *json.SyntaxError
		if err := json.Unmarshal(data, new(json.RawMessage)); errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("%w: %v (offset %d)", ErrParse, syntaxErr, syntaxErr.Offset)
		}
		return nil, fmt.Errorf("%w: invalid JSON", ErrParse)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrSchema)
	}

	ds := NewDataset()
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		word := key.String()
		v, err := decodeValue(value)
		if err != nil {
			decodeErr = fmt.Errorf("word %q: %w", word, err)
			return false
		}
		ds.Set(word, v)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return ds, nil
}

func decodeValue(value gjson.Result) (Value, error) {
	switch {
	case value.Type == gjson.String:
		return Text(value.String()), nil
	case value.IsObject():
		return decodeVariants(value)
	default:
		return Literal(value.Raw), nil
	}
}

func decodeVariants(value gjson.Result) (Variants, error) {
	variants := Variants{}
	index := make(map[string]int)
	var err error
	value.ForEach(func(key, pron gjson.Result) bool {
		v := Variant{Label: key.String()}
		switch pron.Type {
		case gjson.String:
			v.Pronunciation = pron.String()
		case gjson.Null:
			v.Missing = true
		default:
			err = fmt.Errorf("%w: variant %q is not a string", ErrSchema, v.Label)
			return false
		}
		if i, ok := index[v.Label]; ok {
			variants[i] = v
			return true
		}
		index[v.Label] = len(variants)
		variants = append(variants, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return variants, nil
}

// Encode renders the dataset as indented JSON in insertion order. Non-ASCII
// characters are written literally.
func Encode(ds *Dataset) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for word, v := range ds.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeString(&buf, word)
		buf.WriteByte(':')
		if err := writeValue(&buf, v); err != nil {
			return nil, fmt.Errorf("word %q: %w", word, err)
		}
	}
	buf.WriteByte('}')

	return pretty.PrettyOptions(buf.Bytes(), prettyOptions), nil
}

// WriteFile encodes the dataset to path.
func WriteFile(path string, ds *Dataset) error {
	data, err := Encode(ds)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeValue(buf *bytes.Buffer, v Value) error {
	switch v := v.(type) {
	case Scalar:
		if v.IsText() {
			writeString(buf, v.Text)
		} else {
			buf.WriteString(v.raw)
		}
	case Variants:
		buf.WriteByte('{')
		for i, variant := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, variant.Label)
			buf.WriteByte(':')
			if variant.Missing {
				buf.WriteString("null")
			} else {
				writeString(buf, variant.Pronunciation)
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unsupported value %T", ErrSchema, v)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
}
