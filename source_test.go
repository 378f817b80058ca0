package unbox_test

import (
	"encoding/json"
	"strings"
	"testing"

	unbox "github.com/reoring/unbox"
)

func TestSource_JSONReader(t *testing.T) {
	v, err := unbox.Decode[user](unbox.JSONReader(strings.NewReader(`{"name":"John","age":27}`)))
	if err != nil || v.Name != "John" || v.Age != 27 {
		t.Fatalf("unexpected result: v=%+v err=%v", v, err)
	}
}

func TestSource_TrailingDataIsInvalidInput(t *testing.T) {
	_, err := unbox.Decode[user](unbox.JSONBytes([]byte(`{"name":"J","age":1} {"more":true}`)))
	if iss, ok := unbox.AsIssues(err); !ok || iss[0].Code != unbox.CodeInvalidInput {
		t.Fatalf("expected invalid_input for trailing data, got %v", err)
	}
}

// TestSource_YAML decodes a YAML document into the same Value Tree shape.
func TestSource_YAML(t *testing.T) {
	data := []byte("name: John\nage: 27\n")
	v, err := unbox.Decode[user](unbox.YAMLBytes(data))
	if err != nil || v.Name != "John" || v.Age != 27 {
		t.Fatalf("unexpected result: v=%+v err=%v", v, err)
	}

	if _, err := unbox.Decode[user](unbox.YAMLBytes([]byte(":\n  - ]["))); err == nil {
		t.Fatalf("expected invalid_input for malformed YAML")
	}
}

func TestSource_ValueWrapsParsedTree(t *testing.T) {
	tree := map[string]any{"name": "John", "age": json.Number("27")}
	v, err := unbox.Decode[user](unbox.Value(tree))
	if err != nil || v.Age != 27 {
		t.Fatalf("unexpected result: v=%+v err=%v", v, err)
	}
}

// stdlibDriver swaps the parse driver, mirroring the pluggable-driver SPI.
type stdlibDriver struct{ used *bool }

func (d stdlibDriver) Parse(b []byte) (any, error) {
	*d.used = true
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (stdlibDriver) Name() string { return "encoding/json" }

func TestSource_DriverSwap(t *testing.T) {
	var used bool
	unbox.SetDriver(stdlibDriver{used: &used})
	defer unbox.UseDefaultDriver()

	v, err := unbox.Decode[user](unbox.JSONBytes([]byte(`{"name":"J","age":1}`)))
	if err != nil || v.Name != "J" {
		t.Fatalf("unexpected result: v=%+v err=%v", v, err)
	}
	if !used {
		t.Fatalf("swapped driver was not used")
	}
}
