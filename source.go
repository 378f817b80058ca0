package unbox

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source materializes one Value Tree from an input representation. The tree is
// produced once per decode and owned exclusively by that decode's session.
type Source interface {
	Materialize() (any, error)
	Name() string
}

// Driver converts raw JSON bytes into a Value Tree via a pluggable SPI. The
// default implementation is backed by goccy/go-json and may be swapped with
// SetDriver.
type Driver interface {
	Parse(b []byte) (any, error)
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = gojsonDriver{}
)

// SetDriver replaces the global JSON driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default go-json-backed driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = gojsonDriver{}
	driverMu.Unlock()
}

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// gojsonDriver wraps the goccy/go-json implementation. Numbers are preserved
// as json.Number so the coercion table decides their interpretation.
type gojsonDriver struct{}

func (gojsonDriver) Parse(b []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	// exactly one document; trailing content is malformed input
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("unbox: trailing data after JSON value")
	}
	return v, nil
}

func (gojsonDriver) Name() string { return "go-json" }

// JSONBytes wraps a JSON byte slice as a Source.
func JSONBytes(b []byte) Source { return bytesSource{data: b} }

// JSONReader wraps an io.Reader producing JSON as a Source.
func JSONReader(r io.Reader) Source { return readerSource{r: r} }

// YAMLBytes wraps a YAML byte slice as a Source. The decoded document is
// normalized to the Value Tree shape (string-keyed maps).
func YAMLBytes(b []byte) Source { return yamlSource{data: b} }

// Value wraps an already-parsed value tree as a Source.
func Value(tree any) Source { return valueSource{v: tree} }

type bytesSource struct{ data []byte }

func (s bytesSource) Materialize() (any, error) { return getDriver().Parse(s.data) }
func (s bytesSource) Name() string              { return getDriver().Name() }

type readerSource struct{ r io.Reader }

func (s readerSource) Materialize() (any, error) {
	if s.r == nil {
		return nil, errors.New("unbox: nil reader")
	}
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, err
	}
	return getDriver().Parse(data)
}

func (s readerSource) Name() string { return getDriver().Name() }

type yamlSource struct{ data []byte }

func (s yamlSource) Materialize() (any, error) {
	var node any
	if err := yaml.Unmarshal(s.data, &node); err != nil {
		return nil, err
	}
	return yamlToValue(node), nil
}

func (s yamlSource) Name() string { return "yaml" }

type valueSource struct{ v any }

func (s valueSource) Materialize() (any, error) { return s.v, nil }
func (s valueSource) Name() string              { return "value" }

// yamlToValue normalizes a yaml.v3 document into the Value Tree shape:
// map[any]any nodes become string-keyed maps, recursively.
func yamlToValue(v any) any {
	switch n := v.(type) {
	case map[string]any:
		for k, val := range n {
			n[k] = yamlToValue(val)
		}
		return n
	case map[any]any:
		m := make(map[string]any, len(n))
		for k, val := range n {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			m[ks] = yamlToValue(val)
		}
		return m
	case []any:
		for i := range n {
			n[i] = yamlToValue(n[i])
		}
		return n
	default:
		return v
	}
}
