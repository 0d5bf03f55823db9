package omap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/graph-guard/collections/pkg/container"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the map as a JSON object in iteration order.
// Non-string keys are encoded as their JSON scalar representation
// quoted into an object key. Composite keys are rejected.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	first := true
	for e := m.head; e != nil; e = e.next {
		kb, err := json.Marshal(e.key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %v: %w", e.key, err)
		}
		if len(kb) < 1 || kb[0] == '{' || kb[0] == '[' {
			return nil, fmt.Errorf(
				"composite key %v: %w",
				e.key, container.ErrInvalidArgument,
			)
		}
		vb, err := json.Marshal(e.value)
		if err != nil {
			return nil, fmt.Errorf("encoding value of %v: %w", e.key, err)
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		if kb[0] == '"' {
			b.Write(kb)
		} else {
			b.WriteByte('"')
			b.Write(kb)
			b.WriteByte('"')
		}
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object putting its members into the
// map in document order. Supported key types are strings and
// integers; other key types are rejected.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return fmt.Errorf(
			"expected object: %w", container.ErrInvalidArgument,
		)
	}
	var err error
	r.ForEach(func(k, v gjson.Result) bool {
		var key K
		if key, err = keyFromString[K](k.String()); err != nil {
			return false
		}
		var value V
		if err = json.Unmarshal([]byte(v.Raw), &value); err != nil {
			err = fmt.Errorf("decoding value of %q: %w", k.String(), err)
			return false
		}
		m.Put(key, value)
		return true
	})
	return err
}

// MarshalYAML encodes the map as a YAML mapping in iteration order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for e := m.head; e != nil; e = e.next {
		var kn, vn yaml.Node
		if err := kn.Encode(e.key); err != nil {
			return nil, fmt.Errorf("encoding key %v: %w", e.key, err)
		}
		if err := vn.Encode(e.value); err != nil {
			return nil, fmt.Errorf("encoding value of %v: %w", e.key, err)
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping putting its members into
// the map in document order.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf(
			"expected mapping: %w", container.ErrInvalidArgument,
		)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key K
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("decoding key: %w", err)
		}
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("decoding value of %v: %w", key, err)
		}
		m.Put(key, value)
	}
	return nil
}

// keyFromString converts a JSON object key into K.
func keyFromString[K comparable](s string) (key K, err error) {
	switch any(key).(type) {
	case string:
		return any(s).(K), nil
	case int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return key, fmt.Errorf(
				"key %q: %w", s, container.ErrInvalidArgument,
			)
		}
		return any(n).(K), nil
	case int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return key, fmt.Errorf(
				"key %q: %w", s, container.ErrInvalidArgument,
			)
		}
		return any(n).(K), nil
	case uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return key, fmt.Errorf(
				"key %q: %w", s, container.ErrInvalidArgument,
			)
		}
		return any(n).(K), nil
	}
	return key, fmt.Errorf(
		"unsupported key type %T: %w", key, container.ErrInvalidArgument,
	)
}
