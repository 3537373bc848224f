// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xdr

import (
	"errors"
	"fmt"
)

// Field is one named member of a struct schema. Declaration order is the
// wire order.
type Field struct {
	Name  string
	Codec AnyCodec
}

// NewField builds a Field from a typed codec
func NewField[T any](name string, c Codec[T]) Field {
	return Field{
		Name:  name,
		Codec: Erase(c),
	}
}

// StructCodec encodes/decodes an ordered sequence of named fields. Values
// are map[string]any keyed by field name; the schema, not the map, fixes
// the wire order. Implements Codec[any].
type StructCodec struct {
	fields []Field
}

// NewStruct builds a struct codec from the given fields. Field names must
// be unique and every field needs a codec.
func NewStruct(fields ...Field) (*StructCodec, error) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, errors.New("struct field with empty name")
		}
		if f.Codec == nil {
			return nil, fmt.Errorf("struct field %q has no codec", f.Name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate struct field %q", f.Name)
		}
		seen[f.Name] = true
	}
	return &StructCodec{
		fields: append([]Field{}, fields...),
	}, nil
}

// Fields returns the schema field names in wire order
func (c *StructCodec) Fields() []string {
	ret := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		ret = append(ret, f.Name)
	}
	return ret
}

func (c *StructCodec) Encode(w *Writer, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected value type for struct: %T", v)
	}
	for _, f := range c.fields {
		fv, ok := m[f.Name]
		if !ok {
			return fmt.Errorf("missing struct field %q", f.Name)
		}
		if err := f.Codec.Encode(w, fv); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return nil
}

func (c *StructCodec) Decode(r *Reader) (any, error) {
	if err := r.enterNested(); err != nil {
		return nil, err
	}
	defer r.leaveNested()
	ret := make(map[string]any, len(c.fields))
	for _, f := range c.fields {
		fv, err := f.Codec.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		ret[f.Name] = fv
	}
	return ret, nil
}

func (c *StructCodec) ToJSON(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected value type for struct: %T", v)
	}
	ret := make(map[string]any, len(c.fields))
	for _, f := range c.fields {
		fv, ok := m[f.Name]
		if !ok {
			return nil, fmt.Errorf("missing struct field %q", f.Name)
		}
		fj, err := f.Codec.ToJSON(fv)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		ret[f.Name] = fj
	}
	return ret, nil
}

func (c *StructCodec) FromJSON(j any) (any, error) {
	m, err := jsonObject(j)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]any, len(c.fields))
	for _, f := range c.fields {
		fj, ok := m[f.Name]
		if !ok {
			return nil, fmt.Errorf("missing struct field %q", f.Name)
		}
		fv, err := f.Codec.FromJSON(fj)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		ret[f.Name] = fv
	}
	return ret, nil
}
