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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Arm is one variant of a tagged union. An arm is selected by any of its
// tags; the first declared tag is canonical and is the only one ever
// emitted on encode. A nil Codec makes the arm void.
type Arm struct {
	// Key is the logical arm name used in the decoded representation;
	// empty for void arms, which decode to the bare tag
	Key string
	// Codec decodes the arm payload; nil for void arms
	Codec AnyCodec
	// Tags are the discriminant values that select this arm: member name
	// strings for enum-discriminated unions, int32 values otherwise
	Tags []any
}

// NewArm builds a value arm from a typed payload codec
func NewArm[T any](key string, c Codec[T], tags ...any) Arm {
	return Arm{
		Key:   key,
		Codec: Erase(c),
		Tags:  tags,
	}
}

// NewVoidArm builds an arm with no payload. It decodes to the bare
// canonical tag.
func NewVoidArm(tags ...any) Arm {
	return Arm{Tags: tags}
}

// UnionConfig describes a tagged union schema
type UnionConfig struct {
	// SwitchOn is the discriminant enum; nil means a raw int32
	// discriminant
	SwitchOn *EnumCodec
	// Arms in declaration order
	Arms []Arm
	// Default, when non-nil, handles discriminants matching no arm. Its
	// Tags are unused; a nil Codec makes the default void.
	Default *Arm
}

// UnionValue is the decoded representation of a tagged union: either a
// bare tag (void arm or void default), an arm key with a payload, or a
// raw tag with a payload (default arm). The constructors below are the
// only way to build one, so a value can never hold an illegal
// combination.
type UnionValue struct {
	tag        any
	key        string
	payload    any
	hasPayload bool
}

// UnionVoid is the value of a void arm: the bare tag (a member name
// string or an int32)
func UnionVoid(tag any) UnionValue {
	return UnionValue{tag: tag}
}

// UnionCase is the value of a declared arm carrying a payload
func UnionCase(key string, payload any) UnionValue {
	return UnionValue{
		key:        key,
		payload:    payload,
		hasPayload: true,
	}
}

// UnionDefault is the value of a payload-carrying default arm: the raw
// discriminant tag plus the payload
func UnionDefault(tag any, payload any) UnionValue {
	return UnionValue{
		tag:        tag,
		payload:    payload,
		hasPayload: true,
	}
}

// Tag returns the bare tag for void and default values; it is nil for
// declared value arms, which are identified by ArmKey instead
func (v UnionValue) Tag() any {
	return v.tag
}

// ArmKey returns the logical arm key for a declared value arm
func (v UnionValue) ArmKey() (string, bool) {
	return v.key, v.key != ""
}

// Payload returns the arm payload, if the value carries one
func (v UnionValue) Payload() (any, bool) {
	return v.payload, v.hasPayload
}

// UnionCodec is a discriminant-dispatched variant codec. Implements
// Codec[any]; values are UnionValue.
type UnionCodec struct {
	switchOn *EnumCodec
	arms     []Arm
	byTag    map[any]int
	byKey    map[string]int
	def      *Arm
}

// NewUnion builds a union codec from the given config. Tags must be
// unique across arms and consistent with the discriminant kind.
func NewUnion(cfg UnionConfig) (*UnionCodec, error) {
	if len(cfg.Arms) == 0 && cfg.Default == nil {
		return nil, errors.New("union with no arms")
	}
	c := &UnionCodec{
		switchOn: cfg.SwitchOn,
		byTag:    map[any]int{},
		byKey:    map[string]int{},
	}
	for _, arm := range cfg.Arms {
		if len(arm.Tags) == 0 {
			return nil, errors.New("union arm with no tags")
		}
		if (arm.Codec == nil) != (arm.Key == "") {
			return nil, errors.New(
				"union arm must have both key and codec, or neither",
			)
		}
		normArm := Arm{
			Key:   arm.Key,
			Codec: arm.Codec,
			Tags:  make([]any, 0, len(arm.Tags)),
		}
		idx := len(c.arms)
		for _, rawTag := range arm.Tags {
			tag, err := c.normalizeTag(rawTag)
			if err != nil {
				return nil, err
			}
			if c.switchOn != nil {
				name, ok := tag.(string)
				if !ok {
					return nil, fmt.Errorf(
						"non-string tag %v in enum-discriminated union",
						tag,
					)
				}
				if _, ok := c.switchOn.Value(name); !ok {
					return nil, fmt.Errorf(
						"union tag %q is not an enum member",
						name,
					)
				}
			}
			if _, ok := c.byTag[tag]; ok {
				return nil, fmt.Errorf("duplicate union tag %v", tag)
			}
			c.byTag[tag] = idx
			normArm.Tags = append(normArm.Tags, tag)
		}
		if normArm.Key != "" {
			if _, ok := c.byKey[normArm.Key]; ok {
				return nil, fmt.Errorf(
					"duplicate union arm key %q",
					normArm.Key,
				)
			}
			c.byKey[normArm.Key] = idx
		}
		c.arms = append(c.arms, normArm)
	}
	if cfg.Default != nil {
		c.def = &Arm{
			Key:   cfg.Default.Key,
			Codec: cfg.Default.Codec,
		}
	}
	return c, nil
}

// normalizeTag reduces a tag to its canonical in-memory form: a member
// name string for enum-discriminated unions, an int32 otherwise
func (c *UnionCodec) normalizeTag(tag any) (any, error) {
	switch v := tag.(type) {
	case string:
		return v, nil
	case int32:
		return v, nil
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("union tag out of int32 range: %d", v)
		}
		return int32(v), nil
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("union tag out of int32 range: %d", v)
		}
		return int32(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("union tag not an int32: %v", v)
		}
		return int32(v), nil
	case json.Number:
		ret, err := strconv.ParseInt(string(v), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid union tag %q: %w", v, err)
		}
		return int32(ret), nil
	default:
		return nil, fmt.Errorf("unexpected union tag type: %T", tag)
	}
}

func (c *UnionCodec) encodeTag(w *Writer, tag any) error {
	if c.switchOn != nil {
		return c.switchOn.Encode(w, tag)
	}
	code, ok := tag.(int32)
	if !ok {
		return InvalidUnionDiscriminantError{Value: tag}
	}
	w.WriteInt32(code)
	return nil
}

func (c *UnionCodec) Encode(w *Writer, v any) error {
	uv, ok := v.(UnionValue)
	if !ok {
		return fmt.Errorf("unexpected value type for union: %T", v)
	}
	// Declared value arm, identified by its key
	if uv.hasPayload && uv.key != "" {
		idx, ok := c.byKey[uv.key]
		if !ok {
			return InvalidUnionDiscriminantError{Value: uv.key}
		}
		arm := &c.arms[idx]
		// Canonical tag: always the first declared tag for the arm
		if err := c.encodeTag(w, arm.Tags[0]); err != nil {
			return err
		}
		return arm.Codec.Encode(w, uv.payload)
	}
	tag, err := c.normalizeTag(uv.tag)
	if err != nil {
		return err
	}
	// Default arm carrying a payload: raw discriminant passthrough
	if uv.hasPayload {
		if c.def == nil || c.def.Codec == nil {
			return InvalidUnionDiscriminantError{Value: tag}
		}
		if _, ok := c.byTag[tag]; ok {
			// A declared arm owns this tag; the value should have been
			// built with UnionCase
			return InvalidUnionDiscriminantError{Value: tag}
		}
		if err := c.encodeTag(w, tag); err != nil {
			return err
		}
		return c.def.Codec.Encode(w, uv.payload)
	}
	// Void value: bare tag
	if idx, ok := c.byTag[tag]; ok {
		arm := &c.arms[idx]
		if arm.Codec != nil {
			return fmt.Errorf("union arm %q requires a payload", arm.Key)
		}
		return c.encodeTag(w, arm.Tags[0])
	}
	if c.def != nil && c.def.Codec == nil {
		return c.encodeTag(w, tag)
	}
	return InvalidUnionDiscriminantError{Value: tag}
}

func (c *UnionCodec) Decode(r *Reader) (any, error) {
	var tag any
	if c.switchOn != nil {
		name, err := c.switchOn.Decode(r)
		if err != nil {
			return nil, err
		}
		tag = name
	} else {
		code, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		tag = code
	}
	if idx, ok := c.byTag[tag]; ok {
		arm := &c.arms[idx]
		if arm.Codec == nil {
			// Alias tags collapse to the same logical value
			return UnionVoid(arm.Tags[0]), nil
		}
		if err := r.enterNested(); err != nil {
			return nil, err
		}
		defer r.leaveNested()
		payload, err := arm.Codec.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("arm %q: %w", arm.Key, err)
		}
		return UnionCase(arm.Key, payload), nil
	}
	if c.def != nil {
		if c.def.Codec == nil {
			return UnionVoid(tag), nil
		}
		if err := r.enterNested(); err != nil {
			return nil, err
		}
		defer r.leaveNested()
		payload, err := c.def.Codec.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("default arm: %w", err)
		}
		return UnionDefault(tag, payload), nil
	}
	return nil, InvalidUnionDiscriminantError{Value: tag}
}

func (c *UnionCodec) ToJSON(v any) (any, error) {
	uv, ok := v.(UnionValue)
	if !ok {
		return nil, fmt.Errorf("unexpected value type for union: %T", v)
	}
	if uv.hasPayload && uv.key != "" {
		idx, ok := c.byKey[uv.key]
		if !ok {
			return nil, InvalidUnionDiscriminantError{Value: uv.key}
		}
		pj, err := c.arms[idx].Codec.ToJSON(uv.payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{uv.key: pj}, nil
	}
	tag, err := c.normalizeTag(uv.tag)
	if err != nil {
		return nil, err
	}
	if uv.hasPayload {
		if c.def == nil || c.def.Codec == nil {
			return nil, InvalidUnionDiscriminantError{Value: tag}
		}
		pj, err := c.def.Codec.ToJSON(uv.payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{tagJSONKey(tag): pj}, nil
	}
	// Void values mirror to the bare tag
	return tag, nil
}

func (c *UnionCodec) FromJSON(j any) (any, error) {
	switch jv := j.(type) {
	case map[string]any:
		if len(jv) != 1 {
			return nil, fmt.Errorf(
				"union object must have exactly one key, got %d",
				len(jv),
			)
		}
		for key, pj := range jv {
			if idx, ok := c.byKey[key]; ok {
				payload, err := c.arms[idx].Codec.FromJSON(pj)
				if err != nil {
					return nil, err
				}
				return UnionCase(key, payload), nil
			}
			if c.def != nil && c.def.Codec != nil {
				tag, err := c.tagFromJSONKey(key)
				if err != nil {
					return nil, err
				}
				payload, err := c.def.Codec.FromJSON(pj)
				if err != nil {
					return nil, err
				}
				return UnionDefault(tag, payload), nil
			}
			return nil, InvalidUnionDiscriminantError{Value: key}
		}
		// Unreachable: the map has exactly one key
		return nil, errors.New("empty union object")
	default:
		tag, err := c.normalizeTag(j)
		if err != nil {
			return nil, err
		}
		if idx, ok := c.byTag[tag]; ok {
			arm := &c.arms[idx]
			if arm.Codec != nil {
				return nil, fmt.Errorf(
					"union arm %q requires a payload",
					arm.Key,
				)
			}
			return UnionVoid(arm.Tags[0]), nil
		}
		if c.def != nil && c.def.Codec == nil {
			return UnionVoid(tag), nil
		}
		return nil, InvalidUnionDiscriminantError{Value: tag}
	}
}

// tagJSONKey renders a raw default-arm tag as a JSON object key
func tagJSONKey(tag any) string {
	switch v := tag.(type) {
	case string:
		return v
	case int32:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// tagFromJSONKey parses a default-arm JSON object key back into a tag
func (c *UnionCodec) tagFromJSONKey(key string) (any, error) {
	if c.switchOn != nil {
		if _, ok := c.switchOn.Value(key); !ok {
			return nil, InvalidUnionDiscriminantError{Value: key}
		}
		return key, nil
	}
	code, err := strconv.ParseInt(key, 10, 32)
	if err != nil {
		return nil, InvalidUnionDiscriminantError{Value: key}
	}
	return int32(code), nil
}
