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
	"slices"
)

// EnumCodec is a bijective mapping between mnemonic names and int32 wire
// codes. Values are the mnemonic name strings; the wire representation is
// the int32 code. Implements Codec[any].
type EnumCodec struct {
	byName map[string]int32
	byCode map[int32]string
}

// NewEnum builds an enum codec. The mapping must be injective in both
// directions; codes need not be contiguous.
func NewEnum(members map[string]int32) (*EnumCodec, error) {
	if len(members) == 0 {
		return nil, errors.New("enum with no members")
	}
	byName := make(map[string]int32, len(members))
	byCode := make(map[int32]string, len(members))
	for name, code := range members {
		if name == "" {
			return nil, errors.New("enum member with empty name")
		}
		if other, ok := byCode[code]; ok {
			return nil, fmt.Errorf(
				"enum members %q and %q share code %d",
				other,
				name,
				code,
			)
		}
		byName[name] = code
		byCode[code] = name
	}
	return &EnumCodec{
		byName: byName,
		byCode: byCode,
	}, nil
}

// Value returns the wire code for a member name
func (c *EnumCodec) Value(name string) (int32, bool) {
	code, ok := c.byName[name]
	return code, ok
}

// Name returns the member name for a wire code
func (c *EnumCodec) Name(code int32) (string, bool) {
	name, ok := c.byCode[code]
	return name, ok
}

// Members returns the member names sorted by wire code
func (c *EnumCodec) Members() []string {
	codes := make([]int32, 0, len(c.byCode))
	for code := range c.byCode {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	ret := make([]string, 0, len(codes))
	for _, code := range codes {
		ret = append(ret, c.byCode[code])
	}
	return ret
}

func (c *EnumCodec) Encode(w *Writer, v any) error {
	name, ok := v.(string)
	if !ok {
		return fmt.Errorf("unexpected value type for enum: %T", v)
	}
	code, ok := c.byName[name]
	if !ok {
		return InvalidEnumValueError{Value: name}
	}
	w.WriteInt32(code)
	return nil
}

func (c *EnumCodec) Decode(r *Reader) (any, error) {
	code, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	name, ok := c.byCode[code]
	if !ok {
		return nil, InvalidEnumValueError{Value: code}
	}
	return name, nil
}

func (c *EnumCodec) ToJSON(v any) (any, error) {
	name, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected value type for enum: %T", v)
	}
	if _, ok := c.byName[name]; !ok {
		return nil, InvalidEnumValueError{Value: name}
	}
	return name, nil
}

func (c *EnumCodec) FromJSON(j any) (any, error) {
	name, err := jsonString(j)
	if err != nil {
		return nil, err
	}
	if _, ok := c.byName[name]; !ok {
		return nil, InvalidEnumValueError{Value: name}
	}
	return name, nil
}
