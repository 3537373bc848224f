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
	"encoding/hex"
	"fmt"
	"math"
	"unicode/utf8"
)

// MaxLength is the largest bound a variable-length container can declare
const MaxLength uint32 = math.MaxUint32

// FixedOpaque returns a codec for an opaque byte block of exactly n bytes.
// The JSON mirror is a lowercase hex string.
func FixedOpaque(n uint32) Codec[[]byte] {
	return fixedOpaqueCodec{size: n}
}

type fixedOpaqueCodec struct {
	size uint32
}

func (c fixedOpaqueCodec) Encode(w *Writer, v []byte) error {
	if uint32(len(v)) != c.size {
		return LengthMismatchError{
			Expected: int(c.size),
			Actual:   len(v),
		}
	}
	w.WriteOpaque(v)
	return nil
}

func (c fixedOpaqueCodec) Decode(r *Reader) ([]byte, error) {
	if err := r.addSize(int(c.size)); err != nil {
		return nil, err
	}
	return r.ReadOpaque(int(c.size))
}

func (c fixedOpaqueCodec) ToJSON(v []byte) (any, error) {
	if uint32(len(v)) != c.size {
		return nil, LengthMismatchError{
			Expected: int(c.size),
			Actual:   len(v),
		}
	}
	return hex.EncodeToString(v), nil
}

func (c fixedOpaqueCodec) FromJSON(j any) ([]byte, error) {
	s, err := jsonString(j)
	if err != nil {
		return nil, err
	}
	ret, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	if uint32(len(ret)) != c.size {
		return nil, LengthMismatchError{
			Expected: int(c.size),
			Actual:   len(ret),
		}
	}
	return ret, nil
}

// VarOpaque returns a codec for a length-prefixed opaque byte block of at
// most max bytes. Pass MaxLength for no declared bound.
func VarOpaque(max uint32) Codec[[]byte] {
	return varOpaqueCodec{max: max}
}

type varOpaqueCodec struct {
	max uint32
}

func (c varOpaqueCodec) Encode(w *Writer, v []byte) error {
	if err := checkVarLen(len(v), c.max); err != nil {
		return err
	}
	w.WriteUint32(uint32(len(v)))
	w.WriteOpaque(v)
	return nil
}

func (c varOpaqueCodec) Decode(r *Reader) ([]byte, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if count > c.max {
		return nil, LengthExceedsMaxError{
			Max:    c.max,
			Actual: count,
		}
	}
	if err := r.addSize(int(count)); err != nil {
		return nil, err
	}
	return r.ReadOpaque(int(count))
}

func (c varOpaqueCodec) ToJSON(v []byte) (any, error) {
	if err := checkVarLen(len(v), c.max); err != nil {
		return nil, err
	}
	return hex.EncodeToString(v), nil
}

func (c varOpaqueCodec) FromJSON(j any) ([]byte, error) {
	s, err := jsonString(j)
	if err != nil {
		return nil, err
	}
	ret, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	if err := checkVarLen(len(ret), c.max); err != nil {
		return nil, err
	}
	return ret, nil
}

// String returns a codec for a length-prefixed UTF-8 string of at most
// max bytes. Pass MaxLength for no declared bound.
func String(max uint32) Codec[string] {
	return stringCodec{max: max}
}

type stringCodec struct {
	max uint32
}

func (c stringCodec) Encode(w *Writer, v string) error {
	if err := checkVarLen(len(v), c.max); err != nil {
		return err
	}
	if !utf8.ValidString(v) {
		return fmt.Errorf("string is not valid UTF-8")
	}
	w.WriteUint32(uint32(len(v)))
	w.WriteOpaque([]byte(v))
	return nil
}

func (c stringCodec) Decode(r *Reader) (string, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	if count > c.max {
		return "", LengthExceedsMaxError{
			Max:    c.max,
			Actual: count,
		}
	}
	if err := r.addSize(int(count)); err != nil {
		return "", err
	}
	b, err := r.ReadOpaque(int(count))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("string is not valid UTF-8")
	}
	return string(b), nil
}

func (c stringCodec) ToJSON(v string) (any, error) {
	if err := checkVarLen(len(v), c.max); err != nil {
		return nil, err
	}
	return v, nil
}

func (c stringCodec) FromJSON(j any) (string, error) {
	s, err := jsonString(j)
	if err != nil {
		return "", err
	}
	if err := checkVarLen(len(s), c.max); err != nil {
		return "", err
	}
	return s, nil
}

// FixedArray returns a codec for an array of exactly n elements
func FixedArray[T any](n uint32, elem Codec[T]) Codec[[]T] {
	return fixedArrayCodec[T]{size: n, elem: elem}
}

type fixedArrayCodec[T any] struct {
	size uint32
	elem Codec[T]
}

func (c fixedArrayCodec[T]) Encode(w *Writer, v []T) error {
	if uint32(len(v)) != c.size {
		return LengthMismatchError{
			Expected: int(c.size),
			Actual:   len(v),
		}
	}
	for i := range v {
		if err := c.elem.Encode(w, v[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c fixedArrayCodec[T]) Decode(r *Reader) ([]T, error) {
	if err := r.enterNested(); err != nil {
		return nil, err
	}
	defer r.leaveNested()
	if err := r.addSize(int(c.size)); err != nil {
		return nil, err
	}
	return decodeElems(r, c.elem, c.size)
}

func (c fixedArrayCodec[T]) ToJSON(v []T) (any, error) {
	if uint32(len(v)) != c.size {
		return nil, LengthMismatchError{
			Expected: int(c.size),
			Actual:   len(v),
		}
	}
	return elemsToJSON(c.elem, v)
}

func (c fixedArrayCodec[T]) FromJSON(j any) ([]T, error) {
	arr, err := jsonArray(j)
	if err != nil {
		return nil, err
	}
	if uint32(len(arr)) != c.size {
		return nil, LengthMismatchError{
			Expected: int(c.size),
			Actual:   len(arr),
		}
	}
	return elemsFromJSON(c.elem, arr)
}

// VarArray returns a codec for a count-prefixed array of at most max
// elements. Pass MaxLength for no declared bound.
func VarArray[T any](max uint32, elem Codec[T]) Codec[[]T] {
	return varArrayCodec[T]{max: max, elem: elem}
}

type varArrayCodec[T any] struct {
	max  uint32
	elem Codec[T]
}

func (c varArrayCodec[T]) Encode(w *Writer, v []T) error {
	if err := checkVarLen(len(v), c.max); err != nil {
		return err
	}
	w.WriteUint32(uint32(len(v)))
	for i := range v {
		if err := c.elem.Encode(w, v[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c varArrayCodec[T]) Decode(r *Reader) ([]T, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if count > c.max {
		return nil, LengthExceedsMaxError{
			Max:    c.max,
			Actual: count,
		}
	}
	if err := r.enterNested(); err != nil {
		return nil, err
	}
	defer r.leaveNested()
	if err := r.addSize(int(count)); err != nil {
		return nil, err
	}
	return decodeElems(r, c.elem, count)
}

func (c varArrayCodec[T]) ToJSON(v []T) (any, error) {
	if err := checkVarLen(len(v), c.max); err != nil {
		return nil, err
	}
	return elemsToJSON(c.elem, v)
}

func (c varArrayCodec[T]) FromJSON(j any) ([]T, error) {
	arr, err := jsonArray(j)
	if err != nil {
		return nil, err
	}
	if err := checkVarLen(len(arr), c.max); err != nil {
		return nil, err
	}
	return elemsFromJSON(c.elem, arr)
}

// Option returns a codec for an optional value: a 4-byte presence flag
// followed by the value when present. A nil pointer is absent; the JSON
// mirror maps absent to null.
func Option[T any](elem Codec[T]) Codec[*T] {
	return optionCodec[T]{elem: elem}
}

type optionCodec[T any] struct {
	elem Codec[T]
}

func (c optionCodec[T]) Encode(w *Writer, v *T) error {
	if v == nil {
		w.WriteUint32(0)
		return nil
	}
	w.WriteUint32(1)
	return c.elem.Encode(w, *v)
}

func (c optionCodec[T]) Decode(r *Reader) (*T, error) {
	flag, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	switch flag {
	case 0:
		return nil, nil
	case 1:
		if err := r.enterNested(); err != nil {
			return nil, err
		}
		defer r.leaveNested()
		v, err := c.elem.Decode(r)
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, fmt.Errorf("invalid option flag: %d", flag)
	}
}

func (c optionCodec[T]) ToJSON(v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	return c.elem.ToJSON(*v)
}

func (c optionCodec[T]) FromJSON(j any) (*T, error) {
	if j == nil {
		return nil, nil
	}
	v, err := c.elem.FromJSON(j)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func checkVarLen(n int, max uint32) error {
	if uint64(n) > uint64(max) {
		return LengthExceedsMaxError{
			Max:    max,
			Actual: uint32(n),
		}
	}
	return nil
}

// decodeElems decodes count elements. The count comes from the wire, so
// it is not trusted for preallocation; each element consumes input, which
// bounds growth naturally.
func decodeElems[T any](r *Reader, elem Codec[T], count uint32) ([]T, error) {
	capHint := int(count)
	if capHint > 4096 {
		capHint = 4096
	}
	ret := make([]T, 0, capHint)
	for i := uint32(0); i < count; i++ {
		v, err := elem.Decode(r)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func elemsToJSON[T any](elem Codec[T], v []T) (any, error) {
	ret := make([]any, 0, len(v))
	for i := range v {
		j, err := elem.ToJSON(v[i])
		if err != nil {
			return nil, err
		}
		ret = append(ret, j)
	}
	return ret, nil
}

func elemsFromJSON[T any](elem Codec[T], arr []any) ([]T, error) {
	ret := make([]T, 0, len(arr))
	for i := range arr {
		v, err := elem.FromJSON(arr[i])
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}
