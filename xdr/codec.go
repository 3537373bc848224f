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
	"encoding/base64"
	"fmt"
)

// Codec is a stateless, immutable encoder/decoder for values of type T.
// Codecs are built once at startup and are safe for concurrent use; all
// per-call state lives in the Writer/Reader.
//
// ToJSON/FromJSON implement the JSON mirror of the binary form: 32-bit
// numerics as JSON numbers, 64-bit integers as decimal strings, opaque
// bytes as lowercase hex strings, enums as mnemonic strings.
type Codec[T any] interface {
	Encode(w *Writer, v T) error
	Decode(r *Reader) (T, error)
	ToJSON(v T) (any, error)
	FromJSON(j any) (T, error)
}

// AnyCodec is a type-erased Codec, used wherever heterogeneous codecs are
// composed (struct fields, union arms, lazy cells)
type AnyCodec = Codec[any]

type erasedCodec[T any] struct {
	inner Codec[T]
}

// Erase adapts a typed Codec to an AnyCodec. Encoding a value of the
// wrong dynamic type fails rather than panicking.
func Erase[T any](c Codec[T]) AnyCodec {
	if ac, ok := any(c).(AnyCodec); ok {
		return ac
	}
	return erasedCodec[T]{inner: c}
}

func (c erasedCodec[T]) Encode(w *Writer, v any) error {
	tv, ok := v.(T)
	if !ok {
		return fmt.Errorf("unexpected value type: %T", v)
	}
	return c.inner.Encode(w, tv)
}

func (c erasedCodec[T]) Decode(r *Reader) (any, error) {
	v, err := c.inner.Decode(r)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c erasedCodec[T]) ToJSON(v any) (any, error) {
	tv, ok := v.(T)
	if !ok {
		return nil, fmt.Errorf("unexpected value type: %T", v)
	}
	return c.inner.ToJSON(tv)
}

func (c erasedCodec[T]) FromJSON(j any) (any, error) {
	v, err := c.inner.FromJSON(j)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Marshal encodes a value to its XDR byte representation
func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	w := NewWriter()
	if err := c.Encode(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes a value from its XDR byte representation using
// DefaultDecodeLimits. The input must be fully consumed: trailing bytes
// are an error, matching the rule that decode never produces a partially
// valid result.
func Unmarshal[T any](c Codec[T], data []byte) (T, error) {
	return UnmarshalWithLimits(c, data, DefaultDecodeLimits)
}

// UnmarshalWithLimits is Unmarshal with caller-provided decode limits
func UnmarshalWithLimits[T any](
	c Codec[T],
	data []byte,
	limits DecodeLimits,
) (T, error) {
	var zero T
	r := NewReaderWithLimits(data, limits)
	v, err := c.Decode(r)
	if err != nil {
		return zero, err
	}
	if n := r.Remaining(); n > 0 {
		return zero, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, n)
	}
	return v, nil
}

// MarshalBase64 encodes a value and returns the standard base64 form
func MarshalBase64[T any](c Codec[T], v T) (string, error) {
	data, err := Marshal(c, v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// UnmarshalBase64 decodes a value from its standard base64 form
func UnmarshalBase64[T any](c Codec[T], s string) (T, error) {
	var zero T
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return zero, err
	}
	return Unmarshal(c, data)
}

// Valid reports whether data is a complete, well-formed encoding for the
// given codec. The decoded value is discarded.
func Valid[T any](c Codec[T], data []byte) bool {
	_, err := Unmarshal(c, data)
	return err == nil
}
