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
	"fmt"
	"strconv"
)

// Leaf codecs for the XDR primitive types. 64-bit integers mirror to
// decimal strings because JSON numbers cannot hold 64-bit precision.
var (
	Int32   Codec[int32]   = int32Codec{}
	Uint32  Codec[uint32]  = uint32Codec{}
	Int64   Codec[int64]   = int64Codec{}
	Uint64  Codec[uint64]  = uint64Codec{}
	Float32 Codec[float32] = float32Codec{}
	Float64 Codec[float64] = float64Codec{}
	Bool    Codec[bool]    = boolCodec{}
)

type int32Codec struct{}

func (int32Codec) Encode(w *Writer, v int32) error {
	w.WriteInt32(v)
	return nil
}

func (int32Codec) Decode(r *Reader) (int32, error) {
	return r.ReadInt32()
}

func (int32Codec) ToJSON(v int32) (any, error) {
	return v, nil
}

func (int32Codec) FromJSON(j any) (int32, error) {
	return jsonInt32(j)
}

type uint32Codec struct{}

func (uint32Codec) Encode(w *Writer, v uint32) error {
	w.WriteUint32(v)
	return nil
}

func (uint32Codec) Decode(r *Reader) (uint32, error) {
	return r.ReadUint32()
}

func (uint32Codec) ToJSON(v uint32) (any, error) {
	return v, nil
}

func (uint32Codec) FromJSON(j any) (uint32, error) {
	return jsonUint32(j)
}

type int64Codec struct{}

func (int64Codec) Encode(w *Writer, v int64) error {
	w.WriteInt64(v)
	return nil
}

func (int64Codec) Decode(r *Reader) (int64, error) {
	return r.ReadInt64()
}

func (int64Codec) ToJSON(v int64) (any, error) {
	return strconv.FormatInt(v, 10), nil
}

func (int64Codec) FromJSON(j any) (int64, error) {
	return jsonInt64(j)
}

type uint64Codec struct{}

func (uint64Codec) Encode(w *Writer, v uint64) error {
	w.WriteUint64(v)
	return nil
}

func (uint64Codec) Decode(r *Reader) (uint64, error) {
	return r.ReadUint64()
}

func (uint64Codec) ToJSON(v uint64) (any, error) {
	return strconv.FormatUint(v, 10), nil
}

func (uint64Codec) FromJSON(j any) (uint64, error) {
	return jsonUint64(j)
}

type float32Codec struct{}

func (float32Codec) Encode(w *Writer, v float32) error {
	w.WriteFloat32(v)
	return nil
}

func (float32Codec) Decode(r *Reader) (float32, error) {
	return r.ReadFloat32()
}

func (float32Codec) ToJSON(v float32) (any, error) {
	return float64(v), nil
}

func (float32Codec) FromJSON(j any) (float32, error) {
	v, err := jsonFloat64(j)
	return float32(v), err
}

type float64Codec struct{}

func (float64Codec) Encode(w *Writer, v float64) error {
	w.WriteFloat64(v)
	return nil
}

func (float64Codec) Decode(r *Reader) (float64, error) {
	return r.ReadFloat64()
}

func (float64Codec) ToJSON(v float64) (any, error) {
	return v, nil
}

func (float64Codec) FromJSON(j any) (float64, error) {
	return jsonFloat64(j)
}

type boolCodec struct{}

func (boolCodec) Encode(w *Writer, v bool) error {
	w.WriteBool(v)
	return nil
}

// Decode rejects wire values other than 0 and 1 rather than coercing
func (boolCodec) Decode(r *Reader) (bool, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("invalid bool value: %d", v)
	}
}

func (boolCodec) ToJSON(v bool) (any, error) {
	return v, nil
}

func (boolCodec) FromJSON(j any) (bool, error) {
	return jsonBool(j)
}

// Void is the value of the XDR void type
type Void struct{}

// VoidCodec consumes and produces no bytes on the wire; its JSON mirror
// is null
var VoidCodec Codec[Void] = voidCodec{}

type voidCodec struct{}

func (voidCodec) Encode(w *Writer, v Void) error {
	return nil
}

func (voidCodec) Decode(r *Reader) (Void, error) {
	return Void{}, nil
}

func (voidCodec) ToJSON(v Void) (any, error) {
	return nil, nil
}

func (voidCodec) FromJSON(j any) (Void, error) {
	if j != nil {
		return Void{}, fmt.Errorf("unexpected JSON value for void: %T", j)
	}
	return Void{}, nil
}
