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
	"encoding/binary"
	"math"
)

// Reader consumes big-endian XDR-encoded bytes from a fixed buffer. Every
// read is bounds-checked against the remaining length, and the embedded
// limit counters are consulted by container and composite codecs. A Reader
// is scoped to a single decode call and must not be shared.
type Reader struct {
	data   []byte
	pos    int
	limits DecodeLimits
	depth  int
	size   int
}

// NewReader returns a Reader over data using DefaultDecodeLimits
func NewReader(data []byte) *Reader {
	return NewReaderWithLimits(data, DefaultDecodeLimits)
}

// NewReaderWithLimits returns a Reader over data with explicit limits
func NewReaderWithLimits(data []byte, limits DecodeLimits) *Reader {
	return &Reader{
		data:   data,
		limits: limits,
	}
}

// Position returns the number of bytes consumed so far
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unconsumed bytes
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// take returns the next n bytes without copying, or a TruncatedError if
// fewer than n remain
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, TruncatedError{
			Needed:    n,
			Remaining: r.Remaining(),
		}
	}
	ret := r.data[r.pos : r.pos+n]
	r.pos += n
	return ret, nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadOpaque reads n payload bytes plus the trailing alignment padding.
// The padding must be present in the buffer but its content is not
// validated here; sub-formats with zero-padding requirements (e.g. strkey
// signed payloads) enforce that themselves. The returned slice is a copy.
func (r *Reader) ReadOpaque(n int) ([]byte, error) {
	pad := paddingLen(n)
	b, err := r.take(n + pad)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, n)
	copy(ret, b[:n])
	return ret, nil
}

// enterNested records one level of container/composite nesting, failing
// once MaxDepth is exceeded. Callers must pair it with leaveNested.
func (r *Reader) enterNested() error {
	r.depth++
	if r.depth > r.limits.MaxDepth {
		return LimitExceededError{
			Limit: "depth",
			Max:   r.limits.MaxDepth,
		}
	}
	return nil
}

func (r *Reader) leaveNested() {
	r.depth--
}

// addSize charges n units (bytes or elements) against the cumulative size
// limit for this decode call
func (r *Reader) addSize(n int) error {
	if n > r.limits.MaxSize-r.size {
		return LimitExceededError{
			Limit: "size",
			Max:   r.limits.MaxSize,
		}
	}
	r.size += n
	return nil
}
