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

package strkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase32RoundTrip(t *testing.T) {
	for length := 0; length < 12; length++ {
		src := make([]byte, length)
		for i := range src {
			src[i] = byte(i*37 + 11)
		}
		encoded, err := base32Encode(src)
		require.NoError(t, err)
		decoded, err := base32Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, src, decoded, "length %d", length)
	}
}

func TestBase32Encode(t *testing.T) {
	testDefs := []struct {
		src      []byte
		expected string
	}{
		{src: []byte{}, expected: ""},
		{src: []byte{0x00}, expected: "AA"},
		{src: []byte{0xff}, expected: "74"},
		{src: []byte("fooba"), expected: "MZXW6YTB"},
	}
	for _, testDef := range testDefs {
		encoded, err := base32Encode(testDef.src)
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, encoded)
	}
}

func TestBase32DecodeRejects(t *testing.T) {
	testDefs := []struct {
		name string
		src  string
		err  error
	}{
		// '1' and '8' are outside the alphabet, as is lowercase
		{name: "invalid char digit", src: "A1", err: ErrInvalidBase32},
		{name: "invalid char lowercase", src: "mzxw", err: ErrInvalidBase32},
		{name: "invalid char punctuation", src: "A=", err: ErrInvalidBase32},
		// A single char carries only 5 bits, less than one byte
		{name: "dangling char", src: "A", err: ErrInvalidBase32},
		// "AB" decodes to 0x00 with residual bits 01, which no encoder
		// output ever has
		{name: "trailing bits", src: "AB", err: ErrInvalidBase32},
		// "fo" encodes to "MZXQ"; "MZXW" has the same bytes but non-zero
		// residual bits
		{name: "trailing bits long", src: "MZXW", err: ErrInvalidBase32},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := base32Decode(testDef.src)
			assert.ErrorIs(t, err, testDef.err)
		})
	}
}
