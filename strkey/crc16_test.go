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
)

func TestCrc16Checksum(t *testing.T) {
	testDefs := []struct {
		data     []byte
		expected uint16
	}{
		{data: []byte{}, expected: 0x0000},
		// CRC-16/XMODEM check value
		{data: []byte("123456789"), expected: 0x31c3},
		{data: []byte{0x00}, expected: 0x0000},
		{data: []byte{0x01}, expected: 0x1021},
	}
	for _, testDef := range testDefs {
		assert.Equal(
			t,
			testDef.expected,
			crc16Checksum(testDef.data),
			"data %x",
			testDef.data,
		)
	}
}

func TestCrc16SingleBitError(t *testing.T) {
	data := []byte("strkey checksum coverage")
	base := crc16Checksum(data)
	for i := range data {
		for bit := 0; bit < 8; bit++ {
			flipped := make([]byte, len(data))
			copy(flipped, data)
			flipped[i] ^= 1 << bit
			assert.NotEqual(t, base, crc16Checksum(flipped))
		}
	}
}
