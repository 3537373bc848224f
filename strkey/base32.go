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
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// RFC 4648 base32 without padding. The stdlib encoding is not usable
// here: decode must reject a final group with non-zero unused bits so
// that every accepted string re-encodes to itself.

const base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// Reverse lookup table, -1 for characters outside the alphabet
var base32DecodeTable = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(base32Alphabet); i++ {
		table[base32Alphabet[i]] = int8(i)
	}
	return table
}()

// base32Encode encodes src as unpadded RFC 4648 base32
func base32Encode(src []byte) (string, error) {
	groups, err := bech32.ConvertBits(src, 8, 5, true)
	if err != nil {
		return "", err
	}
	ret := make([]byte, 0, len(groups))
	for _, g := range groups {
		ret = append(ret, base32Alphabet[g])
	}
	return string(ret), nil
}

// base32Decode decodes an unpadded RFC 4648 base32 string, rejecting
// characters outside the alphabet and non-canonical trailing bits
func base32Decode(s string) ([]byte, error) {
	ret := make([]byte, 0, len(s)*5/8)
	var acc uint16
	var bits uint
	for i := 0; i < len(s); i++ {
		v := base32DecodeTable[s[i]]
		if v < 0 {
			return nil, InvalidBase32CharError{Char: s[i]}
		}
		acc = acc<<5 | uint16(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			ret = append(ret, byte(acc>>bits))
			acc &= 1<<bits - 1
		}
	}
	// A whole dangling character can never be produced by the encoder,
	// and the unused low bits of the final group must be zero
	if bits >= 5 || acc != 0 {
		return nil, NonCanonicalBase32Error{}
	}
	return ret, nil
}
