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
	"encoding/binary"
)

// VersionByte selects the strkey kind. The value is the base32 alphabet
// index of the leading character shifted left by 3, so each kind gets a
// fixed leading letter.
type VersionByte byte

const (
	VersionByteEd25519PublicKey  VersionByte = 6 << 3  // 'G'
	VersionByteEd25519PrivateKey VersionByte = 18 << 3 // 'S'
	VersionBytePreAuthTx         VersionByte = 19 << 3 // 'T'
	VersionByteHashX             VersionByte = 23 << 3 // 'X'
	VersionByteContract          VersionByte = 2 << 3  // 'C'
	VersionByteLiquidityPool     VersionByte = 11 << 3 // 'L'
	VersionByteMuxedEd25519      VersionByte = 12 << 3 // 'M'
	VersionByteSignedPayload     VersionByte = 15 << 3 // 'P'
	VersionByteClaimableBalance  VersionByte = 1 << 3  // 'B'
)

func isValidVersionByte(v VersionByte) bool {
	switch v {
	case VersionByteEd25519PublicKey,
		VersionByteEd25519PrivateKey,
		VersionBytePreAuthTx,
		VersionByteHashX,
		VersionByteContract,
		VersionByteLiquidityPool,
		VersionByteMuxedEd25519,
		VersionByteSignedPayload,
		VersionByteClaimableBalance:
		return true
	default:
		return false
	}
}

// Encode returns the checksummed base32 form of the given raw payload:
// base32(version || payload || crc16(version || payload)) with the CRC
// appended little-endian
func Encode(version VersionByte, payload []byte) (string, error) {
	if !isValidVersionByte(version) {
		return "", InvalidVersionByteError{Version: byte(version)}
	}
	raw := make([]byte, 0, len(payload)+3)
	raw = append(raw, byte(version))
	raw = append(raw, payload...)
	raw = binary.LittleEndian.AppendUint16(raw, crc16Checksum(raw))
	return base32Encode(raw)
}

// DecodeAny decodes a strkey of any kind, returning its version byte and
// raw payload. The checksum is verified and the version byte must be one
// of the known kinds; payload shape validation per kind is left to
// FromString.
func DecodeAny(src string) (VersionByte, []byte, error) {
	raw, err := base32Decode(src)
	if err != nil {
		return 0, nil, err
	}
	if len(raw) < 3 {
		return 0, nil, PayloadLengthError{
			Expected: 3,
			Actual:   len(raw),
		}
	}
	body := raw[:len(raw)-2]
	expected := binary.LittleEndian.Uint16(raw[len(raw)-2:])
	if actual := crc16Checksum(body); actual != expected {
		return 0, nil, ChecksumMismatchError{
			Expected: expected,
			Actual:   actual,
		}
	}
	version := VersionByte(body[0])
	if !isValidVersionByte(version) {
		return 0, nil, InvalidVersionByteError{Version: body[0]}
	}
	return version, body[1:], nil
}

// Decode decodes a strkey and checks it carries the expected version
// byte
func Decode(expected VersionByte, src string) ([]byte, error) {
	version, payload, err := DecodeAny(src)
	if err != nil {
		return nil, err
	}
	if version != expected {
		return nil, InvalidVersionByteError{Version: byte(version)}
	}
	return payload, nil
}
