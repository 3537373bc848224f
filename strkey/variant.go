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
	"fmt"

	"filippo.io/edwards25519"
)

const (
	// MaxSignedPayloadLength is the maximum inner payload length of a
	// signed-payload strkey
	MaxSignedPayloadLength = 64

	claimableBalanceSubtypeV0 = 0
)

// Strkey is one of the nine typed strkey shapes. The set is closed: only
// the types in this package implement it.
type Strkey interface {
	Version() VersionByte
	isStrkey()
}

// Ed25519PublicKey is a 'G' address
type Ed25519PublicKey [32]byte

// Ed25519PrivateKey is an 'S' seed
type Ed25519PrivateKey [32]byte

// PreAuthTx is a 'T' pre-authorized transaction hash
type PreAuthTx [32]byte

// HashX is an 'X' SHA-256 preimage hash
type HashX [32]byte

// Contract is a 'C' contract identifier
type Contract [32]byte

// LiquidityPool is an 'L' liquidity pool identifier
type LiquidityPool [32]byte

// ClaimableBalanceV0 is a 'B' claimable balance identifier (subtype 0)
type ClaimableBalanceV0 [32]byte

// MuxedAccountEd25519 is an 'M' address: a base ed25519 key plus a
// 64-bit sub-account id
type MuxedAccountEd25519 struct {
	Key [32]byte
	ID  uint64
}

// SignedPayloadEd25519 is a 'P' signer: an ed25519 key plus an inner
// payload of at most MaxSignedPayloadLength bytes
type SignedPayloadEd25519 struct {
	Key     [32]byte
	Payload []byte
}

func (Ed25519PublicKey) Version() VersionByte  { return VersionByteEd25519PublicKey }
func (Ed25519PrivateKey) Version() VersionByte { return VersionByteEd25519PrivateKey }
func (PreAuthTx) Version() VersionByte         { return VersionBytePreAuthTx }
func (HashX) Version() VersionByte             { return VersionByteHashX }
func (Contract) Version() VersionByte          { return VersionByteContract }
func (LiquidityPool) Version() VersionByte     { return VersionByteLiquidityPool }
func (ClaimableBalanceV0) Version() VersionByte {
	return VersionByteClaimableBalance
}
func (MuxedAccountEd25519) Version() VersionByte { return VersionByteMuxedEd25519 }
func (SignedPayloadEd25519) Version() VersionByte {
	return VersionByteSignedPayload
}

func (Ed25519PublicKey) isStrkey()     {}
func (Ed25519PrivateKey) isStrkey()    {}
func (PreAuthTx) isStrkey()            {}
func (HashX) isStrkey()                {}
func (Contract) isStrkey()             {}
func (LiquidityPool) isStrkey()        {}
func (ClaimableBalanceV0) isStrkey()   {}
func (MuxedAccountEd25519) isStrkey()  {}
func (SignedPayloadEd25519) isStrkey() {}

// ToString encodes a typed strkey to its checksummed base32 text form
func ToString(k Strkey) (string, error) {
	switch v := k.(type) {
	case Ed25519PublicKey:
		return Encode(VersionByteEd25519PublicKey, v[:])
	case Ed25519PrivateKey:
		return Encode(VersionByteEd25519PrivateKey, v[:])
	case PreAuthTx:
		return Encode(VersionBytePreAuthTx, v[:])
	case HashX:
		return Encode(VersionByteHashX, v[:])
	case Contract:
		return Encode(VersionByteContract, v[:])
	case LiquidityPool:
		return Encode(VersionByteLiquidityPool, v[:])
	case ClaimableBalanceV0:
		payload := make([]byte, 0, 33)
		payload = append(payload, claimableBalanceSubtypeV0)
		payload = append(payload, v[:]...)
		return Encode(VersionByteClaimableBalance, payload)
	case MuxedAccountEd25519:
		payload := make([]byte, 0, 40)
		payload = append(payload, v.Key[:]...)
		payload = binary.BigEndian.AppendUint64(payload, v.ID)
		return Encode(VersionByteMuxedEd25519, payload)
	case SignedPayloadEd25519:
		if len(v.Payload) > MaxSignedPayloadLength {
			return "", SignedPayloadLengthError{Length: len(v.Payload)}
		}
		pad := (4 - len(v.Payload)%4) % 4
		payload := make([]byte, 0, 36+len(v.Payload)+pad)
		payload = append(payload, v.Key[:]...)
		payload = binary.BigEndian.AppendUint32(
			payload,
			uint32(len(v.Payload)),
		)
		payload = append(payload, v.Payload...)
		for i := 0; i < pad; i++ {
			payload = append(payload, 0)
		}
		return Encode(VersionByteSignedPayload, payload)
	default:
		return "", fmt.Errorf("unexpected strkey type: %T", k)
	}
}

// FromString decodes a strkey string into its typed variant, validating
// the payload shape for its kind
func FromString(src string) (Strkey, error) {
	version, payload, err := DecodeAny(src)
	if err != nil {
		return nil, err
	}
	switch version {
	case VersionByteEd25519PublicKey:
		b, err := payload32(payload)
		if err != nil {
			return nil, err
		}
		return Ed25519PublicKey(b), nil
	case VersionByteEd25519PrivateKey:
		b, err := payload32(payload)
		if err != nil {
			return nil, err
		}
		return Ed25519PrivateKey(b), nil
	case VersionBytePreAuthTx:
		b, err := payload32(payload)
		if err != nil {
			return nil, err
		}
		return PreAuthTx(b), nil
	case VersionByteHashX:
		b, err := payload32(payload)
		if err != nil {
			return nil, err
		}
		return HashX(b), nil
	case VersionByteContract:
		b, err := payload32(payload)
		if err != nil {
			return nil, err
		}
		return Contract(b), nil
	case VersionByteLiquidityPool:
		b, err := payload32(payload)
		if err != nil {
			return nil, err
		}
		return LiquidityPool(b), nil
	case VersionByteClaimableBalance:
		if len(payload) != 33 {
			return nil, PayloadLengthError{
				Expected: 33,
				Actual:   len(payload),
			}
		}
		if payload[0] != claimableBalanceSubtypeV0 {
			return nil, fmt.Errorf(
				"%w: unknown claimable balance subtype %d",
				ErrInvalidPayload,
				payload[0],
			)
		}
		return ClaimableBalanceV0([32]byte(payload[1:])), nil
	case VersionByteMuxedEd25519:
		if len(payload) != 40 {
			return nil, PayloadLengthError{
				Expected: 40,
				Actual:   len(payload),
			}
		}
		return MuxedAccountEd25519{
			Key: [32]byte(payload[:32]),
			ID:  binary.BigEndian.Uint64(payload[32:]),
		}, nil
	case VersionByteSignedPayload:
		return signedPayloadFromBytes(payload)
	default:
		return nil, InvalidVersionByteError{Version: byte(version)}
	}
}

func signedPayloadFromBytes(payload []byte) (Strkey, error) {
	if len(payload) < 36 {
		return nil, PayloadLengthError{
			Expected: 36,
			Actual:   len(payload),
		}
	}
	innerLen := binary.BigEndian.Uint32(payload[32:36])
	if innerLen > MaxSignedPayloadLength {
		return nil, SignedPayloadLengthError{Length: int(innerLen)}
	}
	pad := (4 - int(innerLen)%4) % 4
	if len(payload) != 36+int(innerLen)+pad {
		return nil, PayloadLengthError{
			Expected: 36 + int(innerLen) + pad,
			Actual:   len(payload),
		}
	}
	for _, b := range payload[36+innerLen:] {
		if b != 0 {
			return nil, SignedPayloadPaddingError{}
		}
	}
	inner := make([]byte, innerLen)
	copy(inner, payload[36:36+innerLen])
	return SignedPayloadEd25519{
		Key:     [32]byte(payload[:32]),
		Payload: inner,
	}, nil
}

func payload32(payload []byte) ([32]byte, error) {
	var ret [32]byte
	if len(payload) != 32 {
		return ret, PayloadLengthError{
			Expected: 32,
			Actual:   len(payload),
		}
	}
	copy(ret[:], payload)
	return ret, nil
}

// String returns the text form; encoding a fixed-size key cannot fail
func (k Ed25519PublicKey) String() string {
	ret, _ := ToString(k)
	return ret
}

func (k Ed25519PrivateKey) String() string {
	ret, _ := ToString(k)
	return ret
}

func (k PreAuthTx) String() string {
	ret, _ := ToString(k)
	return ret
}

func (k HashX) String() string {
	ret, _ := ToString(k)
	return ret
}

func (k Contract) String() string {
	ret, _ := ToString(k)
	return ret
}

func (k LiquidityPool) String() string {
	ret, _ := ToString(k)
	return ret
}

func (k ClaimableBalanceV0) String() string {
	ret, _ := ToString(k)
	return ret
}

func (k MuxedAccountEd25519) String() string {
	ret, _ := ToString(k)
	return ret
}

// IsValidEd25519PublicKey reports whether the raw key bytes decode to a
// canonical edwards25519 curve point. Strkey validity itself is checksum
// and shape only; this is an extra check for callers that need a usable
// verification key.
func IsValidEd25519PublicKey(pub []byte) bool {
	if len(pub) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(pub)
	return err == nil
}
