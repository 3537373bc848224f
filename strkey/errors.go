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
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is
var (
	ErrInvalidBase32      = errors.New("invalid base32")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrInvalidVersionByte = errors.New("invalid version byte")
	ErrInvalidPayload     = errors.New("invalid payload")
)

// InvalidBase32CharError indicates a character outside the RFC 4648
// alphabet
type InvalidBase32CharError struct {
	Char byte
}

func (e InvalidBase32CharError) Error() string {
	return fmt.Sprintf("invalid base32 character: %q", e.Char)
}

func (InvalidBase32CharError) Is(target error) bool {
	return target == ErrInvalidBase32
}

// NonCanonicalBase32Error indicates a final group with non-zero unused
// bits. Such strings are syntactically parseable but do not round-trip,
// so they are rejected.
type NonCanonicalBase32Error struct{}

func (NonCanonicalBase32Error) Error() string {
	return "non-canonical base32: non-zero trailing bits"
}

func (NonCanonicalBase32Error) Is(target error) bool {
	return target == ErrInvalidBase32
}

// ChecksumMismatchError indicates the trailing CRC16 did not match the
// recomputed value
type ChecksumMismatchError struct {
	Expected uint16
	Actual   uint16
}

func (e ChecksumMismatchError) Error() string {
	return fmt.Sprintf(
		"checksum mismatch: expected %04x, got %04x",
		e.Expected,
		e.Actual,
	)
}

func (ChecksumMismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}

// InvalidVersionByteError indicates a version byte outside the known
// strkey kinds
type InvalidVersionByteError struct {
	Version byte
}

func (e InvalidVersionByteError) Error() string {
	return fmt.Sprintf("invalid version byte: 0x%02x", e.Version)
}

func (InvalidVersionByteError) Is(target error) bool {
	return target == ErrInvalidVersionByte
}

// PayloadLengthError indicates a payload of the wrong length for its
// strkey kind
type PayloadLengthError struct {
	Expected int
	Actual   int
}

func (e PayloadLengthError) Error() string {
	return fmt.Sprintf(
		"invalid payload length: expected %d, got %d",
		e.Expected,
		e.Actual,
	)
}

func (PayloadLengthError) Is(target error) bool {
	return target == ErrInvalidPayload
}

// SignedPayloadLengthError indicates an inner signed payload longer than
// the 64-byte maximum
type SignedPayloadLengthError struct {
	Length int
}

func (e SignedPayloadLengthError) Error() string {
	return fmt.Sprintf(
		"signed payload too long: %d bytes (max 64)",
		e.Length,
	)
}

func (SignedPayloadLengthError) Is(target error) bool {
	return target == ErrInvalidPayload
}

// SignedPayloadPaddingError indicates non-zero bytes in the alignment
// padding of a signed payload
type SignedPayloadPaddingError struct{}

func (SignedPayloadPaddingError) Error() string {
	return "signed payload has non-zero padding"
}

func (SignedPayloadPaddingError) Is(target error) bool {
	return target == ErrInvalidPayload
}
