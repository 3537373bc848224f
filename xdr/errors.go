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
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. The concrete error types below
// carry the expected/actual context for each failure.
var (
	ErrLengthMismatch           = errors.New("length mismatch")
	ErrLengthExceedsMax         = errors.New("length exceeds maximum")
	ErrInvalidEnumValue         = errors.New("invalid enum value")
	ErrInvalidUnionDiscriminant = errors.New("invalid union discriminant")
	ErrTruncated                = errors.New("unexpected end of data")
	ErrLimitExceeded            = errors.New("decode limit exceeded")
	ErrTrailingBytes            = errors.New("trailing bytes after value")
)

// LengthMismatchError indicates a fixed-size container value of the wrong length
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf(
		"length mismatch: expected %d, got %d",
		e.Expected,
		e.Actual,
	)
}

func (LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// LengthExceedsMaxError indicates a variable-size container over its declared bound
type LengthExceedsMaxError struct {
	Max    uint32
	Actual uint32
}

func (e LengthExceedsMaxError) Error() string {
	return fmt.Sprintf(
		"length %d exceeds maximum %d",
		e.Actual,
		e.Max,
	)
}

func (LengthExceedsMaxError) Is(target error) bool {
	return target == ErrLengthExceedsMax
}

// InvalidEnumValueError indicates an enum name or code outside the schema
type InvalidEnumValueError struct {
	Value any
}

func (e InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid enum value: %v", e.Value)
}

func (InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// InvalidUnionDiscriminantError indicates a discriminant that selects no arm
type InvalidUnionDiscriminantError struct {
	Value any
}

func (e InvalidUnionDiscriminantError) Error() string {
	return fmt.Sprintf("invalid union discriminant: %v", e.Value)
}

func (InvalidUnionDiscriminantError) Is(target error) bool {
	return target == ErrInvalidUnionDiscriminant
}

// TruncatedError indicates a read past the end of the input buffer
type TruncatedError struct {
	Needed    int
	Remaining int
}

func (e TruncatedError) Error() string {
	return fmt.Sprintf(
		"unexpected end of data: need %d bytes, have %d",
		e.Needed,
		e.Remaining,
	)
}

func (TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// LimitExceededError indicates the decode limit tracker rejected the input
type LimitExceededError struct {
	Limit string // "depth" or "size"
	Max   int
}

func (e LimitExceededError) Error() string {
	return fmt.Sprintf("decode %s limit exceeded: max %d", e.Limit, e.Max)
}

func (LimitExceededError) Is(target error) bool {
	return target == ErrLimitExceeded
}
