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

// Package xdr implements the XDR wire format used by the Stellar network:
// big-endian, length-prefixed, 4-byte-aligned binary encoding, plus a
// structurally isomorphic JSON mirror.
//
// # Building codecs
//
// Codecs are built once at startup from primitives (Int32, Uint64, Bool,
// ...), container combinators (FixedOpaque, VarOpaque, String,
// FixedArray, VarArray, Option) and composite builders (NewStruct,
// NewEnum, NewUnion, Lazy). A codec holds no mutable state and is safe
// for concurrent use.
//
//	price, _ := xdr.NewStruct(
//	    xdr.NewField("n", xdr.Uint32),
//	    xdr.NewField("d", xdr.Uint32),
//	)
//	data, _ := xdr.Marshal[any](price, map[string]any{
//	    "n": uint32(1),
//	    "d": uint32(2),
//	})
//
// # Decode limits
//
// Unmarshal enforces DecodeLimits so that hostile input (a length prefix
// claiming gigabytes, deeply nested recursive unions) fails fast with a
// LimitExceededError instead of exhausting memory or the call stack. Use
// UnmarshalWithLimits to override the defaults for a single call.
//
// # Failure model
//
// Every failure is a typed error surfaced at the point of violation (see
// errors.go); decode never returns a partially populated value.
package xdr
