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

// DecodeLimits bounds a single top-level decode call. Containers and
// composites consult the live counters on the Reader so that hostile
// length prefixes or deeply nested recursive types fail fast instead of
// exhausting memory or the call stack.
type DecodeLimits struct {
	// MaxDepth is the maximum nesting depth of containers/composites
	MaxDepth int
	// MaxSize is the maximum cumulative declared size (bytes for opaque
	// data and strings, elements for arrays) across the whole decode
	MaxSize int
}

// DefaultDecodeLimits is used by Unmarshal and friends when no explicit
// limits are given. Real ledger entries nest well under 100 levels, but
// recursive types seen in the wild (e.g. nested predicates) can go deeper.
var DefaultDecodeLimits = DecodeLimits{
	MaxDepth: 500,
	MaxSize:  32 * 1024 * 1024,
}
