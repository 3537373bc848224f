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
	"sync"
)

// LazyCodec defers resolution of an inner codec to first use, so a type
// can reference itself (directly or through a cycle) without infinite
// recursion at construction time. Resolution happens exactly once;
// concurrent first uses are safe.
type LazyCodec struct {
	resolve func() AnyCodec
	once    sync.Once
	inner   AnyCodec
}

// Lazy returns a codec that calls resolve on first use and delegates to
// the result from then on
func Lazy(resolve func() AnyCodec) *LazyCodec {
	return &LazyCodec{resolve: resolve}
}

func (c *LazyCodec) codec() AnyCodec {
	c.once.Do(func() {
		c.inner = c.resolve()
	})
	return c.inner
}

func (c *LazyCodec) Encode(w *Writer, v any) error {
	return c.codec().Encode(w, v)
}

func (c *LazyCodec) Decode(r *Reader) (any, error) {
	return c.codec().Decode(r)
}

func (c *LazyCodec) ToJSON(v any) (any, error) {
	return c.codec().ToJSON(v)
}

func (c *LazyCodec) FromJSON(j any) (any, error) {
	return c.codec().FromJSON(j)
}
