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

package xdr_test

import (
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listCodec builds a self-referential linked list type: the node struct
// refers to itself through Lazy without recursing at construction time
func listCodec(t *testing.T) xdr.AnyCodec {
	t.Helper()
	var node *xdr.StructCodec
	var err error
	node, err = xdr.NewStruct(
		xdr.NewField("value", xdr.Uint32),
		xdr.NewField("next", xdr.Option[any](xdr.Lazy(func() xdr.AnyCodec {
			return node
		}))),
	)
	require.NoError(t, err)
	return node
}

func TestLazyRecursiveType(t *testing.T) {
	codec := listCodec(t)
	// Build the list 1 -> 2 -> 3
	tail := any(map[string]any{
		"value": uint32(3),
		"next":  (*any)(nil),
	})
	mid := any(map[string]any{
		"value": uint32(2),
		"next":  &tail,
	})
	head := map[string]any{
		"value": uint32(1),
		"next":  &mid,
	}
	data, err := xdr.Marshal[any](codec, head)
	require.NoError(t, err)
	// Three nodes: (value, flag) pairs plus the final absent flag
	assert.Len(t, data, 24)
	decoded, err := xdr.Unmarshal[any](codec, data)
	require.NoError(t, err)
	assert.Equal(t, any(head), decoded)
}

func TestLazyJSONMirror(t *testing.T) {
	codec := listCodec(t)
	tail := any(map[string]any{
		"value": uint32(2),
		"next":  (*any)(nil),
	})
	head := map[string]any{
		"value": uint32(1),
		"next":  &tail,
	}
	j, err := codec.ToJSON(head)
	require.NoError(t, err)
	decoded, err := codec.FromJSON(test.JSONRoundTrip(j))
	require.NoError(t, err)
	assert.Equal(t, any(head), decoded)
}
