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

func TestStructEncoding(t *testing.T) {
	price, err := xdr.NewStruct(
		xdr.NewField("n", xdr.Uint32),
		xdr.NewField("d", xdr.Uint32),
	)
	require.NoError(t, err)
	data, err := xdr.Marshal[any](price, map[string]any{
		"n": uint32(1),
		"d": uint32(2),
	})
	require.NoError(t, err)
	// Fields in schema order, no inter-field padding
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 2}, data)
	decoded, err := xdr.Unmarshal[any](price, data)
	require.NoError(t, err)
	assert.Equal(
		t,
		map[string]any{"n": uint32(1), "d": uint32(2)},
		decoded,
	)
}

func TestStructMixedFieldTypes(t *testing.T) {
	codec, err := xdr.NewStruct(
		xdr.NewField("name", xdr.String(32)),
		xdr.NewField("amount", xdr.Int64),
		xdr.NewField("hash", xdr.FixedOpaque(4)),
		xdr.NewField("memo", xdr.Option(xdr.String(16))),
	)
	require.NoError(t, err)
	memo := "hi"
	value := map[string]any{
		"name":   "alice",
		"amount": int64(-5),
		"hash":   []byte{1, 2, 3, 4},
		"memo":   &memo,
	}
	data, err := xdr.Marshal[any](codec, value)
	require.NoError(t, err)
	decoded, err := xdr.Unmarshal[any](codec, data)
	require.NoError(t, err)
	assert.Equal(t, value, decoded)
}

func TestStructJSONMirror(t *testing.T) {
	codec, err := xdr.NewStruct(
		xdr.NewField("id", xdr.Uint64),
		xdr.NewField("data", xdr.VarOpaque(8)),
	)
	require.NoError(t, err)
	value := map[string]any{
		"id":   uint64(12345678901234567890),
		"data": []byte{0xca, 0xfe},
	}
	j, err := codec.ToJSON(value)
	require.NoError(t, err)
	assert.Equal(
		t,
		map[string]any{
			"id":   "12345678901234567890",
			"data": "cafe",
		},
		j,
	)
	decoded, err := codec.FromJSON(test.JSONRoundTrip(j))
	require.NoError(t, err)
	assert.Equal(t, value, decoded)
}

func TestStructDuplicateField(t *testing.T) {
	_, err := xdr.NewStruct(
		xdr.NewField("a", xdr.Uint32),
		xdr.NewField("a", xdr.Uint32),
	)
	assert.Error(t, err)
}

func TestStructMissingField(t *testing.T) {
	codec, err := xdr.NewStruct(
		xdr.NewField("a", xdr.Uint32),
		xdr.NewField("b", xdr.Uint32),
	)
	require.NoError(t, err)
	_, err = xdr.Marshal[any](codec, map[string]any{"a": uint32(1)})
	assert.Error(t, err)
}

func TestStructFieldOrder(t *testing.T) {
	codec, err := xdr.NewStruct(
		xdr.NewField("z", xdr.Uint32),
		xdr.NewField("a", xdr.Uint32),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, codec.Fields())
	// The schema, not the map, fixes the wire order
	data, err := xdr.Marshal[any](codec, map[string]any{
		"a": uint32(2),
		"z": uint32(1),
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 2}, data)
}
