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

// assetUnion builds the classic asset union: a void arm for the native
// asset and a payload arm for issued assets
func assetUnion(t *testing.T) *xdr.UnionCodec {
	t.Helper()
	assetType, err := xdr.NewEnum(map[string]int32{
		"native":           0,
		"credit_alphanum4": 1,
	})
	require.NoError(t, err)
	alphaNum4, err := xdr.NewStruct(
		xdr.NewField("asset_code", xdr.FixedOpaque(4)),
		xdr.NewField("issuer", xdr.FixedOpaque(32)),
	)
	require.NoError(t, err)
	codec, err := xdr.NewUnion(xdr.UnionConfig{
		SwitchOn: assetType,
		Arms: []xdr.Arm{
			xdr.NewVoidArm("native"),
			xdr.NewArm[any](
				"credit_alphanum4",
				alphaNum4,
				"credit_alphanum4",
			),
		},
	})
	require.NoError(t, err)
	return codec
}

func TestUnionVoidArm(t *testing.T) {
	codec := assetUnion(t)
	value := xdr.UnionVoid("native")
	data, err := xdr.Marshal[any](codec, value)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)
	decoded, err := xdr.Unmarshal[any](codec, data)
	require.NoError(t, err)
	assert.Equal(t, value, decoded)
}

func TestUnionValueArm(t *testing.T) {
	codec := assetUnion(t)
	issuer := make([]byte, 32)
	issuer[0] = 0xab
	value := xdr.UnionCase("credit_alphanum4", map[string]any{
		"asset_code": []byte("USDC"),
		"issuer":     issuer,
	})
	data, err := xdr.Marshal[any](codec, value)
	require.NoError(t, err)
	// Discriminant followed by the arm payload
	assert.Equal(t, []byte{0, 0, 0, 1}, data[:4])
	assert.Len(t, data, 4+4+32)
	decoded, err := xdr.Unmarshal[any](codec, data)
	require.NoError(t, err)
	assert.Equal(t, value, decoded)
}

func TestUnionUnknownArmKey(t *testing.T) {
	codec := assetUnion(t)
	_, err := xdr.Marshal[any](
		codec,
		xdr.UnionCase("credit_alphanum12", map[string]any{}),
	)
	assert.ErrorIs(t, err, xdr.ErrInvalidUnionDiscriminant)
	_, err = xdr.Marshal[any](codec, xdr.UnionVoid("pool_share"))
	assert.ErrorIs(t, err, xdr.ErrInvalidUnionDiscriminant)
}

func TestUnionAliasTags(t *testing.T) {
	// Three raw tags aliasing one arm: any of them decodes to the same
	// logical value, and encode always emits the first declared tag
	codec, err := xdr.NewUnion(xdr.UnionConfig{
		Arms: []xdr.Arm{
			xdr.NewVoidArm(1, 2, 3),
			xdr.NewArm("other", xdr.Uint32, 4),
		},
	})
	require.NoError(t, err)
	var values []any
	for _, tag := range []int32{1, 2, 3} {
		w := xdr.NewWriter()
		w.WriteInt32(tag)
		decoded, err := xdr.Unmarshal[any](codec, w.Bytes())
		require.NoError(t, err)
		values = append(values, decoded)
	}
	assert.Equal(t, values[0], values[1])
	assert.Equal(t, values[0], values[2])
	data, err := xdr.Marshal[any](codec, values[2])
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1}, data)
	// Encoding an alias tag directly also normalizes to the canonical tag
	data, err = xdr.Marshal[any](codec, xdr.UnionVoid(2))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1}, data)
}

func TestUnionNoDefaultUnknownDiscriminant(t *testing.T) {
	codec, err := xdr.NewUnion(xdr.UnionConfig{
		Arms: []xdr.Arm{
			xdr.NewVoidArm(0),
			xdr.NewArm("value", xdr.Uint32, 1),
		},
	})
	require.NoError(t, err)
	_, err = xdr.Unmarshal[any](codec, []byte{0, 0, 0, 9})
	assert.ErrorIs(t, err, xdr.ErrInvalidUnionDiscriminant)
}

func TestUnionDefaultArm(t *testing.T) {
	defaultArm := xdr.NewArm("", xdr.Uint32)
	codec, err := xdr.NewUnion(xdr.UnionConfig{
		Arms: []xdr.Arm{
			xdr.NewVoidArm(0),
		},
		Default: &defaultArm,
	})
	require.NoError(t, err)
	// Unknown discriminants decode via the default codec, tagged with
	// the raw discriminant value
	w := xdr.NewWriter()
	w.WriteInt32(7)
	w.WriteUint32(42)
	decoded, err := xdr.Unmarshal[any](codec, w.Bytes())
	require.NoError(t, err)
	expected := xdr.UnionDefault(int32(7), uint32(42))
	assert.Equal(t, expected, decoded)
	// And round-trip back to the same bytes
	data, err := xdr.Marshal[any](codec, decoded)
	require.NoError(t, err)
	assert.Equal(t, w.Bytes(), data)
}

func TestUnionVoidDefaultArm(t *testing.T) {
	voidDefault := xdr.NewVoidArm()
	codec, err := xdr.NewUnion(xdr.UnionConfig{
		Arms: []xdr.Arm{
			xdr.NewArm("known", xdr.Uint32, 0),
		},
		Default: &voidDefault,
	})
	require.NoError(t, err)
	decoded, err := xdr.Unmarshal[any](codec, []byte{0, 0, 0, 5})
	require.NoError(t, err)
	assert.Equal(t, xdr.UnionVoid(int32(5)), decoded)
	data, err := xdr.Marshal[any](codec, decoded)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 5}, data)
}

func TestUnionJSONMirror(t *testing.T) {
	codec := assetUnion(t)
	// Void arm mirrors to the bare tag string
	j, err := codec.ToJSON(xdr.UnionVoid("native"))
	require.NoError(t, err)
	assert.Equal(t, "native", j)
	v, err := codec.FromJSON(test.JSONRoundTrip(j))
	require.NoError(t, err)
	assert.Equal(t, xdr.UnionVoid("native"), v)
	// Value arm mirrors to a single-key object
	issuer := make([]byte, 32)
	value := xdr.UnionCase("credit_alphanum4", map[string]any{
		"asset_code": []byte("EURT"),
		"issuer":     issuer,
	})
	j, err = codec.ToJSON(value)
	require.NoError(t, err)
	obj, ok := j.(map[string]any)
	require.True(t, ok)
	require.Len(t, obj, 1)
	v, err = codec.FromJSON(test.JSONRoundTrip(j))
	require.NoError(t, err)
	assert.Equal(t, value, v)
}

func TestUnionIntDiscriminantJSONMirror(t *testing.T) {
	codec, err := xdr.NewUnion(xdr.UnionConfig{
		Arms: []xdr.Arm{
			xdr.NewVoidArm(0),
			xdr.NewArm("extension", xdr.Uint32, 1),
		},
	})
	require.NoError(t, err)
	// Void arm mirrors to a bare number
	j, err := codec.ToJSON(xdr.UnionVoid(0))
	require.NoError(t, err)
	assert.Equal(t, int32(0), j)
	v, err := codec.FromJSON(test.JSONRoundTrip(j))
	require.NoError(t, err)
	assert.Equal(t, xdr.UnionVoid(int32(0)), v)
	value := xdr.UnionCase("extension", uint32(9))
	j, err = codec.ToJSON(value)
	require.NoError(t, err)
	v, err = codec.FromJSON(test.JSONRoundTrip(j))
	require.NoError(t, err)
	assert.Equal(t, value, v)
}

func TestUnionDuplicateTag(t *testing.T) {
	_, err := xdr.NewUnion(xdr.UnionConfig{
		Arms: []xdr.Arm{
			xdr.NewVoidArm(1),
			xdr.NewVoidArm(1),
		},
	})
	assert.Error(t, err)
}

func TestUnionTagNotEnumMember(t *testing.T) {
	colors, err := xdr.NewEnum(map[string]int32{"red": 0})
	require.NoError(t, err)
	_, err = xdr.NewUnion(xdr.UnionConfig{
		SwitchOn: colors,
		Arms: []xdr.Arm{
			xdr.NewVoidArm("blue"),
		},
	})
	assert.Error(t, err)
}
