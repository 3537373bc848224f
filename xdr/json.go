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
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Helpers to coerce JSON-mirror values back into native types. Values may
// arrive as the exact native type (mirror built in-process), as float64 or
// json.Number (stdlib json decoding), or as decimal strings for 64-bit
// integers.

func jsonInt64(j any) (int64, error) {
	switch v := j.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case string:
		ret, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid int64 string %q: %w", v, err)
		}
		return ret, nil
	case json.Number:
		return jsonInt64(string(v))
	default:
		return 0, fmt.Errorf("unexpected JSON value for int64: %T", j)
	}
}

func jsonUint64(j any) (uint64, error) {
	switch v := j.(type) {
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("negative value for uint64: %d", v)
		}
		return uint64(v), nil
	case string:
		ret, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid uint64 string %q: %w", v, err)
		}
		return ret, nil
	case json.Number:
		return jsonUint64(string(v))
	default:
		return 0, fmt.Errorf("unexpected JSON value for uint64: %T", j)
	}
}

func jsonInt32(j any) (int32, error) {
	switch v := j.(type) {
	case int32:
		return v, nil
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("value out of int32 range: %d", v)
		}
		return int32(v), nil
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("value out of int32 range: %d", v)
		}
		return int32(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("value not an int32: %v", v)
		}
		return int32(v), nil
	case json.Number:
		ret, err := strconv.ParseInt(string(v), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid int32 number %q: %w", v, err)
		}
		return int32(ret), nil
	default:
		return 0, fmt.Errorf("unexpected JSON value for int32: %T", j)
	}
}

func jsonUint32(j any) (uint32, error) {
	switch v := j.(type) {
	case uint32:
		return v, nil
	case int:
		if v < 0 || v > math.MaxUint32 {
			return 0, fmt.Errorf("value out of uint32 range: %d", v)
		}
		return uint32(v), nil
	case int64:
		if v < 0 || v > math.MaxUint32 {
			return 0, fmt.Errorf("value out of uint32 range: %d", v)
		}
		return uint32(v), nil
	case float64:
		if v != math.Trunc(v) || v < 0 || v > math.MaxUint32 {
			return 0, fmt.Errorf("value not a uint32: %v", v)
		}
		return uint32(v), nil
	case json.Number:
		ret, err := strconv.ParseUint(string(v), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid uint32 number %q: %w", v, err)
		}
		return uint32(ret), nil
	default:
		return 0, fmt.Errorf("unexpected JSON value for uint32: %T", j)
	}
}

func jsonFloat64(j any) (float64, error) {
	switch v := j.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case json.Number:
		ret, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid float number %q: %w", v, err)
		}
		return ret, nil
	default:
		return 0, fmt.Errorf("unexpected JSON value for float: %T", j)
	}
}

func jsonBool(j any) (bool, error) {
	v, ok := j.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected JSON value for bool: %T", j)
	}
	return v, nil
}

func jsonString(j any) (string, error) {
	v, ok := j.(string)
	if !ok {
		return "", fmt.Errorf("unexpected JSON value for string: %T", j)
	}
	return v, nil
}

func jsonObject(j any) (map[string]any, error) {
	v, ok := j.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected JSON value for object: %T", j)
	}
	return v, nil
}

func jsonArray(j any) ([]any, error) {
	v, ok := j.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected JSON value for array: %T", j)
	}
	return v, nil
}
