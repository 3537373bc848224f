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

// xdr-inspect decodes base64 XDR against one of a few stock codecs and
// prints the JSON mirror. Mostly useful for poking at values by hand.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/blinklabs-io/gostellar/xdr"
)

var codecs = map[string]xdr.AnyCodec{}

func init() {
	alphaNum4, err := xdr.NewStruct(
		xdr.NewField("asset_code", xdr.FixedOpaque(4)),
		xdr.NewField("issuer", xdr.FixedOpaque(32)),
	)
	if err != nil {
		panic(err)
	}
	assetType, err := xdr.NewEnum(map[string]int32{
		"native":           0,
		"credit_alphanum4": 1,
	})
	if err != nil {
		panic(err)
	}
	asset, err := xdr.NewUnion(xdr.UnionConfig{
		SwitchOn: assetType,
		Arms: []xdr.Arm{
			xdr.NewVoidArm("native"),
			xdr.NewArm[any]("credit_alphanum4", alphaNum4, "credit_alphanum4"),
		},
	})
	if err != nil {
		panic(err)
	}
	price, err := xdr.NewStruct(
		xdr.NewField("n", xdr.Uint32),
		xdr.NewField("d", xdr.Uint32),
	)
	if err != nil {
		panic(err)
	}
	codecs["asset"] = asset
	codecs["price"] = price
	codecs["uint64"] = xdr.Erase(xdr.Uint64)
	codecs["string"] = xdr.Erase(xdr.String(xdr.MaxLength))
	codecs["opaque"] = xdr.Erase(xdr.VarOpaque(xdr.MaxLength))
}

func main() {
	flagset := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	codecName := flagset.String("codec", "", "codec to decode with")
	if err := flagset.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if *codecName == "" || flagset.NArg() != 1 {
		names := make([]string, 0, len(codecs))
		for name := range codecs {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(
			os.Stderr,
			"Usage: %s -codec <name> <base64>\n\nCodecs: %v\n",
			os.Args[0],
			names,
		)
		os.Exit(1)
	}
	codec, ok := codecs[*codecName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown codec: %s\n", *codecName)
		os.Exit(1)
	}
	value, err := xdr.UnmarshalBase64(codec, flagset.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode failure: %s\n", err)
		os.Exit(1)
	}
	mirror, err := codec.ToJSON(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "JSON mirror failure: %s\n", err)
		os.Exit(1)
	}
	out, err := json.MarshalIndent(mirror, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "JSON encode failure: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
