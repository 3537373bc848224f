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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gostellar/strkey"
)

var versionNames = map[string]strkey.VersionByte{
	"ed25519_public_key":  strkey.VersionByteEd25519PublicKey,
	"ed25519_private_key": strkey.VersionByteEd25519PrivateKey,
	"pre_auth_tx":         strkey.VersionBytePreAuthTx,
	"hash_x":              strkey.VersionByteHashX,
	"contract":            strkey.VersionByteContract,
	"liquidity_pool":      strkey.VersionByteLiquidityPool,
	"muxed_ed25519":       strkey.VersionByteMuxedEd25519,
	"signed_payload":      strkey.VersionByteSignedPayload,
	"claimable_balance":   strkey.VersionByteClaimableBalance,
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "decode":
		decodeCommand(os.Args[2:])
	case "encode":
		encodeCommand(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintf(
		os.Stderr,
		"Usage:\n  %s decode <strkey>\n  %s encode -version <name> -payload <hex>\n",
		os.Args[0],
		os.Args[0],
	)
	os.Exit(1)
}

func decodeCommand(args []string) {
	flagset := flag.NewFlagSet("decode", flag.ExitOnError)
	if err := flagset.Parse(args); err != nil {
		os.Exit(1)
	}
	if flagset.NArg() != 1 {
		usage()
	}
	src := flagset.Arg(0)
	version, payload, err := strkey.DecodeAny(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode failure: %s\n", err)
		os.Exit(1)
	}
	name := "unknown"
	for n, v := range versionNames {
		if v == version {
			name = n
			break
		}
	}
	fmt.Printf("version: %s (0x%02x)\n", name, byte(version))
	fmt.Printf("payload: %s\n", hex.EncodeToString(payload))
	if key, err := strkey.FromString(src); err == nil {
		if muxed, ok := key.(strkey.MuxedAccountEd25519); ok {
			fmt.Printf("muxed id: %d\n", muxed.ID)
		}
	}
}

func encodeCommand(args []string) {
	flagset := flag.NewFlagSet("encode", flag.ExitOnError)
	versionName := flagset.String(
		"version",
		"ed25519_public_key",
		"strkey version name",
	)
	payloadHex := flagset.String(
		"payload",
		"",
		"raw payload as a hex string",
	)
	if err := flagset.Parse(args); err != nil {
		os.Exit(1)
	}
	version, ok := versionNames[*versionName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown version name: %s\n", *versionName)
		os.Exit(1)
	}
	payload, err := hex.DecodeString(*payloadHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid payload hex: %s\n", err)
		os.Exit(1)
	}
	ret, err := strkey.Encode(version, payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode failure: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(ret)
}
