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

// Package strkey implements Stellar's checksummed base32 text encoding
// for raw key, contract and pool identifiers.
//
// A strkey is base32(version || payload || crc16(version || payload))
// with the CRC16-XModem checksum appended little-endian. The version
// byte fixes the leading character of the text form: G for ed25519
// public keys, S for seeds, T for pre-auth transaction hashes, X for
// hash-x signers, C for contracts, L for liquidity pools, M for muxed
// accounts, P for signed payloads and B for claimable balances.
//
// Decoding is strict: characters outside the RFC 4648 alphabet,
// non-canonical trailing bits, checksum mismatches and malformed payload
// shapes are all hard failures, so every accepted string re-encodes to
// itself byte for byte.
//
// Use Encode/Decode/DecodeAny for raw (version, payload) pairs and
// ToString/FromString for the typed variants.
package strkey
