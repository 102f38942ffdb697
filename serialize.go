/*
 * jstok-go, (C) 2024 jstok-go authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jstok

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// CompressMode selects how hard Serializer compresses a serialized token
// stream, mirroring the teacher's CompressMode knob on its tape
// serializer (parsed_serialize.go).
type CompressMode uint8

const (
	// CompressNone stores the wire format uncompressed.
	CompressNone CompressMode = iota
	// CompressFast favors speed over ratio.
	CompressFast
	// CompressDefault is a balanced zstd level.
	CompressDefault
	// CompressBest favors ratio over speed.
	CompressBest
)

const serializeMagic = "JSTK1"

// ErrCorruptStream is returned by Deserialize when the input is not a
// stream this Serializer produced.
var ErrCorruptStream = errors.New("jstok: corrupt or unrecognized token stream")

// Serializer saves and restores a parsed token stream alongside the input
// it describes, for debugging dumps and for capturing fuzz corpus entries
// without having to keep re-tokenizing the same fixture. It is unrelated
// to the core tokenizer's zero-allocation contract: the core (Parser,
// Cursor) never imports this file's dependencies.
type Serializer struct {
	mode CompressMode
}

// NewSerializer returns a Serializer using CompressDefault.
func NewSerializer() *Serializer {
	return &Serializer{mode: CompressDefault}
}

// CompressMode sets the compression level used by subsequent Serialize
// calls and returns the Serializer for chaining.
func (s *Serializer) CompressMode(m CompressMode) *Serializer {
	s.mode = m
	return s
}

func zstdLevel(m CompressMode) zstd.EncoderLevel {
	switch m {
	case CompressFast:
		return zstd.SpeedFastest
	case CompressBest:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}

// Serialize appends a self-describing encoding of input and tokens to
// dst and returns the extended slice. The wire format is a 5-byte magic,
// a mode byte, then a varint-length-prefixed payload that is either raw
// or zstd-compressed depending on mode.
func (s *Serializer) Serialize(dst []byte, input []byte, tokens []Token) ([]byte, error) {
	payload := encodeTokens(input, tokens)

	dst = append(dst, serializeMagic...)
	dst = append(dst, byte(s.mode))

	if s.mode == CompressNone {
		dst = appendUvarint(dst, uint64(len(payload)))
		return append(dst, payload...), nil
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstdLevel(s.mode)))
	if err != nil {
		return nil, fmt.Errorf("jstok: creating zstd encoder: %w", err)
	}
	defer enc.Close()
	compressed := enc.EncodeAll(payload, nil)
	dst = appendUvarint(dst, uint64(len(compressed)))
	return append(dst, compressed...), nil
}

// Deserialize parses a stream produced by Serialize, returning the
// original input bytes and the token slice that described them.
func Deserialize(src []byte) (input []byte, tokens []Token, err error) {
	if len(src) < len(serializeMagic)+1 || string(src[:len(serializeMagic)]) != serializeMagic {
		return nil, nil, ErrCorruptStream
	}
	mode := CompressMode(src[len(serializeMagic)])
	rest := src[len(serializeMagic)+1:]

	n, nRead := binary.Uvarint(rest)
	if nRead <= 0 {
		return nil, nil, ErrCorruptStream
	}
	rest = rest[nRead:]
	if uint64(len(rest)) < n {
		return nil, nil, ErrCorruptStream
	}
	payload := rest[:n]

	if mode != CompressNone {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, nil, fmt.Errorf("jstok: creating zstd decoder: %w", err)
		}
		defer dec.Close()
		payload, err = dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("jstok: decompressing token stream: %w", err)
		}
	}

	return decodeTokens(payload)
}

func appendUvarint(dst []byte, v uint64) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	return append(dst, buf[:n]...)
}

// encodeTokens lays out: varint(len(input)) input bytes,
// varint(tokenCount) then, per token: type byte, varint start, varint
// end, varint size, varint(parent+1) (0 means no parent).
func encodeTokens(input []byte, tokens []Token) []byte {
	buf := appendUvarint(nil, uint64(len(input)))
	buf = append(buf, input...)
	buf = appendUvarint(buf, uint64(len(tokens)))
	for _, t := range tokens {
		buf = append(buf, byte(t.Type))
		buf = appendUvarint(buf, uint64(t.Start))
		buf = appendUvarint(buf, uint64(t.End))
		buf = appendUvarint(buf, uint64(t.Size))
		buf = appendUvarint(buf, uint64(t.Parent+1))
	}
	return buf
}

func decodeTokens(buf []byte) ([]byte, []Token, error) {
	inputLen, n := binary.Uvarint(buf)
	if n <= 0 || uint64(len(buf)-n) < inputLen {
		return nil, nil, ErrCorruptStream
	}
	buf = buf[n:]
	input := append([]byte(nil), buf[:inputLen]...)
	buf = buf[inputLen:]

	count, n := binary.Uvarint(buf)
	if n <= 0 {
		return nil, nil, ErrCorruptStream
	}
	buf = buf[n:]

	tokens := make([]Token, 0, count)
	for i := uint64(0); i < count; i++ {
		if len(buf) < 1 {
			return nil, nil, ErrCorruptStream
		}
		typ := Type(buf[0])
		buf = buf[1:]

		start, n := binary.Uvarint(buf)
		if n <= 0 {
			return nil, nil, ErrCorruptStream
		}
		buf = buf[n:]

		end, n := binary.Uvarint(buf)
		if n <= 0 {
			return nil, nil, ErrCorruptStream
		}
		buf = buf[n:]

		size, n := binary.Uvarint(buf)
		if n <= 0 {
			return nil, nil, ErrCorruptStream
		}
		buf = buf[n:]

		parentPlusOne, n := binary.Uvarint(buf)
		if n <= 0 {
			return nil, nil, ErrCorruptStream
		}
		buf = buf[n:]

		tokens = append(tokens, Token{
			Type:   typ,
			Start:  int(start),
			End:    int(end),
			Size:   int(size),
			Parent: int(parentPlusOne) - 1,
		})
	}
	return input, tokens, nil
}
