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

// scanString consumes the string literal at buf[pos] (which must be '"')
// and returns the exclusive end offset of its content, i.e. the index of
// the closing quote. On a truncated string or truncated escape it returns
// ErrPart and leaves pos untouched at the call site's discretion: callers
// must rewind to the opening quote themselves on ErrPart, which Parser
// does. failPos is the offending byte offset on ErrInval, or the offset
// one past the truncated region on ErrPart.
func scanString(buf []byte, pos int) (contentEnd, closeIdx, failPos int, err Error) {
	n := len(buf)
	if pos >= n || buf[pos] != '"' {
		return 0, 0, pos, ErrInval
	}
	i := pos + 1
	for i < n {
		c := buf[i]
		if c < 0x20 {
			return 0, 0, i, ErrInval
		}
		if c == '"' {
			return i, i, 0, 0
		}
		if c == '\\' {
			i++
			if i >= n {
				return 0, 0, i, ErrPart
			}
			c = buf[i]
			switch c {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i++
				continue
			case 'u':
				for k := 0; k < 4; k++ {
					i++
					if i >= n {
						return 0, 0, i, ErrPart
					}
					if !isHex(buf[i]) {
						return 0, 0, i, ErrInval
					}
				}
				i++
				continue
			default:
				return 0, 0, i, ErrInval
			}
		}
		i++
	}
	return 0, 0, i, ErrPart
}

// hexVal returns the value of a hex digit, or -1 if c is not one.
func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// appendUTF8 appends the UTF-8 encoding of a 16-bit code point to dst.
// Surrogate halves are encoded independently: a \uD800-\uDFFF escape
// produces a 3-byte (technically invalid) UTF-8 sequence rather than
// being combined with a following low surrogate.
func appendUTF8(dst []byte, code uint16) []byte {
	switch {
	case code <= 0x7F:
		return append(dst, byte(code))
	case code <= 0x7FF:
		return append(dst,
			byte(0xC0|((code>>6)&0x1F)),
			byte(0x80|(code&0x3F)),
		)
	default:
		return append(dst,
			byte(0xE0|((code>>12)&0x0F)),
			byte(0x80|((code>>6)&0x3F)),
			byte(0x80|(code&0x3F)),
		)
	}
}
