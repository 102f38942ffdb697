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

// isSpace reports whether c is JSON insignificant whitespace.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isDigit reports whether c is a decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHex reports whether c is a hex digit, upper or lower case.
func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isDelim reports whether c legally terminates a JSON value: a comma, a
// closing bracket, or whitespace.
func isDelim(c byte) bool {
	return c == ',' || c == ']' || c == '}' || isSpace(c)
}

// matchLiteral checks that buf[pos:] begins with lit, followed by a
// delimiter or end of buffer. It returns the number of bytes consumed on
// success, ErrPart if buf ends inside lit, or ErrInval on a mismatch.
// failPos is the offending offset on failure.
func matchLiteral(buf []byte, pos int, lit string) (consumed, failPos int, err Error) {
	n := len(lit)
	for i := 0; i < n; i++ {
		if pos+i >= len(buf) {
			return 0, pos + i, ErrPart
		}
		if buf[pos+i] != lit[i] {
			return 0, pos + i, ErrInval
		}
	}
	if pos+n < len(buf) && !isDelim(buf[pos+n]) {
		return 0, pos + n, ErrInval
	}
	return n, 0, 0
}
