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

import "testing"

func TestScanStringSimple(t *testing.T) {
	input := `"hello",`
	contentEnd, closeIdx, _, err := scanString([]byte(input), 0)
	if err != 0 {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := input[1:contentEnd]; got != "hello" {
		t.Fatalf("content = %q, want %q", got, "hello")
	}
	if input[closeIdx] != '"' {
		t.Fatalf("closeIdx does not point at closing quote: %q", input[closeIdx])
	}
}

func TestScanStringEscapes(t *testing.T) {
	input := `"a\n\t\"b\\c",`
	_, _, _, err := scanString([]byte(input), 0)
	if err != 0 {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScanStringUnicodeEscape(t *testing.T) {
	input := "\"\\u00e9\","
	_, _, _, err := scanString([]byte(input), 0)
	if err != 0 {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScanStringRejectsControlByte(t *testing.T) {
	input := "\"a\nb\""
	_, _, failPos, err := scanString([]byte(input), 0)
	if err != ErrInval {
		t.Fatalf("want ErrInval, got %v", err)
	}
	if failPos != 2 {
		t.Fatalf("want failPos 2, got %d", failPos)
	}
}

func TestScanStringTruncatedIsPart(t *testing.T) {
	cases := []string{`"abc`, `"abc\`, `"abc\u00`}
	for _, input := range cases {
		_, _, _, err := scanString([]byte(input), 0)
		if err != ErrPart {
			t.Errorf("scanString(%q): want ErrPart, got %v", input, err)
		}
	}
}

func TestScanStringBadEscapeIsInval(t *testing.T) {
	input := `"abc\q"`
	_, _, _, err := scanString([]byte(input), 0)
	if err != ErrInval {
		t.Fatalf("want ErrInval, got %v", err)
	}
}

func TestScanStringBadUnicodeHexIsInval(t *testing.T) {
	input := `"abc\u00zz"`
	_, _, _, err := scanString([]byte(input), 0)
	if err != ErrInval {
		t.Fatalf("want ErrInval, got %v", err)
	}
}

func TestHexVal(t *testing.T) {
	cases := map[byte]int{
		'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15, 'g': -1, ' ': -1,
	}
	for c, want := range cases {
		if got := hexVal(c); got != want {
			t.Errorf("hexVal(%q) = %d, want %d", c, got, want)
		}
	}
}

func TestAppendUTF8(t *testing.T) {
	cases := []struct {
		code uint16
		want []byte
	}{
		{0x41, []byte{0x41}},
		{0xe9, []byte{0xc3, 0xa9}},
		{0x4e2d, []byte{0xe4, 0xb8, 0xad}},
	}
	for _, c := range cases {
		got := appendUTF8(nil, c.code)
		if string(got) != string(c.want) {
			t.Errorf("appendUTF8(%x) = % x, want % x", c.code, got, c.want)
		}
	}
}
