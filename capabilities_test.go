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

func TestFeaturesStringNeverEmpty(t *testing.T) {
	s := Features().String()
	if s == "" {
		t.Fatal("Capabilities.String() returned an empty string")
	}
}

func TestCapabilitiesStringScalarWhenNoneSupported(t *testing.T) {
	c := Capabilities{}
	if got := c.String(); got != "scalar" {
		t.Fatalf("String() = %q, want %q", got, "scalar")
	}
}

func TestCapabilitiesStringListsDetectedFeatures(t *testing.T) {
	c := Capabilities{SSE42: true, AVX2: true}
	if got := c.String(); got != "sse4.2 avx2" {
		t.Fatalf("String() = %q, want %q", got, "sse4.2 avx2")
	}
}
