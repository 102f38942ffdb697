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

import "github.com/klauspost/cpuid/v2"

// Capabilities reports CPU features relevant to byte-scanning throughput.
// The tokenizer itself is branchy scalar Go and does not dispatch on any
// of these at runtime; Capabilities exists so a host process can log what
// it's running on when diagnosing throughput differences between
// machines, the same purpose the teacher's SupportedCPU gate serves
// before selecting an accelerated code path.
type Capabilities struct {
	SSE42 bool
	AVX2  bool
	CLMUL bool
}

// Features reports the current process's CPU capabilities.
func Features() Capabilities {
	return Capabilities{
		SSE42: cpuid.CPU.Supports(cpuid.SSE42),
		AVX2:  cpuid.CPU.Supports(cpuid.AVX2),
		CLMUL: cpuid.CPU.Supports(cpuid.CLMUL),
	}
}

// String renders the capability set the way a log line would want it.
func (c Capabilities) String() string {
	s := make([]byte, 0, 32)
	add := func(name string, have bool) {
		if !have {
			return
		}
		if len(s) > 0 {
			s = append(s, ' ')
		}
		s = append(s, name...)
	}
	add("sse4.2", c.SSE42)
	add("avx2", c.AVX2)
	add("clmul", c.CLMUL)
	if len(s) == 0 {
		return "scalar"
	}
	return string(s)
}
