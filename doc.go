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

// Package jstok is a zero-allocation JSON tokenizer paired with a
// line-oriented Server-Sent Events framer.
//
// Parse walks a byte buffer and fills a caller-owned slice of Token with
// flat, offset-addressed descriptors: no tree is built and nothing is
// allocated by the tokenizer itself. A parse can be run in count-only mode
// (pass a nil token slice) to size the destination slice ahead of time, and
// it can be resumed: feeding the same Parser a growing view of the same
// buffer produces exactly the tokens a single call over the final buffer
// would have produced, at the cost of returning ErrPart while the buffer is
// truncated mid-token or mid-structure.
//
// Cursor, in sse.go, applies the same resumable-by-construction approach to
// Server-Sent Events framing: Next extracts "data:" payload spans from a
// growing buffer without allocating. Complete lines are consumed once; an
// incomplete trailing line is scanned again from its start on the next call.
package jstok
