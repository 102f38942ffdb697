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

// Command jstokcat is a small demonstration binary over package jstok: it
// either tokenizes a JSON document and dumps the resulting token table, or
// (with -sse) scans a buffer for SSE "data:" payloads.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/jopamo/jstok-go"
)

type options struct {
	SSE      bool `short:"s" long:"sse" description:"scan input as a Server-Sent Events stream instead of JSON"`
	Strict   bool `long:"strict" description:"enforce strict JSON grammar" default:"true"`
	Features bool `long:"features" description:"print detected CPU capabilities and exit"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	args, err := parser.Parse()
	if err != nil {
		os.Exit(1)
	}

	if opts.Features {
		fmt.Println(jstok.Features())
		return
	}

	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "jstokcat:", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jstokcat:", err)
		os.Exit(1)
	}

	if opts.SSE {
		runSSE(data)
		return
	}
	if err := runTokenize(data, opts.Strict); err != nil {
		fmt.Fprintln(os.Stderr, "jstokcat:", err)
		os.Exit(1)
	}
}

func runTokenize(data []byte, strict bool) error {
	p := jstok.NewParser(jstok.WithStrict(strict))
	n, err := p.Parse(data, nil)
	if err != nil {
		return fmt.Errorf("counting tokens: %w", err)
	}
	tokens := make([]jstok.Token, n)
	p.Reset()
	if _, err := p.Parse(data, tokens); err != nil {
		return fmt.Errorf("tokenizing: %w", err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i, t := range tokens {
		fmt.Fprintf(w, "%4d  %-9s [%d,%d) size=%d %q\n", i, t.Type, t.Start, t.End, t.Size, jstok.Span(data, t))
	}
	return nil
}

func runSSE(data []byte) {
	var c jstok.Cursor
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for {
		ev, payload, done := c.Next(data)
		if ev == jstok.NeedMore {
			return
		}
		if done {
			fmt.Fprintln(w, "[stream done]")
			return
		}
		fmt.Fprintf(w, "%s\n", payload)
	}
}
