// SPDX-License-Identifier: MIT

// configgen writes the built-in default pipeline configuration document as
// YAML, either to stdout or to a file. The output is a valid starting point
// for a site-specific post_process.yaml.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/ManuGH/seqconf/internal/config"
	"gopkg.in/yaml.v3"
)

func main() {
	var out string
	flag.StringVar(&out, "o", "", "output file (defaults to stdout)")
	flag.Parse()

	data, err := render()
	if err != nil {
		fail(err)
	}

	if out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fail(err)
		}
		return
	}
	if err := os.WriteFile(out, data, 0o600); err != nil {
		fail(fmt.Errorf("write %s: %w", out, err))
	}
}

func render() ([]byte, error) {
	doc := config.Defaults()

	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}
	node.HeadComment = "Configuration of external programs and default algorithm parameters\n" +
		"for post-processing a sequencing run. Generated by configgen."

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "configgen: %v\n", err)
	os.Exit(1)
}
