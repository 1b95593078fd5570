// SPDX-License-Identifier: MIT

// validate is a CLI tool to validate pipeline YAML configuration files.
//
// Usage:
//
//	validate -f post_process.yaml
//	validate -f post_process.yaml -p "SNP calling"
//
// Exit codes:
//   - 0: Configuration is valid
//   - 1: Configuration is invalid (parse, validation or resolution error)
//   - 2: Usage error (missing required flag)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ManuGH/seqconf/internal/config"
)

var Version = "dev"

func main() {
	var file string
	var profile string
	var showVersion bool

	flag.StringVar(&file, "file", "", "path to YAML configuration file")
	flag.StringVar(&file, "f", "", "path to YAML configuration file (shorthand)")
	flag.StringVar(&profile, "profile", "", "custom algorithm profile to resolve")
	flag.StringVar(&profile, "p", "", "custom algorithm profile to resolve (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(Version)
		os.Exit(0)
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  validate -f post_process.yaml")
		fmt.Fprintln(os.Stderr, "  validate -f post_process.yaml -p \"SNP calling\"")
		os.Exit(2)
	}

	// Load configuration (uses strict YAML parsing and validates the
	// document plus every custom algorithm profile)
	loader := config.NewLoader(file, Version)
	doc, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error in %s:\n", file)
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		os.Exit(1)
	}

	// Resolve the requested profile if one was given
	if profile != "" {
		res, err := config.Resolve(doc, profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Resolution error in %s:\n", file)
			fmt.Fprintf(os.Stderr, "  %v\n", err)
			os.Exit(1)
		}
		if res.SkipAlignment() {
			fmt.Printf("✓ %s is valid (profile %q, alignment skipped)\n", file, profile)
			return
		}
		path, _ := res.AlignerPath()
		fmt.Printf("✓ %s is valid (profile %q, aligner %s -> %s)\n",
			file, profile, res.Algorithm.Aligner, path)
		return
	}

	fmt.Printf("✓ %s is valid (%d custom algorithm profiles)\n",
		file, len(config.ProfileNames(doc)))
}
