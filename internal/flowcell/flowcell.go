// SPDX-License-Identifier: MIT

// Package flowcell parses flowcell run directory names and locates the
// base-call output directories within a run.
package flowcell

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Info identifies a sequencing run by flowcell name and run date.
type Info struct {
	Name string // flowcell ID, e.g. "B00UPAAXX"
	Date string // six-digit run date, e.g. "110106"
}

// Parse extracts the flowcell ID and date from a run directory such as
// "110106_B00UPAAXX" or "110106_SN123_0123_B00UPAAXX". The flowcell ID is
// the underscore-separated token ending in "XX" (HiSeq 2000 IDs included),
// the date the six-digit numeric token.
func Parse(fcDir string) (Info, error) {
	base := filepath.Base(filepath.Clean(fcDir))

	var info Info
	for _, p := range strings.Split(base, "_") {
		switch {
		case strings.HasSuffix(p, "XX") || strings.HasSuffix(p, "xx"):
			info.Name = p
		case len(p) == 6:
			if _, err := strconv.Atoi(p); err == nil {
				info.Date = p
			}
		}
	}
	if info.Name == "" || info.Date == "" {
		return Info{}, fmt.Errorf("did not find flowcell name and date in %q", base)
	}
	return info, nil
}

// QseqDir returns the qseq directory within a flowcell output directory,
// or fcDir itself when the machine base-call layout is absent.
func QseqDir(fcDir string) string {
	machineBC := filepath.Join(fcDir, "Data", "Intensities", "BaseCalls")
	if dirExists(machineBC) {
		return machineBC
	}
	// otherwise assume we already are in the qseq directory
	return fcDir
}

// FastqDir returns the fastq directory within a flowcell output directory.
// It checks the machine base-call layout first, then the older
// Firecrest/Bustard layouts, and falls back to fcDir itself.
func FastqDir(fcDir string) string {
	machineBC := filepath.Join(fcDir, "Data", "Intensities", "BaseCalls")
	if dirExists(machineBC) {
		return filepath.Join(machineBC, "fastq")
	}
	if matches, _ := filepath.Glob(filepath.Join(fcDir, "Data", "*Firecrest*", "Bustard*")); len(matches) > 0 {
		return filepath.Join(matches[0], "fastq")
	}
	if matches, _ := filepath.Glob(filepath.Join(fcDir, "Data", "Intensities", "*Bustard*")); len(matches) > 0 {
		return filepath.Join(matches[0], "fastq")
	}
	// otherwise assume we already are in the fastq directory
	return fcDir
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
