// SPDX-License-Identifier: MIT

package config

// Defaults returns the built-in configuration document. It mirrors the
// stock post-processing setup shipped with the pipeline; a YAML file and
// SEQCONF_* environment variables override it at load time.
func Defaults() Document {
	return Document{
		GalaxyConfig: "universe_wsgi.ini",
		Program: map[string]string{
			"bowtie":      "bowtie",
			"bwa":         "bwa",
			"samtools":    "samtools",
			"picard":      "/usr/share/java/picard",
			"gatk":        "/usr/share/java/gatk",
			"snpEff":      "/usr/share/java/snpeff",
			"fastqc":      "fastqc",
			"ucsc_bigwig": "wigToBigWig",
			"barcode":     "barcode_sort_trim.py",
			"pdflatex":    "pdflatex",
		},
		Algorithm: Algorithm{
			Aligner:       "bowtie",
			MaxErrors:     2,
			NumCores:      1,
			Platform:      "illumina",
			Recalibrate:   false,
			SNPCall:       false,
			BCMismatch:    2,
			BCRead:        1,
			BCPosition:    3,
			JavaMemory:    "3g",
			SaveDiskspace: false,
			QualityFormat: "illumina",
		},
		Analysis: Analysis{
			TowigScript:    "bam_to_wiggle.py",
			ProcessProgram: "automated_initial_analysis.py",
			WorkerProgram:  "analyze_finished_sqn.py",
		},
		Distributed: Distributed{
			RabbitMQVhost: "bionextgen",
			CoresPerHost:  1,
		},
		CustomAlgorithms: map[string]AlgorithmOverride{
			"SNP calling": {
				Aligner:     ptr("bwa"),
				Recalibrate: ptr(true),
				SNPCall:     ptr(true),
				DbSNP:       ptr("snps/dbSNP132.vcf"),
			},
			"Minimal": {
				Aligner: ptr(""),
			},
		},
	}
}

func ptr[T any](v T) *T { return &v }
