// SPDX-License-Identifier: MIT

package config

// Document is the full pipeline configuration document as loaded from disk.
// Top-level sections mirror the on-disk YAML layout.
type Document struct {
	// GalaxyConfig points at the Galaxy universe_wsgi.ini used to look up
	// sequencing run information.
	GalaxyConfig string `yaml:"galaxy_config" json:"galaxy_config"`

	// Program maps tool names to executable paths or bare names resolvable
	// via PATH.
	Program map[string]string `yaml:"program" json:"program"`

	// Algorithm holds the default analysis parameters.
	Algorithm Algorithm `yaml:"algorithm" json:"algorithm"`

	// Analysis holds post-processing script configuration.
	Analysis Analysis `yaml:"analysis" json:"analysis"`

	// Distributed holds messaging settings for distributed runs.
	Distributed Distributed `yaml:"distributed" json:"distributed"`

	// CustomAlgorithms maps a human-readable profile name to a sparse
	// overlay of Algorithm. Absent fields inherit the defaults.
	CustomAlgorithms map[string]AlgorithmOverride `yaml:"custom_algorithms" json:"custom_algorithms"`

	// Version is stamped by the loader from the binary, never from the file.
	Version string `yaml:"-" json:"version,omitempty"`
}

// Algorithm holds the analysis parameters for a pipeline run. All fields are
// concrete; profile overlays are applied before validation.
type Algorithm struct {
	// Aligner selects the alignment tool. It must be a key of
	// Document.Program, or empty to skip alignment entirely.
	Aligner       string `yaml:"aligner" json:"aligner"`
	MaxErrors     int    `yaml:"max_errors" json:"max_errors"`
	NumCores      int    `yaml:"num_cores" json:"num_cores"`
	Platform      string `yaml:"platform" json:"platform"`
	Recalibrate   bool   `yaml:"recalibrate" json:"recalibrate"`
	SNPCall       bool   `yaml:"snpcall" json:"snpcall"`
	BCMismatch    int    `yaml:"bc_mismatch" json:"bc_mismatch"`
	BCRead        int    `yaml:"bc_read" json:"bc_read"`
	BCPosition    int    `yaml:"bc_position" json:"bc_position"`
	JavaMemory    string `yaml:"java_memory" json:"java_memory"`
	SaveDiskspace bool   `yaml:"save_diskspace" json:"save_diskspace"`

	// DbSNP is a known-variants file, relative to the genome reference
	// directory unless absolute.
	DbSNP         string `yaml:"dbsnp" json:"dbsnp"`
	QualityFormat string `yaml:"quality_format" json:"quality_format"`
	HybridTarget  string `yaml:"hybrid_target" json:"hybrid_target"`
}

// AlgorithmOverride is a typed partial Algorithm: every field is optional.
// Nil fields inherit the base default during resolution.
type AlgorithmOverride struct {
	Aligner       *string `yaml:"aligner,omitempty" json:"aligner,omitempty"`
	MaxErrors     *int    `yaml:"max_errors,omitempty" json:"max_errors,omitempty"`
	NumCores      *int    `yaml:"num_cores,omitempty" json:"num_cores,omitempty"`
	Platform      *string `yaml:"platform,omitempty" json:"platform,omitempty"`
	Recalibrate   *bool   `yaml:"recalibrate,omitempty" json:"recalibrate,omitempty"`
	SNPCall       *bool   `yaml:"snpcall,omitempty" json:"snpcall,omitempty"`
	BCMismatch    *int    `yaml:"bc_mismatch,omitempty" json:"bc_mismatch,omitempty"`
	BCRead        *int    `yaml:"bc_read,omitempty" json:"bc_read,omitempty"`
	BCPosition    *int    `yaml:"bc_position,omitempty" json:"bc_position,omitempty"`
	JavaMemory    *string `yaml:"java_memory,omitempty" json:"java_memory,omitempty"`
	SaveDiskspace *bool   `yaml:"save_diskspace,omitempty" json:"save_diskspace,omitempty"`
	DbSNP         *string `yaml:"dbsnp,omitempty" json:"dbsnp,omitempty"`
	QualityFormat *string `yaml:"quality_format,omitempty" json:"quality_format,omitempty"`
	HybridTarget  *string `yaml:"hybrid_target,omitempty" json:"hybrid_target,omitempty"`
}

// Analysis holds analysis script configuration.
type Analysis struct {
	TowigScript    string `yaml:"towig_script" json:"towig_script"`
	ProcessProgram string `yaml:"process_program" json:"process_program"`
	WorkerProgram  string `yaml:"worker_program" json:"worker_program"`
}

// Distributed holds settings for message-queue driven runs. The broker
// client itself lives outside this repository.
type Distributed struct {
	RabbitMQVhost string `yaml:"rabbitmq_vhost" json:"rabbitmq_vhost"`
	NumWorkers    int    `yaml:"num_workers" json:"num_workers"`
	CoresPerHost  int    `yaml:"cores_per_host" json:"cores_per_host"`
	PlatformArgs  string `yaml:"platform_args" json:"platform_args"`
}

// apply overlays the non-nil fields of o onto a copy of a.
func (a Algorithm) apply(o AlgorithmOverride) Algorithm {
	if o.Aligner != nil {
		a.Aligner = *o.Aligner
	}
	if o.MaxErrors != nil {
		a.MaxErrors = *o.MaxErrors
	}
	if o.NumCores != nil {
		a.NumCores = *o.NumCores
	}
	if o.Platform != nil {
		a.Platform = *o.Platform
	}
	if o.Recalibrate != nil {
		a.Recalibrate = *o.Recalibrate
	}
	if o.SNPCall != nil {
		a.SNPCall = *o.SNPCall
	}
	if o.BCMismatch != nil {
		a.BCMismatch = *o.BCMismatch
	}
	if o.BCRead != nil {
		a.BCRead = *o.BCRead
	}
	if o.BCPosition != nil {
		a.BCPosition = *o.BCPosition
	}
	if o.JavaMemory != nil {
		a.JavaMemory = *o.JavaMemory
	}
	if o.SaveDiskspace != nil {
		a.SaveDiskspace = *o.SaveDiskspace
	}
	if o.DbSNP != nil {
		a.DbSNP = *o.DbSNP
	}
	if o.QualityFormat != nil {
		a.QualityFormat = *o.QualityFormat
	}
	if o.HybridTarget != nil {
		a.HybridTarget = *o.HybridTarget
	}
	return a
}
