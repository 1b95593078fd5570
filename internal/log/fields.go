// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	FieldComponent = "component"
	FieldEvent     = "event"

	// Configuration fields
	FieldConfigPath = "config_path"
	FieldProfile    = "profile"
	FieldTool       = "tool"
	FieldKey        = "key"

	// Run / flowcell fields
	FieldFlowcell = "flowcell"
	FieldRunDate  = "run_date"
	FieldRun      = "run"

	// HTTP fields
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldRemoteAddr = "remote_addr"
	FieldRequestID  = "request_id"
)
