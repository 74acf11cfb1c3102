// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE validation utilities.
//
// Both tenper's own config.cue and the per-project files go through the same flow:
//
//  1. Compile the embedded schema
//  2. Compile (or encode) the user data and unify it with the schema definition
//  3. Validate and decode to a Go struct
//
// Project files may be written in YAML or TOML; those are decoded into plain Go
// values first and handed to DecodeValue, so every format gets identical
// validation and error messages.
//
//	result, err := cueutil.DecodeValue[Project](schema, raw, "#Project",
//	    cueutil.WithFilename("web.yml"))
package cueutil
