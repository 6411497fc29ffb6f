// SPDX-License-Identifier: EPL-2.0

// Package config loads the settings of the ddaconv command.
//
// # Configuration Sources
//
// Settings are resolved in order of precedence:
//
//  1. Command line flags (applied by the caller, highest priority)
//  2. Environment variables
//  3. A YAML file named by DDALOG_CONFIG
//  4. Default values (lowest priority)
//
// # Environment Variables
//
// All variables use the DDALOG_ prefix:
//
//	DDALOG_FORMAT=wav
//	DDALOG_FIELDS=EngineSpeed,Pedal,LeanAngle
//	DDALOG_RATE=30
//	DDALOG_OFFSET=1494
//	DDALOG_LOGGING_LEVEL=debug
//
// # Configuration File
//
//	format: xlsx
//	sheet: Track day
//	logging:
//	  level: debug
//	  format: text
//	  output: both
//	  file_path: ddaconv.log
package config
