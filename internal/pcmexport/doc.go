// SPDX-License-Identifier: EPL-2.0

// Package pcmexport turns telemetry channels into integer PCM frames for
// the wav and aiff encoders.
package pcmexport
