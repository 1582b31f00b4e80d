// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into the
// binary by linker flags and shown on the about screen.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], substituting "N/A" for values
// the build pipeline did not inject.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// Version returns the semantic version string of the build.
func (a AppBuildInfo) Version() string { return a.version }

// Date returns the build timestamp string.
func (a AppBuildInfo) Date() string { return a.date }

// Commit returns the source-control commit hash used for the build.
func (a AppBuildInfo) Commit() string { return a.commit }
