// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the reaction services into a single
// process lifecycle: session restore, first-run credential setup, and the
// menu loop.
package client
