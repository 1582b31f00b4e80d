// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the ambient runtime configuration of the client:
// service endpoint, state-file locations, and log level.
//
// Configuration layers are merged by precedence (environment over built-in
// defaults) using a small builder around mergo. The persisted user settings
// document (credential, timeout, batch delay) is not handled here — it is
// owned by the store package, because it mutates at runtime and survives
// restarts.
package config
