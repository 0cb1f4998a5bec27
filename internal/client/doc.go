// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and background workers into
// a single process lifecycle: restore or establish a session, run the
// profile screen, and start over on logout.
package client
