// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sender defines the actor that issues a command invocation.
//
// A [Sender] has a name, can receive text messages, and answers two
// permission queries. The command engine only carries the sender into
// the invocation; execution bodies and surrounding dispatch code make
// the permission decisions.
//
// Two implementations are provided: [Console] for an operator at a
// terminal, and [Static] for embedding and tests.
package sender
