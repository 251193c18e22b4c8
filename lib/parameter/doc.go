// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package parameter defines command parameter descriptors and the
// per-command registry that holds them.
//
// A [Descriptor] is the immutable identity of one declared parameter:
// its normalized name, its [Type], an optional default, an optional
// suggestion provider, and presentation metadata (description, short
// flags, required marker). Descriptors are compared by pointer; the
// pair (owning [Registry], name) is unique, and raw argument maps are
// keyed by *Descriptor.
//
// A [Type] fixes both the binding shape and the Go value an execution
// body reads. Five shapes exist, each with a generic constructor:
//
//   - [Scalar] reads T. The raw value must already be a T; there is no
//     numeric widening.
//   - [ListOf] reads []E, preserving order and duplicates.
//   - [SetOf] reads [Set], deduplicating by equality.
//   - [CollectionOf] reads [Collection], returning whichever concrete
//     shape ([List] or [Set]) the caller supplied.
//   - [IterableOf] reads an iter.Seq, accepting any collection or
//     sequence function.
//
// A [Registry] preserves declaration order (positional binding by
// external parsers depends on it), rejects duplicate names with
// [*DuplicateParameterError], and is frozen by its command before the
// first invocation. There is no removal operation.
//
// This package performs no I/O and depends on no other paramkit
// packages.
package parameter
