// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for invocation
// timing.
//
// Commands record when an invocation starts and how long it ran. Both
// readings go through a Clock so that tests can pin them:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	cmd := command.New[string]("greet", command.WithClock(c))
//	// ... inside the body: c.Advance(250 * time.Millisecond)
//
// Production code uses Real(), which reads the standard time package.
package clock
