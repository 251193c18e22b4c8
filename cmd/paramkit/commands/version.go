// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import "github.com/bureau-foundation/paramkit/lib/version"

// versionInfo reports the running build. Tests replace it.
var versionInfo = version.Current
