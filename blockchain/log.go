// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/decred/slog"

// log is the subsystem logger for this package. It defaults to the disabled
// backend so importers who never call UseLogger still link cleanly; none of
// these log calls have any bearing on a retarget or validation result, they
// are strictly informative.
var log = slog.Disabled

// UseLogger sets the subsystem logger used by this package. It is intended
// to be called by the application housing this package, typically from
// cmd/powcheck's logger setup, which wires a shared slog.Backend into each
// subsystem package without any of them importing a concrete logging
// implementation.
func UseLogger(logger slog.Logger) {
	log = logger
}
