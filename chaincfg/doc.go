// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the chain parameters the proof-of-work
// consensus core is evaluated against: the compact-target ceiling, the
// retarget algorithm hand-off height, and the window/damping constants for
// both the Digishield v3 and Zawy LWMA algorithms.
//
// Three networks are defined: main, test, and regression test. Each has a
// constructor function (MainNetParams, TestNetParams, RegNetParams) that
// returns a fresh *Params, so tests and callers can freely mutate their
// own copy without disturbing a shared package-level variable.
package chaincfg
