// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command powcheck is a standalone debug tool for litecoinzd's
// proof-of-work consensus core. It loads a chain of headers from a JSON
// file and, for every header past genesis, replays the retarget engine to
// confirm the header's nBits is the one NextWorkRequired would have
// demanded, then checks the header's proof of work and Equihash solution.
// It does not mine, assemble blocks, or talk to a network; it is a
// consumer of the core's exported entry points, the same way a wallet or
// block explorer would be.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/litecoinz-project/litecoinzd/blockchain"
	"github.com/litecoinz-project/litecoinzd/chaincfg"
)

// chainParamsForNetwork resolves the --network flag to a concrete
// *chaincfg.Params, mirroring the daemon's own netParams lookup.
func chainParamsForNetwork(network string) *chaincfg.Params {
	switch network {
	case "testnet":
		return chaincfg.TestNetParams()
	case "regnet":
		return chaincfg.RegNetParams()
	default:
		return chaincfg.MainNetParams()
	}
}

// chainCtx is the trivial blockchain.ChainCtx implementation powcheck
// needs: a single immutable params bundle, resolved once at startup.
type chainCtx struct {
	params *chaincfg.Params
}

func (c chainCtx) ChainParams() *chaincfg.Params { return c.params }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "powcheck:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	setLogLevels(cfg.DebugLevel)

	params := chainParamsForNetwork(cfg.Network)
	log.Infof("checking chain file %s against %s", cfg.ChainFile, params.Name)

	headers, err := loadChainFile(cfg.ChainFile)
	if err != nil {
		return err
	}
	if len(headers) == 0 {
		return fmt.Errorf("chain file %s contains no headers", cfg.ChainFile)
	}

	nodes := buildChain(headers)
	chain := chainCtx{params: params}

	failures := 0
	for _, n := range nodes {
		if n.height == 0 {
			continue // genesis carries no retarget or proof-of-work obligation here
		}

		parent := n.Parent()
		wantBits, err := blockchain.NextWorkRequired(parent, n.Timestamp().Unix(), chain)
		if err != nil {
			log.Errorf("height %d: retarget error: %v", n.height, err)
			failures++
			continue
		}

		result := headerResult{height: n.height}

		if wantBits != n.header.Bits {
			result.bitsOK = false
			result.wantBits = wantBits
		} else {
			result.bitsOK = true
		}

		powHash := n.header.BlockHash()
		result.powOK = blockchain.CheckProofOfWork(powHash, n.header.Bits, params)
		result.equihashOK = blockchain.CheckEquihashSolution(n.header)

		if !result.bitsOK || !result.powOK || !result.equihashOK {
			failures++
		}
		if !cfg.Quiet || !result.allOK() {
			printResult(result)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d headers failed validation", failures, len(nodes)-1)
	}
	log.Infof("all %d headers validated", len(nodes)-1)
	return nil
}

// headerResult summarizes the three independent checks run against a
// single header.
type headerResult struct {
	height     int64
	bitsOK     bool
	wantBits   uint32
	powOK      bool
	equihashOK bool
}

func (r headerResult) allOK() bool { return r.bitsOK && r.powOK && r.equihashOK }

func printResult(r headerResult) {
	status := "ok"
	if !r.allOK() {
		status = "FAIL"
	}
	fmt.Printf("height %-8d retarget=%v pow=%v equihash=%v [%s]",
		r.height, r.bitsOK, r.powOK, r.equihashOK, status)
	if !r.bitsOK {
		fmt.Printf(" (want bits %08x)", r.wantBits)
	}
	fmt.Println()
}
