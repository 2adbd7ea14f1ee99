// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "powcheck.conf"
	defaultLogLevel       = "info"
	defaultLogFilename    = "powcheck.log"
	defaultNetwork        = "mainnet"
)

var (
	defaultHomeDir    = appDataDir("powcheck")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, "logs")
)

// config defines the command-line and config-file options powcheck accepts.
// It follows the same two-pass load (pre-parse for -C/-h, then an optional
// ini file, then the full command line) the daemon this package's sibling
// packages come from uses, scaled down to the handful of knobs a standalone
// verifier needs.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	ChainFile  string `short:"f" long:"chainfile" description:"Path to a JSON file of headers to check" required:"true"`
	Network    string `short:"n" long:"network" description:"Network to validate against (mainnet, testnet, regnet)"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical"`
	Quiet      bool   `short:"q" long:"quiet" description:"Suppress per-header progress output"`
}

// loadConfig reads powcheck's command-line flags, layering an optional ini
// config file underneath them: a pre-parse pass picks up -C/--configfile
// without erroring on flags the ini parser doesn't know about yet, then
// the ini file (if present) seeds defaults the real command-line parse can
// still override.
func loadConfig() (*config, []string, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		Network:    defaultNetwork,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	_, err := preParser.Parse()
	if err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if _, err := os.Stat(preCfg.ConfigFile); err == nil {
		parser := flags.NewParser(&cfg, flags.Default)
		if err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile); err != nil {
			if _, ok := err.(*os.PathError); !ok {
				return nil, nil, fmt.Errorf("error parsing config file: %w", err)
			}
		}
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	switch cfg.Network {
	case "mainnet", "testnet", "regnet":
	default:
		return nil, nil, fmt.Errorf("unknown network %q", cfg.Network)
	}

	return &cfg, remainingArgs, nil
}

// appDataDir mirrors the well-known per-OS application data directory
// lookup used throughout the btcsuite/decred family (XDG on Linux, AppData
// on Windows, Application Support on Darwin), trimmed to the Unix-first
// path this tool actually needs at development time.
func appDataDir(appName string) string {
	if appName == "" || appName == "." {
		return "."
	}
	appName = "." + appName

	home := os.Getenv("HOME")
	if home == "" {
		if usr, err := os.UserHomeDir(); err == nil {
			home = usr
		}
	}
	if home != "" {
		return filepath.Join(home, appName)
	}
	return "."
}
