// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tebeka/atexit"
	"go.uber.org/zap"

	"github.com/mmonicaama/Cpu-simulator/config"
	"github.com/mmonicaama/Cpu-simulator/emulator"
	"github.com/mmonicaama/Cpu-simulator/translate"
)

func main() {
	var program string
	var configFile string
	var memorySize int
	var dump string
	var timeout time.Duration
	var verbose bool
	var lang string

	flag.StringVar(&program, "p", "", "Program file to execute")
	flag.StringVar(&configFile, "config", "", "YAML configuration file")
	flag.IntVar(&memorySize, "m", 0, "Memory size, in cells (overrides config)")
	flag.StringVar(&dump, "dump", "", "Memory dump style: none, plain or table (overrides config)")
	flag.DurationVar(&timeout, "timeout", 0, "Run time limit, e.g. 5s (overrides config)")
	flag.BoolVar(&verbose, "v", false, "Trace every instruction")
	flag.StringVar(&lang, "lang", "", "Message language (overrides config)")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(program) == 0 {
		atexit.Fatalf("%v: no program given (-p)", os.Args[0])
	}

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			atexit.Fatalf("%v: %v", configFile, err)
		}
	}

	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "m":
			cfg.MemorySize = memorySize
		case "dump":
			cfg.Dump = dump
		case "v":
			cfg.Trace = verbose
		case "lang":
			cfg.Language = lang
		case "timeout":
			cfg.Timeout = timeout
		}
	})

	err := cfg.Validate()
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	if len(cfg.Language) != 0 {
		translate.SetLanguage(cfg.Language)
	}

	style, err := emulator.ParseDumpStyle(cfg.Dump)
	if err != nil {
		atexit.Fatalf("-dump: %v", err)
	}

	logger := zap.NewNop()
	if cfg.Trace {
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
	}
	zap.ReplaceGlobals(logger)
	atexit.Register(func() { _ = logger.Sync() })

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	emu := emulator.NewEmulator(cfg.MemorySize, logger)

	err = emu.LoadFile(program)
	if err == nil {
		err = emu.Run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", program, err)
		atexit.Exit(1)
	}

	err = emu.Dump(os.Stdout, style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", program, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
