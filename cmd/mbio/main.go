// cmd/mbio/main.go
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cncio/mbio/internal/config"
	"github.com/cncio/mbio/internal/engine"
	"github.com/cncio/mbio/internal/gcode"
	"github.com/cncio/mbio/internal/host"
	tmodbus "github.com/cncio/mbio/internal/transport/modbus"
)

const banner = "[PLUGIN:MODBUS IO v0.1]"

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: mbio <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	// --------------------
	// Transport
	// --------------------

	tr, err := tmodbus.New(tmodbus.Config{
		Mode:     cfg.MBIO.Transport.Mode,
		Endpoint: cfg.MBIO.Transport.Endpoint,
		Device:   cfg.MBIO.Transport.Device,
		BaudRate: cfg.MBIO.Transport.BaudRate,
		DataBits: cfg.MBIO.Transport.DataBits,
		Parity:   cfg.MBIO.Transport.Parity,
		StopBits: cfg.MBIO.Transport.StopBits,
		Timeout:  time.Duration(cfg.MBIO.Transport.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("transport failed: %v", err)
	}
	defer tr.Close()

	// --------------------
	// Engine
	// --------------------

	notifier := host.NewNotifier(
		func(code uint16) { log.Printf("ALARM %d", code) },
		func(msg string) { log.Printf("warning: %s", msg) },
	)

	ecfg := engine.Config{
		Transport: tr,
		Reporter:  notifier,
		WaitStep:  time.Duration(cfg.MBIO.Engine.WaitStepMs) * time.Millisecond,
	}
	if cfg.MBIO.Engine.Trace {
		ecfg.Trace = func(dir string, adu []byte) {
			log.Printf("MODBUS %s: %s", strings.ToUpper(dir), hex.EncodeToString(adu))
		}
	}

	eng, err := engine.New(ecfg)
	if err != nil {
		log.Fatalf("engine failed: %v", err)
	}

	log.Print(banner)
	notifier.Ready()

	// --------------------
	// Command loop: one M-code line per input line
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		b, err := gcode.ParseLine(line)
		if err != nil {
			log.Printf("parse error: %v", err)
			continue
		}

		if !eng.Check(b.MCode) {
			log.Printf("M%d: no handler", b.MCode)
			continue
		}

		if err := eng.Validate(b); err != nil {
			log.Printf("M%d: %v", b.MCode, err)
			continue
		}

		eng.Execute(ctx, b)
		fmt.Printf("result: %d\n", eng.Result())

		if ctx.Err() != nil {
			break
		}
	}

	if err := sc.Err(); err != nil {
		log.Fatalf("stdin: %v", err)
	}
}
