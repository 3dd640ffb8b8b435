// Command dmgcore runs a Game Boy ROM headlessly, optionally printing
// everything the ROM sends over the serial port.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	steps := flag.Int("steps", 0, "The number of steps to run for, 0 runs until interrupted")
	serial := flag.Bool("serial", false, "Write serial output to stdout")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := logrus.InfoLevel
	if *debug {
		level = logrus.DebugLevel
	}
	logger := log.NewWithLevel(level)

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("unable to load rom: %s", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *bootROM != "" {
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Errorf("unable to load boot rom: %s", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if *serial {
		opts = append(opts, gameboy.WithSerialOutput(os.Stdout))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Errorf("unable to create gameboy: %s", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n, err := gb.Run(ctx, *steps)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("%s", err)
		stop()
		os.Exit(1)
	}
	logger.Infof("ran %d steps in %d cycles", n, gb.Cycles())
}
