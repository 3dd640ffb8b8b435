package gameboy

import (
	io2 "io"

	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM maps the given boot ROM image over the start of the
// cartridge, and starts the CPU from power on instead of from the
// state the boot ROM leaves behind. An invalid image is reported
// by NewGameBoy.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		b, err := boot.LoadBootROM(rom)
		if err != nil {
			gb.err = err
			return
		}
		gb.bootROM = b
	}
}

// WithSerialOutput writes every byte sent over the serial port to w.
func WithSerialOutput(w io2.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}
