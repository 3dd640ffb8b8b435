package cartridge

import (
	"errors"
	"testing"

	"github.com/cespare/xxhash"
)

// newTestROM builds a ROM image of the given number of 16KiB banks with a
// valid header. Every bank is filled with its own bank number.
func newTestROM(t Type, banks int, ramSize uint8) []byte {
	rom := make([]byte, banks*0x4000)
	for bank := 0; bank < banks; bank++ {
		for i := 0; i < 0x4000; i++ {
			rom[bank*0x4000+i] = uint8(bank)
		}
	}
	copy(rom[0x134:0x144], "TEST ROM")
	for i := 0x134 + len("TEST ROM"); i < 0x144; i++ {
		rom[i] = 0
	}
	rom[0x147] = uint8(t)
	for n := uint8(0); 0x8000<<n < len(rom); n++ {
		rom[0x148] = n + 1
	}
	rom[0x149] = ramSize
	for i := 0x14A; i < 0x14D; i++ {
		rom[i] = 0
	}

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestNew(t *testing.T) {
	t.Run("ROM only", func(t *testing.T) {
		rom := newTestROM(ROM, 2, 0)
		c, err := New(rom)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := c.(*ROMCartridge); !ok {
			t.Fatalf("expected *ROMCartridge, got %T", c)
		}
		if c.Title() != "TEST ROM" {
			t.Errorf("expected title %q, got %q", "TEST ROM", c.Title())
		}
		if c.Header().ROMSize != 32*1024 {
			t.Errorf("expected 32KiB ROM, got %d", c.Header().ROMSize)
		}
		if c.Fingerprint() != xxhash.Sum64(rom) {
			t.Errorf("expected fingerprint to be the xxhash of the image")
		}
	})
	t.Run("MBC1", func(t *testing.T) {
		for _, typ := range []Type{MBC1, MBC1RAM, MBC1RAMBATT} {
			c, err := New(newTestROM(typ, 4, 0x02))
			if err != nil {
				t.Fatal(err)
			}
			if _, ok := c.(*MemoryBankedCartridge1); !ok {
				t.Errorf("%s: expected *MemoryBankedCartridge1, got %T", typ, c)
			}
		}
	})
	t.Run("unsupported", func(t *testing.T) {
		for _, typ := range []Type{MBC2, MBC3, MBC5, 0xFF} {
			if _, err := New(newTestROM(typ, 2, 0)); !errors.Is(err, ErrUnsupportedCartridge) {
				t.Errorf("%s: expected ErrUnsupportedCartridge, got %v", typ, err)
			}
		}
	})
	t.Run("bad checksum", func(t *testing.T) {
		rom := newTestROM(ROM, 2, 0)
		rom[0x14D]++
		c, err := New(rom)
		if err != nil {
			t.Fatalf("expected a bad checksum to load, got %v", err)
		}
		if c.Header().ValidChecksum {
			t.Errorf("expected the checksum to be reported invalid")
		}
		if c.Title() != "TEST ROM" {
			t.Errorf("expected title %q, got %q", "TEST ROM", c.Title())
		}
	})
	t.Run("valid checksum", func(t *testing.T) {
		c, _ := New(newTestROM(MBC1, 4, 0))
		if !c.Header().ValidChecksum {
			t.Errorf("expected the checksum to be reported valid")
		}
	})
	t.Run("too small", func(t *testing.T) {
		// a bare program at the entry point, with no header
		rom := make([]byte, 0x107)
		copy(rom[0x100:], []byte{0x00, 0xC3, 0x04, 0x01, 0x00, 0x00, 0xAF})
		c, err := New(rom)
		if err != nil {
			t.Fatalf("expected a headerless image to load, got %v", err)
		}
		if _, ok := c.(*ROMCartridge); !ok {
			t.Fatalf("expected *ROMCartridge, got %T", c)
		}
		if c.Read(0x0101) != 0xC3 {
			t.Errorf("expected the image to be readable, got 0x%02X", c.Read(0x0101))
		}
		if c.Read(0x0107) != 0xFF || c.Read(0x7FFF) != 0xFF {
			t.Errorf("expected reads past the image to return 0xFF")
		}
		if c.Title() != "" {
			t.Errorf("expected an empty title, got %q", c.Title())
		}
	})
	t.Run("empty", func(t *testing.T) {
		c, err := New(nil)
		if err != nil {
			t.Fatal(err)
		}
		if c.Read(0x0100) != 0xFF {
			t.Errorf("expected an empty image to read 0xFF")
		}
	})
}

func TestROMCartridge(t *testing.T) {
	c, err := New(newTestROM(ROM, 2, 0))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x2000, 0x05)
	if c.Read(0x4000) != 1 {
		t.Errorf("expected writes to be ignored, read bank %d", c.Read(0x4000))
	}
	if c.Read(0xA000) != 0xFF {
		t.Errorf("expected external RAM to read 0xFF, got 0x%02X", c.Read(0xA000))
	}
}

func TestMemoryBankedCartridge1(t *testing.T) {
	t.Run("ROM banking", func(t *testing.T) {
		c, _ := New(newTestROM(MBC1, 64, 0))
		if c.Read(0x4000) != 1 {
			t.Fatalf("expected bank 1 at start, got %d", c.Read(0x4000))
		}
		for _, tt := range []struct {
			value uint8
			bank  uint8
		}{{0x00, 1}, {0x01, 1}, {0x05, 5}, {0x1F, 31}, {0x3F, 31}} {
			c.Write(0x2000, tt.value)
			if got := c.Read(0x4000); got != tt.bank {
				t.Errorf("write 0x%02X: expected bank %d, got %d", tt.value, tt.bank, got)
			}
		}
		c.Write(0x2000, 0x02)
		c.Write(0x4000, 0x01)
		if got := c.Read(0x7FFF); got != 0x22 {
			t.Errorf("expected upper bank bits to select bank 34, got %d", got)
		}
		if c.Read(0x0000) != 0 {
			t.Errorf("expected bank 0 to be fixed in simple mode")
		}
		c.Write(0x6000, 0x01)
		if got := c.Read(0x0000); got != 0x20 {
			t.Errorf("expected bank 32 at 0x0000 in advanced mode, got %d", got)
		}
	})
	t.Run("bank wraps to ROM size", func(t *testing.T) {
		c, _ := New(newTestROM(MBC1, 4, 0))
		c.Write(0x2000, 0x06)
		if got := c.Read(0x4000); got != 2 {
			t.Errorf("expected bank 6 to wrap to 2, got %d", got)
		}
	})
	t.Run("RAM", func(t *testing.T) {
		c, _ := New(newTestROM(MBC1RAM, 4, 0x03))
		c.Write(0xA000, 0x42)
		if c.Read(0xA000) != 0xFF {
			t.Errorf("expected disabled RAM to read 0xFF")
		}
		c.Write(0x0000, 0x0A)
		c.Write(0xA000, 0x42)
		if c.Read(0xA000) != 0x42 {
			t.Errorf("expected RAM round trip, got 0x%02X", c.Read(0xA000))
		}

		// RAM banking only in advanced mode
		c.Write(0x4000, 0x01)
		if c.Read(0xA000) != 0x42 {
			t.Errorf("expected bank 0 in simple mode")
		}
		c.Write(0x6000, 0x01)
		if c.Read(0xA000) != 0x00 {
			t.Errorf("expected bank 1 to be empty, got 0x%02X", c.Read(0xA000))
		}

		c.Write(0x0000, 0x00)
		if c.Read(0xA000) != 0xFF {
			t.Errorf("expected RAM to read 0xFF after disabling")
		}
	})
}
