package boot

import (
	"errors"
	"testing"
)

func TestLoadBootROM(t *testing.T) {
	t.Run("invalid size", func(t *testing.T) {
		for _, size := range []int{0, 0xFF, 0x101, 0x900} {
			if _, err := LoadBootROM(make([]byte, size)); !errors.Is(err, ErrInvalidBootROM) {
				t.Errorf("size %d: expected ErrInvalidBootROM, got %v", size, err)
			}
		}
	})
	t.Run("unknown model", func(t *testing.T) {
		b := make([]byte, Size)
		b[0x10] = 0x42
		rom, err := LoadBootROM(b)
		if err != nil {
			t.Fatal(err)
		}
		if rom.Model() != "unknown" {
			t.Errorf("expected unknown model, got %s", rom.Model())
		}
		if rom.Read(0x10) != 0x42 {
			t.Errorf("expected 0x42 at 0x10, got 0x%02X", rom.Read(0x10))
		}
		// the image is copied
		b[0x10] = 0
		if rom.Read(0x10) != 0x42 {
			t.Errorf("expected boot ROM to be independent of the input slice")
		}
		if len(rom.Checksum()) != 32 {
			t.Errorf("expected hex encoded MD5 checksum, got %q", rom.Checksum())
		}
	})
	t.Run("nil", func(t *testing.T) {
		var rom *ROM
		if rom.Model() != "none" || rom.Checksum() != "" {
			t.Errorf("expected nil boot ROM to report no model")
		}
	})
}
