package ram

import "testing"

func TestRAM(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		r := NewRAM(0x2000)
		for i := 0; i < r.Size(); i++ {
			r.Write(uint16(i), uint8(i*7))
		}
		for i := 0; i < r.Size(); i++ {
			if got := r.Read(uint16(i)); got != uint8(i*7) {
				t.Fatalf("expected 0x%02X at 0x%04X, got 0x%02X", uint8(i*7), i, got)
			}
		}
	})
	t.Run("zeroed", func(t *testing.T) {
		r := NewRAM(0x7F)
		for i := 0; i < r.Size(); i++ {
			if r.Read(uint16(i)) != 0 {
				t.Fatalf("expected RAM to be zeroed at 0x%04X", i)
			}
		}
	})
	t.Run("out of bounds", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected out of bounds read to panic")
			}
		}()
		NewRAM(0x7F).Read(0x7F)
	})
}
