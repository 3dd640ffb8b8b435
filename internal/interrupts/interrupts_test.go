package interrupts

import "testing"

var sources = []Source{VBlank, LCDStat, Timer, Serial, Joypad}

func TestService_Acknowledge(t *testing.T) {
	t.Run("priority", func(t *testing.T) {
		// every combination of requested and enabled interrupts
		for enable := 0; enable < 0x20; enable++ {
			for flag := 0; flag < 0x20; flag++ {
				s := NewService()
				s.SetEnable(uint8(enable))
				s.SetFlag(uint8(flag))

				common := uint8(enable & flag)
				got, ok := s.Acknowledge()
				if common == 0 {
					if ok {
						t.Fatalf("IE=%05b IF=%05b: expected no interrupt, got %s", enable, flag, got)
					}
					if s.Flag() != uint8(flag) || s.Enable() != uint8(enable) {
						t.Fatalf("IE=%05b IF=%05b: acknowledge mutated state", enable, flag)
					}
					continue
				}

				var want Source
				for _, src := range sources {
					if common&uint8(src) != 0 {
						want = src
						break
					}
				}
				if !ok || got != want {
					t.Fatalf("IE=%05b IF=%05b: expected %s, got %s (%v)", enable, flag, want, got, ok)
				}
				if s.Flag() != uint8(flag)&^uint8(want) {
					t.Fatalf("IE=%05b IF=%05b: expected only %s to be cleared, IF=%05b", enable, flag, want, s.Flag())
				}
				if s.Enable() != uint8(enable) {
					t.Fatalf("acknowledge must not modify IE")
				}
			}
		}
	})
	t.Run("drains in order", func(t *testing.T) {
		s := NewService()
		s.SetEnable(0x1F)
		for i := len(sources) - 1; i >= 0; i-- {
			s.Request(sources[i])
		}
		for _, want := range sources {
			got, ok := s.Acknowledge()
			if !ok || got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		}
		if s.HasInterrupts() {
			t.Errorf("expected no pending interrupts")
		}
	})
}

func TestService_HasInterrupts(t *testing.T) {
	s := NewService()
	s.Request(Timer)
	if s.HasInterrupts() {
		t.Errorf("requested but not enabled interrupt should not be pending")
	}
	s.SetEnable(uint8(Timer))
	if !s.HasInterrupts() {
		t.Errorf("requested and enabled interrupt should be pending")
	}
}

func TestService_Registers(t *testing.T) {
	s := NewService()
	s.WriteFlag(0xFF0F, 0xFF)
	if s.Flag() != 0x1F {
		t.Errorf("expected only 5 bits of IF to be stored, got %08b", s.Flag())
	}
	if s.ReadFlag(0xFF0F) != 0xFF {
		t.Errorf("expected upper bits of IF to read as set, got %08b", s.ReadFlag(0xFF0F))
	}
	s.WriteFlag(0xFF0F, 0x00)
	if s.ReadFlag(0xFF0F) != 0xE0 {
		t.Errorf("expected IF to read 0xE0, got 0x%02X", s.ReadFlag(0xFF0F))
	}
	s.WriteEnable(0xFFFF, 0x15)
	if s.ReadEnable(0xFFFF) != 0x15 {
		t.Errorf("expected IE to read 0x15, got 0x%02X", s.ReadEnable(0xFFFF))
	}

	// IE keeps all 8 bits, only the lower 5 enable anything
	s.WriteEnable(0xFFFF, 0xE4)
	if s.ReadEnable(0xFFFF) != 0xE4 {
		t.Errorf("expected IE to read 0xE4, got 0x%02X", s.ReadEnable(0xFFFF))
	}
	if s.Enable() != 0x04 {
		t.Errorf("expected 0x04 to be enabled, got 0x%02X", s.Enable())
	}
	s.SetFlag(0x1B)
	if s.HasInterrupts() {
		t.Errorf("expected the upper bits of IE to enable nothing")
	}
	s.Request(Timer)
	if src, ok := s.Acknowledge(); !ok || src != Timer {
		t.Errorf("expected Timer to be acknowledged, got %s", src)
	}
}

func TestSource_Vector(t *testing.T) {
	for i, src := range sources {
		if want := uint16(0x40 + i*8); src.Vector() != want {
			t.Errorf("%s: expected vector 0x%04X, got 0x%04X", src, want, src.Vector())
		}
	}
}
