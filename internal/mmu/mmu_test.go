package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// testCartridge maps the low byte of the address for reads, and
// records the last write.
type testCartridge struct {
	lastAddress uint16
	lastValue   uint8
}

func (c *testCartridge) Read(address uint16) uint8 { return uint8(address) }

func (c *testCartridge) Write(address uint16, value uint8) {
	c.lastAddress, c.lastValue = address, value
}

func (c *testCartridge) Header() cartridge.Header { return cartridge.Header{} }
func (c *testCartridge) Title() string            { return "TEST" }
func (c *testCartridge) Fingerprint() uint64      { return 0 }

func newTestMMU() (*MMU, *testCartridge, *ppu.PPU) {
	cart := &testCartridge{}
	irq := interrupts.NewService()
	video := ppu.New(irq)
	return NewMMU(cart, video, irq, log.NewNullLogger()), cart, video
}

func TestMMU_RAM(t *testing.T) {
	m, _, _ := newTestMMU()

	t.Run("work RAM", func(t *testing.T) {
		for addr := uint16(0xC000); addr < 0xE000; addr += 0x123 {
			require.NoError(t, m.Write(addr, uint8(addr>>4)))
			v, err := m.Read(addr)
			require.NoError(t, err)
			assert.Equal(t, uint8(addr>>4), v, "0x%04X", addr)
		}
	})
	t.Run("echo", func(t *testing.T) {
		require.NoError(t, m.Write(0xC123, 0x42))
		v, _ := m.Read(0xE123)
		assert.Equal(t, uint8(0x42), v)

		require.NoError(t, m.Write(0xFDFF, 0x24))
		v, _ = m.Read(0xDDFF)
		assert.Equal(t, uint8(0x24), v)
	})
	t.Run("high RAM", func(t *testing.T) {
		for addr := uint16(0xFF80); addr < 0xFFFF; addr++ {
			require.NoError(t, m.Write(addr, uint8(addr)^0xA5))
		}
		for addr := uint16(0xFF80); addr < 0xFFFF; addr++ {
			v, err := m.Read(addr)
			require.NoError(t, err)
			assert.Equal(t, uint8(addr)^0xA5, v, "0x%04X", addr)
		}
	})
	t.Run("unusable", func(t *testing.T) {
		require.NoError(t, m.Write(0xFEA0, 0x42))
		v, err := m.Read(0xFEA0)
		require.NoError(t, err)
		assert.Equal(t, uint8(0x00), v)
	})
}

func TestMMU_Devices(t *testing.T) {
	m, cart, video := newTestMMU()

	t.Run("cartridge", func(t *testing.T) {
		v, _ := m.Read(0x4123)
		assert.Equal(t, uint8(0x23), v)
		v, _ = m.Read(0xA042)
		assert.Equal(t, uint8(0x42), v)

		require.NoError(t, m.Write(0x2000, 0x05))
		assert.Equal(t, uint16(0x2000), cart.lastAddress)
		assert.Equal(t, uint8(0x05), cart.lastValue)
	})
	t.Run("video", func(t *testing.T) {
		require.NoError(t, m.Write(0x8010, 0x11))
		require.NoError(t, m.Write(0xFE10, 0x22))
		assert.Equal(t, uint8(0x11), video.ReadVRAM(0x8010))
		assert.Equal(t, uint8(0x22), video.ReadOAM(0xFE10))
	})
	t.Run("LY write resets", func(t *testing.T) {
		for i := 0; i < 5*ppu.LineCycles; i++ {
			m.Tick()
		}
		v, _ := m.Read(types.LY)
		require.Equal(t, uint8(5), v)
		require.NoError(t, m.Write(types.LY, 0x99))
		v, _ = m.Read(types.LY)
		assert.Equal(t, uint8(0), v)
		assert.Equal(t, uint64(5*ppu.LineCycles), m.Cycles())
	})
	t.Run("interrupts", func(t *testing.T) {
		require.NoError(t, m.Write(types.IE, 0x05))
		require.NoError(t, m.Write(types.IF, 0x04))
		assert.Equal(t, uint8(0x05), m.Interrupts().Enable())
		v, _ := m.Read(types.IF)
		assert.Equal(t, uint8(0xE4), v)
		assert.True(t, m.Interrupts().HasInterrupts())
	})
}

func TestMMU_Ignored(t *testing.T) {
	m, _, _ := newTestMMU()
	for _, addr := range []uint16{0xFF10, 0xFF26, 0xFF30, 0xFF3F, 0xFF4C, 0xFF4F, 0xFF51, 0xFF70, 0xFF7F} {
		require.NoError(t, m.Write(addr, 0x00), "0x%04X", addr)
		v, err := m.Read(addr)
		require.NoError(t, err)
		assert.Equal(t, uint8(0xFF), v, "0x%04X", addr)
	}
}

func TestMMU_Unmapped(t *testing.T) {
	m, _, _ := newTestMMU()
	// the joypad, serial and timer are mapped by the machine
	for _, addr := range []uint16{0xFF00, 0xFF01, 0xFF03, 0xFF04, 0xFF08, 0xFF0E} {
		_, err := m.Read(addr)
		assert.ErrorIs(t, err, ErrUnmappedAddress, "0x%04X", addr)

		err = m.Write(addr, 0x00)
		var unmapped *UnmappedAddressError
		require.ErrorAs(t, err, &unmapped)
		assert.Equal(t, addr, unmapped.Address)
		assert.True(t, unmapped.Write)
	}

	m.Map(IOFunc(func(uint16) uint8 { return 0x12 }, func(uint16, uint8) {}), 0xFF03)
	v, err := m.Read(0xFF03)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x12), v)

	assert.Panics(t, func() { m.Map(IOFunc(nil, nil), 0xFF80) })
}

func TestMMU_DMA(t *testing.T) {
	m, _, video := newTestMMU()
	for i := uint16(0); i < 0xA0; i++ {
		require.NoError(t, m.Write(0xC100+i, uint8(i)+1))
	}
	require.NoError(t, m.Write(types.DMA, 0xC1))
	for i := uint16(0); i < 0xA0; i++ {
		require.Equal(t, uint8(i)+1, video.ReadOAM(types.OAMStart+i))
	}
	v, _ := m.Read(types.DMA)
	assert.Equal(t, uint8(0xC1), v)

	// sources past the work RAM mirror
	require.NoError(t, m.Write(0xC000, 0x77))
	require.NoError(t, m.Write(types.DMA, 0xE0))
	assert.Equal(t, uint8(0x77), video.ReadOAM(types.OAMStart))
}

func TestMMU_BootROM(t *testing.T) {
	m, _, _ := newTestMMU()
	b := make([]byte, boot.Size)
	for i := range b {
		b[i] = 0xAA
	}
	rom, err := boot.LoadBootROM(b)
	require.NoError(t, err)
	m.SetBootROM(rom)

	assert.True(t, m.BootROMMapped())
	v, _ := m.Read(0x0010)
	assert.Equal(t, uint8(0xAA), v)
	v, _ = m.Read(0x0110)
	assert.Equal(t, uint8(0x10), v, "boot ROM only covers the first page")

	require.NoError(t, m.Write(types.BDIS, 0x01))
	assert.False(t, m.BootROMMapped())
	v, _ = m.Read(0x0010)
	assert.Equal(t, uint8(0x10), v)
}
