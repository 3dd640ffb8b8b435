// Package ram provides a basic RAM implementation.
package ram

import "fmt"

// RAM represents a fixed size block of RAM. Addresses are offsets
// from the start of the block; the owner of the RAM is responsible
// for translating bus addresses before accessing it.
type RAM struct {
	data []uint8
}

// NewRAM returns a new RAM of the given size, zeroed.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Size returns the number of bytes held by the RAM.
func (r *RAM) Size() int {
	return len(r.data)
}

// Read returns the value at the given offset.
func (r *RAM) Read(address uint16) uint8 {
	r.check(address)
	return r.data[address]
}

// Write writes the value to the given offset.
func (r *RAM) Write(address uint16, value uint8) {
	r.check(address)
	r.data[address] = value
}

// Bytes returns the underlying storage.
func (r *RAM) Bytes() []uint8 {
	return r.data
}

// check panics if the offset falls outside the RAM. This can only
// happen when a caller forgets to mask a bus address, which is a
// programming error rather than something the emulated program can
// cause.
func (r *RAM) check(address uint16) {
	if int(address) >= len(r.data) {
		panic(fmt.Sprintf("ram: offset 0x%04X out of bounds (size 0x%04X)", address, len(r.data)))
	}
}
