// Package memory implements the 16-bit address space bus that a 6502 core
// runs against: a flat RAM array plus an ordered list of memory-mapped
// peripheral devices that can claim individual addresses.
package memory

import "fmt"

// Device is the capability set a memory-mapped peripheral must implement.
// The Bus selects devices by capability, not by a closed type hierarchy, so
// new peripherals can be added without touching Bus itself.
type Device interface {
	// Handles reports whether this device claims addr. The Bus never calls
	// Read or Write on an address a device disclaims.
	Handles(addr uint16) bool
	// Read returns the byte at addr. Only called when Handles(addr) is true.
	Read(addr uint16) uint8
	// Write stores val at addr. Only called when Handles(addr) is true.
	Write(addr uint16, val uint8)
}

// OutOfRangeError is returned when a RAM size or load request falls outside
// the addressable range the Bus supports.
type OutOfRangeError struct {
	Reason string
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("memory: out of range: %s", e.Reason)
}

// openBusValue is returned for reads above the configured RAM size that no
// device claims. Real 6502 systems float the data bus to whatever was last
// driven; we settle on a fixed value since nothing in this emulator depends
// on the exact floating behavior.
const openBusValue = uint8(0xFF)

// Bus routes every 16-bit address either to an attached Device or, failing
// that, to a flat RAM array. Attachment order determines which device wins
// when more than one would claim the same address.
type Bus struct {
	ram     []uint8
	devices []Device
}

// NewBus allocates a Bus with ramSize bytes of RAM, ramSize must be in
// [1, 65536].
func NewBus(ramSize int) (*Bus, error) {
	if ramSize < 1 || ramSize > 1<<16 {
		return nil, OutOfRangeError{Reason: fmt.Sprintf("ram size %d must be in [1, 65536]", ramSize)}
	}
	return &Bus{ram: make([]uint8, ramSize)}, nil
}

// Attach appends dev to the device list. Devices are consulted in the order
// they were attached; the first whose Handles(addr) is true wins.
func (b *Bus) Attach(dev Device) {
	b.devices = append(b.devices, dev)
}

// Read returns the byte at addr, consulting attached devices first and
// falling back to RAM. Addresses above the configured RAM with no claiming
// device read as 0xFF.
func (b *Bus) Read(addr uint16) uint8 {
	if dev := b.deviceFor(addr); dev != nil {
		return dev.Read(addr)
	}
	if int(addr) < len(b.ram) {
		return b.ram[addr]
	}
	return openBusValue
}

// Write stores val at addr, consulting attached devices first and falling
// back to RAM. Writes above the configured RAM with no claiming device are
// silently dropped.
func (b *Bus) Write(addr uint16, val uint8) {
	if dev := b.deviceFor(addr); dev != nil {
		dev.Write(addr, val)
		return
	}
	if int(addr) < len(b.ram) {
		b.ram[addr] = val
	}
}

// Load copies data into RAM starting at start. It never touches attached
// devices. Fails with OutOfRangeError if the data would run past the end
// of RAM.
func (b *Bus) Load(start uint16, data []uint8) error {
	end := int(start) + len(data)
	if end > len(b.ram) {
		return OutOfRangeError{Reason: fmt.Sprintf("load of %d bytes at 0x%04X runs past RAM size %d", len(data), start, len(b.ram))}
	}
	copy(b.ram[start:end], data)
	return nil
}

// Clear zeroes every RAM byte. Attached devices are untouched.
func (b *Bus) Clear() {
	for i := range b.ram {
		b.ram[i] = 0
	}
}

// RAMSize returns the configured RAM size in bytes.
func (b *Bus) RAMSize() int {
	return len(b.ram)
}

// deviceFor returns the first attached device that claims addr, or nil.
func (b *Bus) deviceFor(addr uint16) Device {
	for _, dev := range b.devices {
		if dev.Handles(addr) {
			return dev
		}
	}
	return nil
}
