// Package tester provides fakes for exercising drivers without hardware.
package tester

import (
	"errors"
	"fmt"
)

// ErrNoDevice is returned for transactions addressed to a device that was never added to the bus.
var ErrNoDevice = errors.New("tester: no device at address")

// Transaction records a single Tx call as seen by the bus.
type Transaction struct {
	Addr uint16
	W    []byte
	// R is the number of bytes the caller asked to read.
	R int
}

// I2CBus is a fake I2C bus holding register-addressed devices. It implements drivers.I2C.
type I2CBus struct {
	devices map[uint16]*I2CDevice8
	failAt  map[int]error

	// Log holds every attempted transaction in order, including failed ones.
	Log []Transaction
}

// I2CDevice8 is a fake device with 256 8-bit registers and an auto-incrementing register pointer, the way most RTCs
// and sensors behave.
type I2CDevice8 struct {
	Addr      uint16
	Registers [256]uint8
	pointer   uint8
}

func NewI2CBus() *I2CBus {
	return &I2CBus{
		devices: make(map[uint16]*I2CDevice8),
		failAt:  make(map[int]error),
	}
}

// AddDevice attaches a new fake device at addr and returns it so tests can seed or inspect its registers.
func (b *I2CBus) AddDevice(addr uint16) *I2CDevice8 {
	d := &I2CDevice8{Addr: addr}
	b.devices[addr] = d
	return d
}

// FailAt makes the n-th transaction (counting from zero) return err instead of reaching the device.
func (b *I2CBus) FailAt(n int, err error) {
	b.failAt[n] = err
}

// Writes returns the write payloads of all logged transactions that did not read anything.
func (b *I2CBus) Writes() [][]byte {
	var out [][]byte
	for _, tx := range b.Log {
		if tx.R == 0 {
			out = append(out, tx.W)
		}
	}
	return out
}

func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	n := len(b.Log)
	b.Log = append(b.Log, Transaction{Addr: addr, W: append([]byte(nil), w...), R: len(r)})
	if err, ok := b.failAt[n]; ok {
		return err
	}

	d, ok := b.devices[addr]
	if !ok {
		return fmt.Errorf("%w 0x%02x", ErrNoDevice, addr)
	}
	if len(w) > 0 {
		d.pointer = w[0]
		for _, v := range w[1:] {
			d.Registers[d.pointer] = v
			d.pointer++
		}
	}
	for i := range r {
		r[i] = d.Registers[d.pointer]
		d.pointer++
	}
	return nil
}

func (b *I2CBus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{reg}, buf)
}

func (b *I2CBus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{reg}, buf...), nil)
}
