//go:build linux
// +build linux

// Package linuxi2c lets drivers in this module run on a Linux host by adapting /dev/i2c-N to drivers.I2C.
//
// Transfers go through SMBus byte and byte-data commands, which every i2c-dev adapter supports. A multi-byte register
// transfer is split into one command per byte with the register incremented each time, so it is not atomic.
package linuxi2c

import (
	"errors"
	"fmt"

	"github.com/platinasystems/i2c"
)

var ErrUnsupported = errors.New("linuxi2c: unsupported transfer")

type smbus interface {
	ForceSlaveAddress(n int) error
	Do(rw i2c.RW, command uint8, size i2c.SMBusSize, data *i2c.SMBusData) error
	Close() error
}

// Bus implements drivers.I2C on top of a Linux i2c-dev adapter.
type Bus struct {
	dev   smbus
	index int
	addr  int
}

// Open opens /dev/i2c-index.
func Open(index int) (*Bus, error) {
	dev := new(i2c.Bus)
	if err := dev.Open(index); err != nil {
		return nil, err
	}
	return newBus(dev, index), nil
}

func newBus(dev smbus, index int) *Bus {
	return &Bus{
		dev:   dev,
		index: index,
		addr:  -1,
	}
}

func (b *Bus) Close() error {
	return b.dev.Close()
}

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if err := b.target(addr); err != nil {
		return err
	}

	var sd i2c.SMBusData
	switch {
	case len(w) == 0 && len(r) == 0:
		return ErrUnsupported
	case len(w) == 0:
		// device without registers
		for i := range r {
			if err := b.dev.Do(i2c.Read, 0, i2c.Byte, &sd); err != nil {
				return b.wrap(addr, err)
			}
			r[i] = sd[0]
		}
	case len(r) == 0:
		if len(w) == 1 {
			return b.wrap(addr, b.dev.Do(i2c.Write, w[0], i2c.Byte, &sd))
		}
		for i, v := range w[1:] {
			sd[0] = v
			if err := b.dev.Do(i2c.Write, w[0]+uint8(i), i2c.ByteData, &sd); err != nil {
				return b.wrap(addr, err)
			}
		}
	default:
		if len(w) != 1 {
			return ErrUnsupported
		}
		for i := range r {
			if err := b.dev.Do(i2c.Read, w[0]+uint8(i), i2c.ByteData, &sd); err != nil {
				return b.wrap(addr, err)
			}
			r[i] = sd[0]
		}
	}
	return nil
}

func (b *Bus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{reg}, buf)
}

func (b *Bus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{reg}, buf...), nil)
}

func (b *Bus) target(addr uint16) error {
	if int(addr) == b.addr {
		return nil
	}
	if err := b.dev.ForceSlaveAddress(int(addr)); err != nil {
		return b.wrap(addr, err)
	}
	b.addr = int(addr)
	return nil
}

func (b *Bus) wrap(addr uint16, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("i2c-%d.%02x: %w", b.index, addr, err)
}
