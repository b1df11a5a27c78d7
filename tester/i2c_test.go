package tester

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"tinygo.org/x/drivers"
)

var _ drivers.I2C = (*I2CBus)(nil)

func TestRegisterPointer(t *testing.T) {
	c := qt.New(t)
	bus := NewI2CBus()
	dev := bus.AddDevice(0x68)

	c.Assert(bus.Tx(0x68, []byte{0x04, 0x31, 0x12}, nil), qt.IsNil)
	c.Assert(dev.Registers[0x04], qt.Equals, uint8(0x31))
	c.Assert(dev.Registers[0x05], qt.Equals, uint8(0x12))

	buf := make([]byte, 2)
	c.Assert(bus.ReadRegister(0x68, 0x04, buf), qt.IsNil)
	c.Assert(buf, qt.DeepEquals, []byte{0x31, 0x12})
	c.Assert(bus.Log, qt.HasLen, 2)
	c.Assert(bus.Writes(), qt.DeepEquals, [][]byte{{0x04, 0x31, 0x12}})
}

func TestMissingDevice(t *testing.T) {
	c := qt.New(t)
	bus := NewI2CBus()
	err := bus.Tx(0x50, []byte{0}, nil)
	c.Assert(errors.Is(err, ErrNoDevice), qt.IsTrue)
}

func TestFailAt(t *testing.T) {
	c := qt.New(t)
	bus := NewI2CBus()
	dev := bus.AddDevice(0x68)
	boom := errors.New("nack")
	bus.FailAt(1, boom)

	c.Assert(bus.WriteRegister(0x68, 0x00, []byte{0x01}), qt.IsNil)
	c.Assert(bus.WriteRegister(0x68, 0x01, []byte{0x02}), qt.Equals, boom)
	c.Assert(dev.Registers[0x01], qt.Equals, uint8(0))
	c.Assert(bus.Log, qt.HasLen, 2)
}
