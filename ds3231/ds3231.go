// Package ds3231 implements a driver for the DS3231 Real-Time Clock (RTC), providing read-write of the seven time and
// date registers plus the oscillator-stop flag and the temperature sensor. Alarms, the square-wave output and aging
// offset remain unimplemented.
//
// Every register is transferred in its own I2C transaction, in the order listed by TimeRegisters. A failure stops the
// sequence on the spot: a failed SetClock can leave the chip holding a mix of old and new values, so callers that care
// should read the clock back and retry the whole set.
//
// Datasheet: https://www.analog.com/media/en/technical-documentation/data-sheets/DS3231.pdf
package ds3231

import (
	"time"

	"github.com/ajanata/drivers/bcd"
	"tinygo.org/x/drivers"
)

type Device struct {
	bus     drivers.I2C
	Address uint16
}

type Config struct {
	Address uint16
}

// New creates a new driver on the specified preconfigured I2C bus. The device is not touched.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:     bus,
		Address: DefaultAddress,
	}
}

func (d *Device) Configure(c Config) {
	if c.Address == 0 {
		c.Address = DefaultAddress
	}
	d.Address = c.Address
}

// SetClock writes each field to its register, one two-byte transaction per register. It stops at the first failed
// transaction and returns a *BusError naming that register; registers after it are left untouched.
func (d *Device) SetClock(f Fields) error {
	values := f.Values()
	for i, reg := range TimeRegisters {
		buf := [2]byte{byte(reg), bcd.Encode(values[i])}
		if err := d.bus.Tx(d.Address, buf[:], nil); err != nil {
			return &BusError{Address: d.Address, Register: reg, Op: "write", Err: err}
		}
	}
	return nil
}

// ReadClock reads the seven time registers one at a time. Nothing is decoded unless all seven reads succeed; on
// failure the returned *BusError names the register that failed.
func (d *Device) ReadClock() (Fields, error) {
	var raw [7]uint8
	for i, reg := range TimeRegisters {
		w := [1]byte{byte(reg)}
		if err := d.bus.Tx(d.Address, w[:], raw[i:i+1]); err != nil {
			return Fields{}, &BusError{Address: d.Address, Register: reg, Op: "read", Err: err}
		}
	}

	var values [7]uint8
	for i, b := range raw {
		values[i] = bcd.Decode(b)
	}
	return FieldsFromValues(values), nil
}

// Set writes t to the clock, clears the oscillator-stop flag so LostPower reports false, and clears EOSC so the
// oscillator keeps running when the chip falls back to battery power.
func (d *Device) Set(t time.Time) error {
	f, err := FieldsFromTime(t)
	if err != nil {
		return err
	}
	err = d.SetClock(f)
	if err != nil {
		return err
	}

	status, err := d.read8(RegStatus)
	if err != nil {
		return err
	}
	err = d.write8(RegStatus, status&^statusOSF)
	if err != nil {
		return err
	}

	control, err := d.read8(RegControl)
	if err != nil {
		return err
	}
	if control&controlEOSC == 0 {
		return nil
	}
	return d.write8(RegControl, control&^controlEOSC)
}

// Now reads the clock as a UTC time.
func (d *Device) Now() (time.Time, error) {
	f, err := d.ReadClock()
	if err != nil {
		return time.Time{}, err
	}
	return f.Time(), nil
}

// LostPower reports whether the oscillator has stopped at some point since the time was last set, which means the
// registers can no longer be trusted.
func (d *Device) LostPower() (bool, error) {
	status, err := d.read8(RegStatus)
	if err != nil {
		return false, err
	}
	return status&statusOSF != 0, nil
}

// Temperature returns the die temperature in milli-degrees Celsius, at the chip's 0.25 °C resolution.
func (d *Device) Temperature() (int32, error) {
	buf := [2]byte{}
	w := [1]byte{byte(RegTemperature)}
	if err := d.bus.Tx(d.Address, w[:], buf[:]); err != nil {
		return 0, &BusError{Address: d.Address, Register: RegTemperature, Op: "read", Err: err}
	}
	// 10-bit two's complement, left aligned
	raw := int16(uint16(buf[0])<<8|uint16(buf[1])) >> 6
	return int32(raw) * 250, nil
}

func (d *Device) read8(reg Register) (uint8, error) {
	w := [1]byte{byte(reg)}
	r := [1]byte{}
	if err := d.bus.Tx(d.Address, w[:], r[:]); err != nil {
		return 0, &BusError{Address: d.Address, Register: reg, Op: "read", Err: err}
	}
	return r[0], nil
}

func (d *Device) write8(reg Register, val uint8) error {
	buf := [2]byte{byte(reg), val}
	if err := d.bus.Tx(d.Address, buf[:], nil); err != nil {
		return &BusError{Address: d.Address, Register: reg, Op: "write", Err: err}
	}
	return nil
}
