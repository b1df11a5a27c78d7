//go:build linux
// +build linux

package main

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/drivers/console"
	"github.com/ajanata/drivers/ds3231"
)

func TestParseArgsDefaults(t *testing.T) {
	c := qt.New(t)
	o, err := parseArgs(nil)
	c.Assert(err, qt.IsNil)
	c.Assert(o.bus, qt.Equals, 0)
	c.Assert(o.addr, qt.Equals, uint16(0x68))
	c.Assert(o.interval, qt.Equals, time.Second)
	c.Assert(o.set, qt.IsNil)
	c.Assert(o.once, qt.IsFalse)
}

func TestParseArgs(t *testing.T) {
	c := qt.New(t)
	o, err := parseArgs([]string{
		"-once",
		"-bus", "3",
		"-addr=0x57",
		"-interval", "250ms",
		"-set", "0 59 23 7 31 12 23",
		"-broker", "tcp://localhost:1883",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(o.once, qt.IsTrue)
	c.Assert(o.bus, qt.Equals, 3)
	c.Assert(o.addr, qt.Equals, uint16(0x57))
	c.Assert(o.interval, qt.Equals, 250*time.Millisecond)
	c.Assert(*o.set, qt.Equals, ds3231.Fields{Second: 0, Minute: 59, Hour: 23, Weekday: 7, Date: 31, Month: 12, Year: 23})
	c.Assert(o.broker, qt.Equals, "tcp://localhost:1883")
}

func TestParseArgsErrors(t *testing.T) {
	c := qt.New(t)

	_, err := parseArgs([]string{"-set", "1 2 3"})
	c.Assert(errors.Is(err, console.ErrUsage), qt.IsTrue)

	_, err = parseArgs([]string{"-addr", "0x80"})
	c.Assert(err, qt.ErrorMatches, `-addr: .*value out of range`)

	_, err = parseArgs([]string{"-set", "0 0 0 1 1 1 0", "-ntp", "pool.ntp.org"})
	c.Assert(err, qt.ErrorMatches, `-set and -ntp: mutually exclusive`)

	_, err = parseArgs([]string{"stray"})
	c.Assert(err, qt.ErrorMatches, `\[stray\]: unexpected`)
}
