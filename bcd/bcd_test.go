package bcd

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRoundTrip(t *testing.T) {
	c := qt.New(t)
	for d := 0; d <= 99; d++ {
		c.Assert(Decode(Encode(uint8(d))), qt.Equals, uint8(d), qt.Commentf("value %d", d))
	}
}

func TestEncode(t *testing.T) {
	c := qt.New(t)
	c.Assert(Encode(0), qt.Equals, uint8(0x00))
	c.Assert(Encode(7), qt.Equals, uint8(0x07))
	c.Assert(Encode(59), qt.Equals, uint8(0x59))
	c.Assert(Encode(99), qt.Equals, uint8(0x99))
	// tens digit 10 lands in the high nibble as 0xA
	c.Assert(Encode(100), qt.Equals, uint8(0xA0))
}

func TestDecode(t *testing.T) {
	c := qt.New(t)
	c.Assert(Decode(0x00), qt.Equals, uint8(0))
	c.Assert(Decode(0x23), qt.Equals, uint8(23))
	c.Assert(Decode(0x31), qt.Equals, uint8(31))
	c.Assert(Decode(0x99), qt.Equals, uint8(99))
	// malformed nibbles are evaluated arithmetically
	c.Assert(Decode(0x1F), qt.Equals, uint8(25))
}
