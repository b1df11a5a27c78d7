// Package ntp is a minimal SNTP client, enough to seed a real-time clock from a time server. It only builds the
// request and reads the server's transmit timestamp; no delay or offset correction is attempted.
package ntp

import (
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	PacketSize = 48
	Port       = 123

	// seconds between the NTP epoch (1900) and the Unix epoch
	seventyYears = 2208988800
)

var ErrShortPacket = errors.New("ntp: short packet")

// Request returns a client-mode request packet.
func Request() []byte {
	b := make([]byte, PacketSize)
	b[0] = 0b11100011 // LI, Version, Mode
	b[1] = 0          // Stratum, or type of clock
	b[2] = 6          // Polling Interval
	b[3] = 0xEC       // Peer Clock Precision
	// 8 bytes of zero for Root Delay & Root Dispersion
	b[12] = 49
	b[13] = 0x4E
	b[14] = 49
	b[15] = 52
	return b
}

// Parse extracts the transmit timestamp from a server response, truncated to whole seconds.
func Parse(b []byte) (time.Time, error) {
	if len(b) < PacketSize {
		return time.Time{}, fmt.Errorf("%w: %d bytes", ErrShortPacket, len(b))
	}
	// the timestamp starts at byte 40 of the received packet and is four bytes,
	// this is NTP time (seconds since Jan 1 1900):
	t := uint32(b[40])<<24 | uint32(b[41])<<16 | uint32(b[42])<<8 | uint32(b[43])
	return time.Unix(int64(t)-seventyYears, 0).UTC(), nil
}

// Query sends a request over conn and parses the first response. conn is expected to be a datagram socket: the
// response is taken from a single Read, and a short datagram fails with ErrShortPacket instead of waiting for more.
// Any deadline must be set on conn by the caller.
func Query(conn io.ReadWriter) (time.Time, error) {
	if _, err := conn.Write(Request()); err != nil {
		return time.Time{}, fmt.Errorf("ntp: sending request: %w", err)
	}
	b := make([]byte, PacketSize)
	n, err := conn.Read(b)
	if err != nil {
		return time.Time{}, fmt.Errorf("ntp: reading response: %w", err)
	}
	return Parse(b[:n])
}
