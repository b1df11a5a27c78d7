package ds3231

import "fmt"

// BusError reports a failed bus transaction and the register it was addressing. Transient and permanent faults are
// not distinguished.
type BusError struct {
	Address  uint16
	Register Register
	// Op is "write" or "read".
	Op  string
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("ds3231: %s failed on I2C device 0x%02x at reg 0x%02x: %v", e.Op, e.Address, uint8(e.Register), e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
