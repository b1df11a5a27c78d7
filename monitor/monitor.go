// Package monitor polls a real-time clock at a fixed interval, prints each reading and hands it to any number of
// sinks. Read failures are logged and the loop carries on with the next tick.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/platinasystems/log"

	"github.com/ajanata/drivers/ds3231"
)

const DefaultInterval = time.Second

type Reader interface {
	ReadClock() (ds3231.Fields, error)
}

// Sink receives every successful reading.
type Sink interface {
	Publish(ds3231.Fields) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ds3231.Fields) error

func (fn SinkFunc) Publish(f ds3231.Fields) error {
	return fn(f)
}

type Config struct {
	Interval time.Duration
	// Output receives one HH:MM:SS DD/MM/YY line per reading. Defaults to stdout.
	Output io.Writer
	// Log takes arguments the way platinasystems log.Print does. Defaults to log.Print.
	Log   func(args ...interface{})
	Sinks []Sink
}

type Monitor struct {
	clock Reader
	cfg   Config
}

func New(clock Reader, cfg Config) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Log == nil {
		cfg.Log = log.Print
	}
	return &Monitor{
		clock: clock,
		cfg:   cfg,
	}
}

// Tick takes one reading. A read error is logged and returned; sink errors are only logged.
func (m *Monitor) Tick() error {
	f, err := m.clock.ReadClock()
	if err != nil {
		var be *ds3231.BusError
		if errors.As(err, &be) {
			m.cfg.Log("err", fmt.Sprintf("failed to %s I2C device address %x at reg %x: %v",
				be.Op, be.Address, uint8(be.Register), be.Err))
		} else {
			m.cfg.Log("err", err)
		}
		return err
	}

	fmt.Fprintln(m.cfg.Output, f)
	for _, s := range m.cfg.Sinks {
		if err := s.Publish(f); err != nil {
			m.cfg.Log("err", "sink: ", err)
		}
	}
	return nil
}

// Run ticks immediately and then once per interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	t := time.NewTicker(m.cfg.Interval)
	defer t.Stop()
	for {
		_ = m.Tick()
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}
