// Package console implements a small line-oriented command interpreter for inspecting and setting a real-time clock
// over a serial port or any other text stream.
//
// Commands:
//
//	get                          print the clock as HH:MM:SS DD/MM/YY
//	now                          print the clock as an RFC 3339 time
//	set SEC MIN HOUR DOW DATE MONTH YEAR
//	                             write the seven time registers, decimal values
//	settime RFC3339-TIME         write the registers from a timestamp
//	help                         list commands
//
// Arguments are split with shell quoting rules.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/shlex"

	"github.com/ajanata/drivers/ds3231"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
)

const usage = `commands:
  get
  now
  set SEC MIN HOUR DOW DATE MONTH YEAR
  settime RFC3339-TIME
  help
`

// Clock is the part of ds3231.Device the console drives.
type Clock interface {
	SetClock(ds3231.Fields) error
	ReadClock() (ds3231.Fields, error)
}

type Console struct {
	clock Clock
	out   io.Writer
}

func New(clock Clock, out io.Writer) *Console {
	return &Console{
		clock: clock,
		out:   out,
	}
}

// Run executes every line read from r until EOF. Command errors are reported on the output and do not stop the loop.
func (c *Console) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		_ = c.Exec(scanner.Text())
	}
	return scanner.Err()
}

// Exec runs a single command line. Any error is also written to the output.
func (c *Console) Exec(line string) error {
	err := c.exec(line)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
	}
	return err
}

func (c *Console) exec(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	switch cmd, args := args[0], args[1:]; cmd {
	case "get", "now":
		if len(args) != 0 {
			return fmt.Errorf("%s: %w", cmd, ErrUsage)
		}
		f, err := c.clock.ReadClock()
		if err != nil {
			return err
		}
		if cmd == "now" {
			fmt.Fprintln(c.out, f.Time().Format(time.RFC3339))
		} else {
			fmt.Fprintln(c.out, f)
		}
	case "set":
		f, err := ParseFields(args)
		if err != nil {
			return fmt.Errorf("set: %w", err)
		}
		if err := c.clock.SetClock(f); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "ok")
	case "settime":
		if len(args) != 1 {
			return fmt.Errorf("settime: %w", ErrUsage)
		}
		t, err := time.Parse(time.RFC3339, args[0])
		if err != nil {
			return fmt.Errorf("settime: %w", err)
		}
		f, err := ds3231.FieldsFromTime(t)
		if err != nil {
			return err
		}
		if err := c.clock.SetClock(f); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "ok")
	case "help":
		io.WriteString(c.out, usage)
	default:
		return fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
	}
	return nil
}

// ParseFields parses seven decimal register values in register order: seconds, minutes, hours, weekday, date, month,
// year. Only the byte range is checked.
func ParseFields(args []string) (ds3231.Fields, error) {
	if len(args) != 7 {
		return ds3231.Fields{}, ErrUsage
	}
	var values [7]uint8
	for i, s := range args {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return ds3231.Fields{}, err
		}
		values[i] = uint8(v)
	}
	return ds3231.FieldsFromValues(values), nil
}
