//go:build linux
// +build linux

// Rtcd reads a DS3231 attached to a Linux I2C adapter and prints the time once a second.
//
//	rtcd [-once] [-console] [-bus N] [-addr ADDR] [-interval DURATION]
//		[-set "SEC MIN HOUR DOW DATE MONTH YEAR"] [-ntp HOST]
//		[-broker URL] [-topic TOPIC]
//
// -set and -ntp write the clock once before polling starts. -console reads commands from stdin instead of polling.
// With -broker, every reading is also published over MQTT.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"

	"github.com/ajanata/drivers/console"
	"github.com/ajanata/drivers/ds3231"
	"github.com/ajanata/drivers/linuxi2c"
	"github.com/ajanata/drivers/monitor"
	"github.com/ajanata/drivers/ntp"
	"github.com/ajanata/drivers/publish"
)

type options struct {
	once     bool
	console  bool
	bus      int
	addr     uint16
	interval time.Duration
	set      *ds3231.Fields
	ntp      string
	broker   string
	topic    string
}

func parseArgs(args []string) (*options, error) {
	flag, args := flags.New(args, "-once", "-console")
	parm, args := parms.New(args, "-bus", "-addr", "-interval", "-set", "-ntp", "-broker", "-topic")
	if len(args) > 0 {
		return nil, fmt.Errorf("%v: unexpected", args)
	}

	o := &options{
		once:     flag.ByName["-once"],
		console:  flag.ByName["-console"],
		addr:     ds3231.DefaultAddress,
		interval: monitor.DefaultInterval,
		ntp:      parm.ByName["-ntp"],
		broker:   parm.ByName["-broker"],
		topic:    parm.ByName["-topic"],
	}
	if s := parm.ByName["-bus"]; len(s) > 0 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("-bus: %w", err)
		}
		o.bus = n
	}
	if s := parm.ByName["-addr"]; len(s) > 0 {
		n, err := strconv.ParseUint(s, 0, 7)
		if err != nil {
			return nil, fmt.Errorf("-addr: %w", err)
		}
		o.addr = uint16(n)
	}
	if s := parm.ByName["-interval"]; len(s) > 0 {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("-interval: %w", err)
		}
		o.interval = d
	}
	if s := parm.ByName["-set"]; len(s) > 0 {
		f, err := console.ParseFields(strings.Fields(s))
		if err != nil {
			return nil, fmt.Errorf("-set: %w", err)
		}
		o.set = &f
	}
	if o.set != nil && len(o.ntp) > 0 {
		return nil, fmt.Errorf("-set and -ntp: mutually exclusive")
	}
	return o, nil
}

func main() {
	o, err := parseArgs(os.Args[1:])
	if err == nil {
		err = run(o)
	}
	if err != nil && err != context.Canceled {
		log.Print("daemon", "err", err)
		fmt.Fprintln(os.Stderr, "rtcd:", err)
		os.Exit(1)
	}
}

func run(o *options) error {
	bus, err := linuxi2c.Open(o.bus)
	if err != nil {
		return err
	}
	defer bus.Close()

	rtc := ds3231.New(bus)
	rtc.Configure(ds3231.Config{Address: o.addr})

	if o.console {
		return console.New(rtc, os.Stdout).Run(os.Stdin)
	}

	if err := setClock(rtc, o); err != nil {
		return err
	}
	if lost, err := rtc.LostPower(); err != nil {
		return err
	} else if lost {
		log.Print("daemon", "warn", "oscillator stopped since last set, time is not trustworthy")
	}

	var sinks []monitor.Sink
	if len(o.broker) > 0 {
		client, err := publish.Dial(o.broker, fmt.Sprint("rtcd-", os.Getpid()))
		if err != nil {
			return err
		}
		defer client.Disconnect(250)
		sinks = append(sinks, publish.New(client, o.topic))
	}

	m := monitor.New(rtc, monitor.Config{
		Interval: o.interval,
		Sinks:    sinks,
	})
	if o.once {
		return m.Tick()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return m.Run(ctx)
}

// setClock applies -set or -ntp. A failed -set may leave the clock partially written; it is reported and not retried.
func setClock(rtc *ds3231.Device, o *options) error {
	if o.set != nil {
		if err := rtc.SetClock(*o.set); err != nil {
			return err
		}
		log.Print("daemon", "info", "clock set to ", o.set)
	}
	if len(o.ntp) > 0 {
		conn, err := net.DialTimeout("udp", net.JoinHostPort(o.ntp, strconv.Itoa(ntp.Port)), 5*time.Second)
		if err != nil {
			return err
		}
		defer conn.Close()
		conn.SetDeadline(time.Now().Add(5 * time.Second))
		t, err := ntp.Query(conn)
		if err != nil {
			return err
		}
		if err := rtc.Set(t); err != nil {
			return err
		}
		log.Print("daemon", "info", "clock set from ", o.ntp, " to ", t.Format(time.RFC3339))
	}
	return nil
}
