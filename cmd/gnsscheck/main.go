// Package main checks live or recorded NMEA receiver output against the GNSS
// HAL location conformance rules and reports every violated rule.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"

	"github.com/edaniels/golog"
	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/gnssvts/gnss"
	"go.viam.com/gnssvts/vts"
)

var logger = golog.NewDevelopmentLogger("gnsscheck")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	nmeaPath := flags.String("file", "", "NMEA log to check; empty or - reads stdin")
	serialPath := flags.String("serial", "", "serial device to read instead of a file")
	baudRate := flags.Uint("baud", 9600, "baud rate for -serial")
	maxSentences := flags.Int("n", 100, "sentences to accumulate before checking")
	checkSpeed := flags.Bool("check-speed", false, "rig is stationary; enforce the speed rules")
	checkMoreAccuracies := flags.Bool("check-more-accuracies", false,
		"hardware reports the extra accuracy estimates")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	in, err := openInput(*nmeaPath, *serialPath, *baudRate)
	if err != nil {
		return err
	}
	defer goutils.UncheckedErrorFunc(in.Close)

	var acc gnss.NMEAAccumulator
	reader := bufio.NewReader(in)
	parsed := 0
	for parsed < *maxSentences {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "can't read nmea input")
		}
		if err := acc.ParseAndUpdate(line); err != nil {
			logger.Debugw("skipping sentence", "error", err)
			continue
		}
		parsed++
	}
	if parsed == 0 {
		return errors.New("no nmea sentences found in input")
	}

	loc := acc.Location()
	logger.Infof("accumulated %d sentences; position %v altitude %.1fm",
		parsed, loc.Point(), loc.AltitudeMeters)

	if err := vts.ValidateLocation(loc, *checkSpeed, *checkMoreAccuracies); err != nil {
		for _, violation := range multierr.Errors(err) {
			logger.Error(violation)
		}
		return errors.New("location report failed conformance checks")
	}
	logger.Info("location report passed conformance checks")
	return nil
}

func openInput(nmeaPath, serialPath string, baudRate uint) (io.ReadCloser, error) {
	if serialPath != "" {
		return serial.Open(serial.OpenOptions{
			PortName:        serialPath,
			BaudRate:        baudRate,
			DataBits:        8,
			StopBits:        1,
			MinimumReadSize: 4,
		})
	}
	if nmeaPath == "" || nmeaPath == "-" {
		return os.Stdin, nil
	}
	return os.Open(nmeaPath)
}
