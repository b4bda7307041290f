// This file contains the timed stage wrapper used by every step of an order.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultTemplate is used when a stage does not bring its own message.
// {0} is the stage name and {1} the elapsed seconds.
const DefaultTemplate = "{0} - {1} s"

// Sleeper blocks for the given duration. time.Sleep in prod, a no-op in tests.
type Sleeper func(d time.Duration)

// Observer is told how long each completed stage took.
type Observer func(stage string, elapsed time.Duration)

type stageConfig struct {
	out      io.Writer
	now      func() time.Time
	observer Observer
}

// StageOption customizes a timed stage.
type StageOption func(*stageConfig)

// WithOutput sets where the stage line is written. Defaults to stdout.
func WithOutput(w io.Writer) StageOption {
	return func(c *stageConfig) { c.out = w }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StageOption {
	return func(c *stageConfig) { c.now = now }
}

// WithObserver registers a callback run after the stage line is written.
func WithObserver(o Observer) StageOption {
	return func(c *stageConfig) { c.observer = o }
}

// Timed wraps body so that every call measures its wall-clock duration and
// writes one line rendered from template. The body's result is returned
// unchanged. A failing body writes nothing.
func Timed[T any](name, template string, body func() (T, error), opts ...StageOption) func() (T, error) {
	cfg := stageConfig{out: os.Stdout, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if template == "" {
		template = DefaultTemplate
	}

	return func() (T, error) {
		start := cfg.now()
		result, err := body()
		end := cfg.now()
		if err != nil {
			log.Debugf("Stage %v failed after %v: %v", name, end.Sub(start), err)
			return result, err
		}

		elapsed := end.Sub(start)
		fmt.Fprintln(cfg.out, formatStage(template, name, elapsed))
		if cfg.observer != nil {
			cfg.observer(name, elapsed)
		}
		return result, nil
	}
}

// formatStage substitutes the stage name and the elapsed seconds, rounded
// to two decimals, into template. Whole seconds keep one decimal: 1.0, 0.0.
func formatStage(template, name string, elapsed time.Duration) string {
	secs := strconv.FormatFloat(math.Round(elapsed.Seconds()*100)/100, 'f', -1, 64)
	if !strings.Contains(secs, ".") {
		secs += ".0"
	}
	r := strings.NewReplacer("{0}", name, "{1}", secs)
	return r.Replace(template)
}
