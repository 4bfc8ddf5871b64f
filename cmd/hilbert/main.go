// Command hilbert converts between 2D coordinates and Hilbert curve indices
// and renders the curve as an image.
package main

import (
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
)

func main() {
	a := newApp(NewConfigFromEnv())
	err := a.rootCmd().Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hilbert:", err)
		os.Exit(1)
	}
}

type app struct {
	cfg Config
	log logger.Logger
}

func newApp(cfg Config) *app {
	return &app{cfg: cfg}
}

// initLog starts the process wide logger at the configured level.
func (a *app) initLog() {
	logger.New(a.cfg.LogLevel)
	a.log = logger.Sugar.WithServiceName("hilbert")
}

func (a *app) close() {
	if a.log != nil {
		logger.OnExit()
	}
}
