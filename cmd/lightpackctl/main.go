// Command lightpackctl sends one command to a Lightpack device and prints
// the reply.
//
//	lightpackctl --host 192.168.1.10 --leds 1-10 --lock all 255 0 10
//	LIGHTPACK_HOST=192.168.1.10 lightpackctl profiles
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	fs := pflag.NewFlagSet("lightpackctl", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "yapılandırma dosyası (YAML)")
	defineFlags(fs)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage())
		fmt.Fprintln(os.Stderr, "\nflags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := InitConfig(*configPath, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lightpackctl: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lightpackctl: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("config loaded", zap.Stringer("config", cfg))

	if err := run(cfg, fs.Args(), os.Stdout, logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
