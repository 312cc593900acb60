package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/alparslanahmed/lightpack"
)

// command, tek bir lightpackctl alt komutudur.
type command struct {
	usage    string
	args     int
	mutating bool
	run      func(c *lightpack.Client, args []int, raw []string) (string, error)
}

// commands, alt komut adından tanımına eşlemedir.
var commands = map[string]command{
	"profiles": {usage: "profiles", run: func(c *lightpack.Client, _ []int, _ []string) (string, error) {
		profiles, err := c.Profiles()
		return strings.Join(profiles, "\n"), err
	}},
	"profile": {usage: "profile", run: func(c *lightpack.Client, _ []int, _ []string) (string, error) {
		profile, err := c.Profile()
		return strings.TrimSpace(profile), err
	}},
	"status": {usage: "status", run: func(c *lightpack.Client, _ []int, _ []string) (string, error) {
		return c.Status()
	}},
	"count": {usage: "count", run: func(c *lightpack.Client, _ []int, _ []string) (string, error) {
		n, err := c.CountLEDs()
		return strconv.Itoa(n), err
	}},
	"api": {usage: "api", run: func(c *lightpack.Client, _ []int, _ []string) (string, error) {
		status, err := c.APIStatus()
		return strings.TrimSpace(status), err
	}},
	"color": {usage: "color <led> <r> <g> <b>", args: 4, mutating: true, run: func(c *lightpack.Client, n []int, _ []string) (string, error) {
		return c.SetColor(n[0], n[1], n[2], n[3])
	}},
	"all": {usage: "all <r> <g> <b>", args: 3, mutating: true, run: func(c *lightpack.Client, n []int, _ []string) (string, error) {
		if len(c.LEDs()) == 0 {
			return "", errors.New("no leds configured; set --leds or leds in the config file")
		}
		return c.SetColorForAll(n[0], n[1], n[2])
	}},
	"gamma": {usage: "gamma <value>", args: 1, mutating: true, run: func(c *lightpack.Client, _ []int, raw []string) (string, error) {
		gamma, err := strconv.ParseFloat(raw[0], 64)
		if err != nil {
			return "", errors.Wrapf(err, "invalid gamma %q", raw[0])
		}
		return c.SetGamma(gamma)
	}},
	"smooth": {usage: "smooth <0-255>", args: 1, mutating: true, run: func(c *lightpack.Client, n []int, _ []string) (string, error) {
		return c.SetSmoothness(n[0])
	}},
	"brightness": {usage: "brightness <0-100>", args: 1, mutating: true, run: func(c *lightpack.Client, n []int, _ []string) (string, error) {
		return c.SetBrightness(n[0])
	}},
	"set-profile": {usage: "set-profile <name>", args: 1, mutating: true, run: func(c *lightpack.Client, _ []int, raw []string) (string, error) {
		return c.SetProfile(raw[0])
	}},
	"on": {usage: "on", mutating: true, run: func(c *lightpack.Client, _ []int, _ []string) (string, error) {
		return c.TurnOn()
	}},
	"off": {usage: "off", mutating: true, run: func(c *lightpack.Client, _ []int, _ []string) (string, error) {
		return c.TurnOff()
	}},
	"lock": {usage: "lock", run: func(c *lightpack.Client, _ []int, _ []string) (string, error) {
		ok, err := c.Lock()
		return strconv.FormatBool(ok), err
	}},
	"unlock": {usage: "unlock", run: func(c *lightpack.Client, _ []int, _ []string) (string, error) {
		ok, err := c.Unlock()
		return strconv.FormatBool(ok), err
	}},
	"raw": {usage: "raw <line>", args: 1, run: func(c *lightpack.Client, _ []int, raw []string) (string, error) {
		return c.SendRaw(raw[0])
	}},
}

// usage, desteklenen komutların listesini döner.
func usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("usage: lightpackctl [flags] <command> [args]\n\ncommands:\n")
	for _, name := range names {
		sb.WriteString("  " + commands[name].usage + "\n")
	}
	return sb.String()
}

// run, args'taki tek komutu cfg'deki cihaza karşı çalıştırır ve yanıtı
// out'a yazar.
func run(cfg *Config, args []string, out io.Writer, logger *zap.Logger) error {
	if len(args) == 0 {
		return errors.New("missing command\n" + usage())
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		return errors.Errorf("unknown command %q\n%s", name, usage())
	}

	raw := args[1:]
	if name == "raw" && len(raw) > 0 {
		raw = []string{strings.Join(raw, " ")}
	}
	if len(raw) != cmd.args {
		return errors.Errorf("usage: lightpackctl %s", cmd.usage)
	}

	numbers, err := numericArgs(name, raw)
	if err != nil {
		return err
	}

	stdLog, err := clientLogger(logger)
	if err != nil {
		return errors.Wrap(err, "failed to create client logger")
	}

	client, err := lightpack.Dial(cfg.Host, cfg.Port, cfg.LEDs,
		lightpack.WithDialTimeout(cfg.DialTimeout),
		lightpack.WithTimeout(cfg.Timeout),
		lightpack.WithLogger(stdLog),
	)
	if err != nil {
		return errors.Wrap(err, "failed to connect")
	}
	defer client.Close()

	log := logger.With(zap.String("session", client.SessionID()), zap.String("command", name))

	if cfg.Lock && cmd.mutating {
		locked, err := client.Lock()
		if err != nil {
			return errors.Wrap(err, "failed to lock")
		}
		if !locked {
			return errors.New("device is locked by another client")
		}
		defer func() {
			if ok, err := client.Unlock(); err != nil || !ok {
				log.Warn("unlock failed", zap.Bool("released", ok), zap.Error(err))
			}
		}()
	}

	result, err := cmd.run(client, numbers, raw)
	if err != nil {
		return errors.Wrapf(err, "%s failed", name)
	}

	log.Debug("command done", zap.String("response", result))
	fmt.Fprintln(out, strings.TrimRight(result, "\r\n"))
	return nil
}

// numericArgs, sayı bekleyen komutların argümanlarını çevirir.
func numericArgs(name string, raw []string) ([]int, error) {
	switch name {
	case "gamma", "set-profile", "raw":
		return nil, nil
	}

	numbers := make([]int, len(raw))
	for i, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", s)
		}
		numbers[i] = n
	}
	return numbers, nil
}
