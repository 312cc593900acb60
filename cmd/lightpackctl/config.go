package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alparslanahmed/lightpack"
)

// LogConfig, CLI'nin log ayarlarıdır.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Config, lightpackctl yapılandırmasıdır.
// Öncelik sırası: komut satırı bayrağı, ortam değişkeni (LIGHTPACK_*),
// yapılandırma dosyası, varsayılan.
type Config struct {
	Host        string
	Port        int
	LEDs        []int
	Timeout     time.Duration
	DialTimeout time.Duration
	Lock        bool
	Log         LogConfig
}

func (c Config) String() string {
	return fmt.Sprintf(
		"Address: %s:%d | LEDs: %v | Timeout: %s | LogLevel: %s",
		c.Host,
		c.Port,
		c.LEDs,
		c.Timeout,
		c.Log.Level,
	)
}

const (
	envPrefix      = "LIGHTPACK"
	configFileName = "lightpack"
)

// flagKeys, bayrak adlarını yapılandırma anahtarlarına eşler.
var flagKeys = map[string]string{
	"host":         "host",
	"port":         "port",
	"leds":         "leds",
	"timeout":      "timeout",
	"dial-timeout": "dial_timeout",
	"lock":         "lock",
	"log-level":    "log.level",
	"log-file":     "log.file",
}

// defineFlags, yapılandırmayı etkileyen bayrakları fs'ye ekler.
func defineFlags(fs *pflag.FlagSet) {
	fs.String("host", "127.0.0.1", "Lightpack API adresi")
	fs.Int("port", lightpack.DefaultPort, "Lightpack API portu")
	fs.IntSlice("leds", nil, "LED kanal numaraları (ör: 1,2,3)")
	fs.Duration("timeout", 0, "komut başına okuma/yazma zaman aşımı (0: yok)")
	fs.Duration("dial-timeout", lightpack.DefaultDialTimeout, "bağlantı zaman aşımı")
	fs.Bool("lock", false, "değiştiren komutlardan önce kilidi al, sonra bırak")
	fs.String("log-level", "info", "log seviyesi (debug, info, warn, error)")
	fs.String("log-file", "", "log dosyası (boşsa yalnızca stderr)")
}

// InitConfig, yapılandırmayı dosya, ortam ve bayraklardan okur.
// configFilePath boşsa çalışma dizinindeki lightpack.yaml isteğe bağlı
// olarak okunur.
func InitConfig(configFilePath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", lightpack.DefaultPort)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("dial_timeout", lightpack.DefaultDialTimeout)
	v.SetDefault("lock", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFilePath)
		}
	} else {
		v.SetConfigName(configFileName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	if fs != nil {
		for flagName, key := range flagKeys {
			flag := fs.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.Wrapf(err, "failed to bind flag %s", flagName)
			}
		}
	}

	leds, err := readLEDs(v)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Host:        v.GetString("host"),
		Port:        v.GetInt("port"),
		LEDs:        leds,
		Timeout:     v.GetDuration("timeout"),
		DialTimeout: v.GetDuration("dial_timeout"),
		Lock:        v.GetBool("lock"),
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
		},
	}

	return config, nil
}

// readLEDs, "leds" anahtarını okur. YAML listesi veya bayrak değeri
// doğrudan kullanılır; ortam değişkeni gibi metin değerler parseLEDSpec
// ile çözülür.
func readLEDs(v *viper.Viper) ([]int, error) {
	if spec, ok := v.Get("leds").(string); ok {
		leds, err := parseLEDSpec(spec)
		if err != nil {
			return nil, errors.Wrap(err, "invalid leds")
		}
		return leds, nil
	}
	return v.GetIntSlice("leds"), nil
}

// parseLEDSpec, "1,2,5-8" biçimindeki LED listesini çözer.
// Aralıklar her iki uç dahil genişletilir.
//
//	parseLEDSpec("1,3-5") // [1 3 4 5]
func parseLEDSpec(spec string) ([]int, error) {
	spec = strings.Trim(strings.TrimSpace(spec), "[]")
	if spec == "" {
		return nil, nil
	}

	var leds []int
	for _, part := range strings.FieldsFunc(spec, func(r rune) bool { return r == ',' || r == ' ' }) {
		from, to, isRange := strings.Cut(part, "-")
		if !isRange {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, errors.Wrapf(err, "led %q", part)
			}
			leds = append(leds, n)
			continue
		}

		start, err := strconv.Atoi(from)
		if err != nil {
			return nil, errors.Wrapf(err, "range start %q", part)
		}
		end, err := strconv.Atoi(to)
		if err != nil {
			return nil, errors.Wrapf(err, "range end %q", part)
		}
		if end < start {
			return nil, errors.Errorf("range %q is reversed", part)
		}
		for n := start; n <= end; n++ {
			leds = append(leds, n)
		}
	}
	return leds, nil
}
