package netbuf

import (
	"bufio"
	"os"
	"path"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// rootPath stores the installation root, NETBUF_DIR or /
var rootPath string

// confPath stores path to netbuf.conf
var confPath string

// Config holds the settings read from netbuf.conf and the environment
type Config struct {
	PoolMinCapacity int     // NETBUF_POOL_MIN_CAPACITY
	PoolMaxCapacity int     // NETBUF_POOL_MAX_CAPACITY
	PoolQuantile    float64 // NETBUF_POOL_QUANTILE, in (0, 100]
	CaptureDir      string  // NETBUF_CAPTURE_DIR
	Logging         bool    // NETBUF_LOGGING
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		PoolMinCapacity: 64,
		PoolMaxCapacity: 1 << 20,
		PoolQuantile:    90,
		CaptureDir:      path.Join(os.TempDir(), "netbuf"),
		Logging:         false,
	}
}

// config stores the configuration in effect
var config = DefaultConfig()

// CurrentConfig returns the configuration read when the package was loaded
func CurrentConfig() Config { return config }

// pat stores a valid key-value pattern line
var pat = regexp.MustCompile("^([A-Z0-9_]+)=(.*)$")

// configKeys are the keys that are also looked up in the environment
var configKeys = []string{
	"NETBUF_POOL_MIN_CAPACITY",
	"NETBUF_POOL_MAX_CAPACITY",
	"NETBUF_POOL_QUANTILE",
	"NETBUF_CAPTURE_DIR",
	"NETBUF_LOGGING",
}

// initConfig initializes the config from the conf file, overridden by the
// environment. A missing conf file is not an error
func initConfig() error {
	r, ok := os.LookupEnv("NETBUF_DIR")
	if !ok {
		r = "/"
	}
	rootPath = r

	c, ok := os.LookupEnv("NETBUF_CONF")
	if !ok {
		c = path.Join(rootPath, "etc", "netbuf.conf")
	}
	confPath = c

	values := make(map[string]string)

	f, err := os.Open(confPath)
	if err == nil {
		defer f.Close()

		if err = readConf(f, values); err != nil {
			return errors.Wrapf(err, "reading %v", confPath)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	for _, k := range configKeys {
		if v, ok := os.LookupEnv(k); ok {
			values[k] = v
		}
	}

	cfg, err := parseConfig(values)
	if err != nil {
		return err
	}

	config = cfg
	return nil
}

func readConf(f *os.File, values map[string]string) error {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if matches := pat.FindStringSubmatch(scanner.Text()); matches != nil {
			values[matches[1]] = matches[2]
		}
	}

	return scanner.Err()
}

// parseConfig builds a Config from raw values, keys that are not set keep
// their defaults
func parseConfig(values map[string]string) (Config, error) {
	cfg := DefaultConfig()

	var err error
	if v, ok := values["NETBUF_POOL_MIN_CAPACITY"]; ok {
		if cfg.PoolMinCapacity, err = strconv.Atoi(v); err != nil {
			return cfg, errors.Wrap(err, "NETBUF_POOL_MIN_CAPACITY")
		}
	}

	if v, ok := values["NETBUF_POOL_MAX_CAPACITY"]; ok {
		if cfg.PoolMaxCapacity, err = strconv.Atoi(v); err != nil {
			return cfg, errors.Wrap(err, "NETBUF_POOL_MAX_CAPACITY")
		}
	}

	if v, ok := values["NETBUF_POOL_QUANTILE"]; ok {
		if cfg.PoolQuantile, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, errors.Wrap(err, "NETBUF_POOL_QUANTILE")
		}
	}

	if v, ok := values["NETBUF_CAPTURE_DIR"]; ok && v != "" {
		cfg.CaptureDir = v
	}

	if v, ok := values["NETBUF_LOGGING"]; ok {
		if cfg.Logging, err = strconv.ParseBool(v); err != nil {
			return cfg, errors.Wrap(err, "NETBUF_LOGGING")
		}
	}

	if cfg.PoolMinCapacity < 1 || cfg.PoolMaxCapacity < cfg.PoolMinCapacity {
		return DefaultConfig(), errors.Errorf("invalid pool capacity range [%d, %d]", cfg.PoolMinCapacity, cfg.PoolMaxCapacity)
	}

	if cfg.PoolQuantile <= 0 || cfg.PoolQuantile > 100 {
		return DefaultConfig(), errors.Errorf("pool quantile %v outside (0, 100]", cfg.PoolQuantile)
	}

	return cfg, nil
}
