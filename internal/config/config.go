/*
Copyright (c) 2017 Simon Schmidt

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package config reads the huffpack settings from the environment.
package config

import "fmt"
import "os"
import "strconv"
import "github.com/sirupsen/logrus"

const (
	EnvLogLevel  = "HUFFPACK_LOG_LEVEL"
	EnvLogFormat = "HUFFPACK_LOG_FORMAT"
	EnvCacheSize = "HUFFPACK_CACHE_SIZE"
)

type Config struct {
	LogLevel  logrus.Level
	LogFormat string // "text" or "json"
	CacheSize int
}

func Default() *Config {
	return &Config{
		LogLevel:  logrus.InfoLevel,
		LogFormat: "text",
		CacheSize: 64,
	}
}

// Load starts from Default and applies the environment.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := Default()
	if v := getenv(EnvLogLevel); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	switch v := getenv(EnvLogFormat); v {
	case "":
	case "text", "json":
		cfg.LogFormat = v
	default:
		return nil, fmt.Errorf("config: %s: unknown format %q", EnvLogFormat, v)
	}
	if v := getenv(EnvCacheSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("config: %s: want a positive integer, got %q", EnvCacheSize, v)
		}
		cfg.CacheSize = n
	}
	return cfg, nil
}

// Logger returns a logrus logger configured from cfg.
func (cfg *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
