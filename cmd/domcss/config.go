package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/npillmayer/schuko"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

const defaultConfigFile = ".domcss.yaml"

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra has parsed the flags.
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// A missing config file is not an error.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}
	// DOMCSS_TRACELEVEL_ROOT -> tracelevel.root
	if err := k.Load(env.Provider("DOMCSS_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "DOMCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}
	return nil
}

// stylesheets returns the paths of extra CSS files, from the flag or from
// the config file key.
func stylesheets() []string {
	if paths := k.Strings("stylesheet"); len(paths) > 0 {
		return paths
	}
	return k.Strings("stylesheets")
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// --- schuko configuration --------------------------------------------------

// koanfConf lets the tracing setup read from koanf.
type koanfConf struct {
	k *koanf.Koanf
}

var _ schuko.Configuration = koanfConf{}

func (c koanfConf) InitDefaults()           {}
func (c koanfConf) IsSet(key string) bool   { return c.k.Exists(key) }
func (c koanfConf) GetInt(key string) int   { return c.k.Int(key) }
func (c koanfConf) GetBool(key string) bool { return c.k.Bool(key) }
func (c koanfConf) IsInteractive() bool     { return false }

func (c koanfConf) GetString(key string) string {
	if strings.HasPrefix(key, traceLevelKey+".") {
		return c.traceLevel(key)
	}
	return c.k.String(key)
}

// traceLevel looks up a trace level for a dotted tracer key. Levels are
// hierarchical: without an entry for "tracelevel.domcss.css" the level of
// "tracelevel.domcss" applies, and finally "tracelevel.root".
func (c koanfConf) traceLevel(key string) string {
	for p := key; strings.Contains(p, "."); p = p[:strings.LastIndex(p, ".")] {
		if s, ok := c.k.Get(p).(string); ok && s != "" {
			return s
		}
	}
	if s, ok := c.k.Get(traceLevelKey + ".root").(string); ok {
		return s
	}
	return ""
}
