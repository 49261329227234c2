package main

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

const traceLevelKey = "tracelevel"

func init() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
}

// setupTracing installs trace2go as the tracer selector, with tracers
// logging to stderr. Without configuration, only errors are reported;
// verbose mode switches every tracer to debug level.
func setupTracing(verbose bool) error {
	if !k.Exists("tracing.adapter") {
		if err := k.Set("tracing.adapter", "go"); err != nil {
			return err
		}
	}
	rootKey := traceLevelKey + ".root"
	if verbose {
		if err := k.Set(rootKey, tracing.LevelDebug.String()); err != nil {
			return err
		}
	} else if !k.Exists(rootKey) {
		if err := k.Set(rootKey, tracing.LevelError.String()); err != nil {
			return err
		}
	}
	conf := koanfConf{k: k}
	if err := trace2go.ConfigureRoot(conf, traceLevelKey, trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().P("level", conf.GetString(rootKey)).Debugf("tracing configured")
	return nil
}

// tracer traces with key 'domcss.cli'.
func tracer() tracing.Trace {
	return tracing.Select("domcss.cli")
}
