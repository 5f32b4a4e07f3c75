package config_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/vasily-kirichenko/blog/cmd/config"
)

func TestFlagValueWins(t *testing.T) {
	k := koanf.New(".")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	reg := config.NewRegistry(k, fs)

	size := reg.IntP("size", "n", 1000, "window size")

	qt.Assert(t, qt.IsNil(fs.Parse([]string{"--size", "64"})))
	qt.Assert(t, qt.IsNil(k.Load(posflag.Provider(fs, ".", k), nil)))
	qt.Assert(t, qt.Equals(size(), 64))
}

func TestConfigValueUsedWhenFlagUnset(t *testing.T) {
	k := koanf.New(".")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	reg := config.NewRegistry(k, fs)

	factor := reg.Int("factor", 10, "iteration multiplier")

	// Simulates a value loaded from a config file before the
	// flags are merged on top.
	qt.Assert(t, qt.IsNil(k.Set("factor", 3)))
	qt.Assert(t, qt.IsNil(fs.Parse(nil)))
	qt.Assert(t, qt.IsNil(k.Load(posflag.Provider(fs, ".", k), nil)))
	qt.Assert(t, qt.Equals(factor(), 3))
}

func TestDefaultUsedWhenNothingSet(t *testing.T) {
	k := koanf.New(".")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	reg := config.NewRegistry(k, fs)

	noColor := reg.Bool("no-color", false, "disable color")
	routines := reg.StringsP("routines", "r", []string{"slice", "ring"}, "routines to run")

	qt.Assert(t, qt.IsNil(fs.Parse(nil)))
	qt.Assert(t, qt.IsNil(k.Load(posflag.Provider(fs, ".", k), nil)))
	qt.Assert(t, qt.IsFalse(noColor()))
	qt.Assert(t, qt.DeepEquals(routines(), []string{"slice", "ring"}))
}
