package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/cab-booking/internal/domain/booking"
)

const envPrefix = "CABBOOK"

type Config struct {
	RejectProbability float64
	Seed              uint64 // 0 means non-deterministic

	// Fleet limiting is disabled when FleetCabsPerMinute is 0.
	FleetCabsPerMinute float64
	FleetBurst         int

	// Load shedding is disabled when MaxLoad is 0. Capacity is the number of
	// in-flight requests that counts as full load.
	MaxLoad  float64
	Capacity int

	Debug   bool
	LogJSON bool
}

// RegisterFlags adds every config key to fs. Each flag can also be set from
// the environment, e.g. --reject-probability via CABBOOK_REJECT_PROBABILITY.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Float64("reject-probability", booking.DefaultRejectProbability, "probability in [0,1] that a booking is rejected")
	fs.Uint64("seed", 0, "seed for the admission random source (0 = random)")
	fs.Float64("fleet-cabs-per-minute", 0, "cabs freed per minute; 0 disables fleet limiting")
	fs.Int("fleet-burst", 1, "cabs available at once when fleet limiting is on")
	fs.Float64("max-load", 0, "reject when in-flight load reaches this fraction of capacity; 0 disables")
	fs.Int("capacity", 64, "in-flight requests that count as full load")
	fs.Bool("debug", false, "sets log level to debug")
	fs.Bool("log-json", false, "write logs as JSON instead of console text")
}

func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	v.AutomaticEnv()

	cfg := Config{
		RejectProbability:  v.GetFloat64("reject-probability"),
		Seed:               v.GetUint64("seed"),
		FleetCabsPerMinute: v.GetFloat64("fleet-cabs-per-minute"),
		FleetBurst:         v.GetInt("fleet-burst"),
		MaxLoad:            v.GetFloat64("max-load"),
		Capacity:           v.GetInt("capacity"),
		Debug:              v.GetBool("debug"),
		LogJSON:            v.GetBool("log-json"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if math.IsNaN(c.RejectProbability) || c.RejectProbability < 0 || c.RejectProbability > 1 {
		return fmt.Errorf("reject-probability must be in [0,1] (got %v)", c.RejectProbability)
	}
	if math.IsNaN(c.FleetCabsPerMinute) || math.IsInf(c.FleetCabsPerMinute, 0) || c.FleetCabsPerMinute < 0 {
		return fmt.Errorf("fleet-cabs-per-minute must be a finite number >= 0 (got %v)", c.FleetCabsPerMinute)
	}
	if c.FleetCabsPerMinute > 0 && c.FleetBurst < 1 {
		return fmt.Errorf("fleet-burst must be >= 1 (got %d)", c.FleetBurst)
	}
	if math.IsNaN(c.MaxLoad) || c.MaxLoad < 0 || c.MaxLoad > 1 {
		return fmt.Errorf("max-load must be in [0,1] (got %v)", c.MaxLoad)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be >= 1 (got %d)", c.Capacity)
	}
	return nil
}
