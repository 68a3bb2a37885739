package calendar

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML shape of a calendar configuration file:
//
//	shifts:
//	  - "08:00-12:00"
//	  - "14:00-18:00"
//	holidays:
//	  - "2024-01-01"
type Config struct {
	Shifts   []string `yaml:"shifts"`
	Holidays []string `yaml:"holidays"`
}

// Calendar converts the parsed config into a Calendar, validating every
// shift and holiday entry. An empty shift list falls back to the
// default shifts.
func (cfg Config) Calendar() (Calendar, error) {
	cal := Calendar{Holidays: make(map[string]bool, len(cfg.Holidays))}

	for _, raw := range cfg.Shifts {
		sh, err := ParseShift(raw)
		if err != nil {
			return Calendar{}, err
		}
		cal.Shifts = append(cal.Shifts, sh)
	}
	if len(cal.Shifts) == 0 {
		cal.Shifts = Default().Shifts
	}

	for _, raw := range cfg.Holidays {
		d, err := time.Parse(DayKeyLayout, raw)
		if err != nil {
			return Calendar{}, fmt.Errorf("invalid holiday date %q (expected YYYY-MM-DD)", raw)
		}
		cal.Holidays[d.Format(DayKeyLayout)] = true
	}

	return cal, nil
}

// Config re-expresses the calendar as its YAML configuration shape with
// holidays in ascending date order.
func (c Calendar) Config() Config {
	cfg := Config{}
	for _, s := range c.Shifts {
		cfg.Shifts = append(cfg.Shifts, s.String())
	}
	for d := range c.Holidays {
		cfg.Holidays = append(cfg.Holidays, d)
	}
	sort.Strings(cfg.Holidays)
	return cfg
}

// LoadConfig reads a calendar YAML file. An empty path yields the
// default calendar.
func LoadConfig(path string) (Calendar, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Calendar{}, fmt.Errorf("reading calendar file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Calendar{}, fmt.Errorf("parsing calendar file %q: %w", path, err)
	}

	return cfg.Calendar()
}

// SaveConfig writes the calendar to a YAML file.
func SaveConfig(path string, cal Calendar) error {
	data, err := yaml.Marshal(cal.Config())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
