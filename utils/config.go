package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifelevel/rules"
)

// Config holds the rule set and display options for a run
type Config struct {
	Numeric       bool          `json:"numeric"`
	Monochrome    bool          `json:"monochrome"`
	NoCorners     bool          `json:"no_corners"`
	Grow          []int         `json:"grow"`
	Die           []int         `json:"die"`
	Life          int           `json:"life"`
	FrameRate     time.Duration `json:"frame_rate"`
	RandomDensity float64       `json:"random_density"`
	Seed          uint64        `json:"seed"`
}

// DefaultConfig returns the classic Game of Life rules
func DefaultConfig() Config {
	return Config{
		Grow:          []int{3},
		Die:           []int{0, 1, 4, 5, 6, 7, 8},
		Life:          1,
		FrameRate:     100 * time.Millisecond,
		RandomDensity: 0.15,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// RuleConfig validates the config and converts it into the automaton's rule set
func (c Config) RuleConfig() (rules.RuleConfig, error) {
	if c.Life < 0 || c.Life > 255 {
		return rules.RuleConfig{}, errors.Errorf("[RuleConfig] life out of range 0..255: %d", c.Life)
	}
	cfg, err := rules.NewRuleConfig(!c.NoCorners, uint8(c.Life), c.Grow, c.Die)
	if err != nil {
		return rules.RuleConfig{}, errors.Wrap(err, "[RuleConfig] invalid neighbor counts")
	}
	return cfg, nil
}

// countList is a flag.Value collecting neighbor counts. The first Set replaces any previous list.
type countList struct {
	counts  *[]int
	touched bool
}

func (l *countList) String() string {
	if l.counts == nil {
		return ""
	}
	parts := make([]string, 0, len(*l.counts))
	for _, n := range *l.counts {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ",")
}

func (l *countList) Set(value string) error {
	if !l.touched {
		*l.counts = nil
		l.touched = true
	}
	for _, field := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return errors.Wrapf(err, "invalid neighbor count %q", field)
		}
		if n < 0 || n > rules.MaxNeighbors {
			return errors.Errorf("neighbor count out of range 0..%d: %d", rules.MaxNeighbors, n)
		}
		*l.counts = append(*l.counts, n)
	}
	return nil
}

// BindFlags registers the command line flags that override c
func (c *Config) BindFlags(fs *flag.FlagSet) {
	for _, name := range []string{"numeric", "n"} {
		fs.BoolVar(&c.Numeric, name, c.Numeric, "use numbers 0-9 instead of blocks")
	}
	for _, name := range []string{"monochrome", "m"} {
		fs.BoolVar(&c.Monochrome, name, c.Monochrome, "use term colors instead of heatmap")
	}
	for _, name := range []string{"no-corners", "c"} {
		fs.BoolVar(&c.NoCorners, name, c.NoCorners, "only count orthogonal neighbors")
	}

	grow := &countList{counts: &c.Grow}
	die := &countList{counts: &c.Die}
	for _, name := range []string{"grow", "g"} {
		fs.Var(grow, name, "neighbor counts that cause growth, e.g. 3 or 2,3")
	}
	for _, name := range []string{"die", "d"} {
		fs.Var(die, name, "neighbor counts that cause decay, e.g. 0,1,4")
	}

	for _, name := range []string{"life", "l"} {
		fs.IntVar(&c.Life, name, c.Life, "maximum life of a cell (0-255)")
	}
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations when auto-advancing")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "fraction of cells seeded by the reseed key")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for reseeding, 0 picks one from the clock")
}

// ParseArgs builds a Config from the defaults, an optional -config JSON file, and flags, in that order
func ParseArgs(name string, args []string) (Config, error) {
	var (
		config     = DefaultConfig()
		configPath string
		fs         = flag.NewFlagSet(name, flag.ContinueOnError)
	)
	fs.StringVar(&configPath, "config", "", "JSON config file")
	config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}
	if configPath == "" {
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return config, err
	}

	// flags win over the file
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&configPath, "config", configPath, "JSON config file")
	config.BindFlags(fs)
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}
	return config, nil
}
