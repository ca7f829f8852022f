package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wildstyl3r/roots/internal/constants"
	"github.com/wildstyl3r/roots/internal/solver"
	"github.com/wildstyl3r/roots/internal/utils"
)

var (
	ErrNoRuns       = errors.New("no runs provided")
	ErrMissingField = errors.New("required field not found")
)

type Config struct {
	OutputDir string
	Name      string // base name of the log and summary files

	MaxIterations    int
	ConvergenceError float64
	DivergingError   float64
	RootTolerance    float64
	Delta            float64

	Runs map[string]RunParameters
}

// RunParameters describes one invocation. Bracketing methods read the
// bracket [A, B], Secant reads A as the previous iterate and B as the current
// one, Newton-Raphson and Modified Secant read X.
type RunParameters struct {
	Method   string
	Function int
	A        float64
	B        float64
	X        float64
}

var defaultValues = map[string]any{
	"OutputDir":        ".",
	"Name":             "output",
	"MaxIterations":    constants.MaxIterations,
	"ConvergenceError": constants.ConvergenceError,
	"DivergingError":   constants.DivergingError,
	"RootTolerance":    constants.RootTolerance,
	"Delta":            constants.Delta,
}

// Default is the configuration used without an input file.
func Default() Config {
	var config Config
	config.setDefaults(func(string) bool { return false })
	return config
}

func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	meta, err := toml.DecodeFile(strings.TrimSuffix(configFileName, ".toml")+".toml", &config)
	if err != nil {
		return config, meta, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config, meta, fmt.Errorf("unknown keys in %s: %v", configFileName, undecoded)
	}
	config.setDefaults(func(field string) bool { return meta.IsDefined(field) })

	if len(config.Runs) == 0 {
		return config, meta, ErrNoRuns
	}
	for name, run := range config.Runs {
		if err := run.check(name, &meta); err != nil {
			return config, meta, err
		}
	}
	return config, meta, nil
}

func (c *Config) setDefaults(isDefined func(string) bool) {
	configReflect := reflect.ValueOf(c).Elem()
	for fieldName, value := range defaultValues {
		if !isDefined(fieldName) {
			configReflect.FieldByName(fieldName).Set(reflect.ValueOf(value))
		}
	}
}

var fieldsRequired = map[solver.Method][]string{
	solver.Bisection:      {"A", "B"},
	solver.FalsePosition:  {"A", "B"},
	solver.Secant:         {"A", "B"},
	solver.NewtonRaphson:  {"X"},
	solver.ModifiedSecant: {"X"},
}

func (run RunParameters) check(name string, meta *toml.MetaData) error {
	method, err := solver.ParseMethod(run.Method)
	if err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	var missing []string
	for _, field := range append([]string{"Function"}, fieldsRequired[method]...) {
		if !meta.IsDefined("Runs", name, field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("run %s: %w: %v", name, ErrMissingField, missing)
	}
	return nil
}

// Start returns the bracket or the initial guesses the method expects.
func (run RunParameters) Start(method solver.Method) []float64 {
	if method == solver.NewtonRaphson || method == solver.ModifiedSecant {
		return []float64{run.X}
	}
	return []float64{run.A, run.B}
}

func (c *Config) Policy() solver.Policy {
	return solver.Policy{
		MaxIterations:    c.MaxIterations,
		ConvergenceError: c.ConvergenceError,
		DivergingError:   c.DivergingError,
		RootTolerance:    c.RootTolerance,
		Delta:            c.Delta,
	}
}

// RunNames lists the runs in natural order.
func (c *Config) RunNames() []string {
	names := make([]string, 0, len(c.Runs))
	for name := range c.Runs {
		names = append(names, name)
	}
	utils.NaturalOrder(names)
	return names
}
