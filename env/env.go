package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DebugKey    = "PETRI_DEBUG"
	MaxStepsKey = "PETRI_MAX_STEPS"

	DefaultMaxSteps = 100000
)

type Environment struct {
	// Debug switches the CLI to development logging.
	Debug bool
	// MaxSteps bounds the number of firings in a single run.
	MaxSteps int
}

// Load reads the optional .env files (default ".env") into the process environment
// without overriding variables that are already set, then parses the PETRI_ settings.
func Load(files ...string) (*Environment, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	e := &Environment{MaxSteps: DefaultMaxSteps}
	if v, ok := os.LookupEnv(DebugKey); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", DebugKey, err)
		}
		e.Debug = debug
	}
	if v, ok := os.LookupEnv(MaxStepsKey); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MaxStepsKey, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %d", MaxStepsKey, n)
		}
		e.MaxSteps = n
	}
	return e, nil
}
