package scenario

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mahithakrar/indirect/mem"
)

// ---------------------------------------------------------------------------
// Salary eligibility rules
// ---------------------------------------------------------------------------

// Employee is the record the raise evaluation mutates in place.
type Employee struct {
	Name   string  `toml:"name"`
	Years  int     `toml:"years"`
	Salary float64 `toml:"salary"`
}

// Rules configures raise eligibility. An employee is eligible when tenure
// is at least MinYears and the current salary is below Cap; the raise is
// RaisePercent of the current salary.
type Rules struct {
	MinYears     int     `toml:"min-years"`
	Cap          float64 `toml:"cap"`
	RaisePercent float64 `toml:"raise-percent"`
}

// DefaultRules are used when no rules file is given.
var DefaultRules = Rules{
	MinYears:     3,
	Cap:          100000,
	RaisePercent: 10,
}

// LoadRules parses a rules TOML file.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("scenario: cannot read %s: %w", path, err)
	}

	var r Rules
	if err := toml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("scenario: parse error in %s: %w", path, err)
	}
	if err := r.validate(); err != nil {
		return Rules{}, fmt.Errorf("scenario: invalid rules in %s: %w", path, err)
	}
	return r, nil
}

func (r Rules) validate() error {
	if r.MinYears < 0 {
		return fmt.Errorf("min-years must be >= 0, got %d", r.MinYears)
	}
	if r.Cap <= 0 {
		return fmt.Errorf("cap must be > 0, got %g", r.Cap)
	}
	if r.RaisePercent <= 0 {
		return fmt.Errorf("raise-percent must be > 0, got %g", r.RaisePercent)
	}
	return nil
}

// Eligible reports whether the employee qualifies for a raise.
func (r Rules) Eligible(e Employee) bool {
	return e.Years >= r.MinYears && e.Salary < r.Cap
}

// ApplyRaise evaluates the rules against the employee held in the cell and,
// when eligible, writes the raised record back through the cell's ref.
// Returns whether a raise was applied.
func ApplyRaise(cell *mem.Cell[Employee], r Rules) (bool, error) {
	ref := cell.Ref()

	e, err := ref.Load()
	if err != nil {
		return false, fmt.Errorf("scenario: read employee: %w", err)
	}
	if !r.Eligible(e) {
		log.Debugf("%s not eligible (years=%d salary=%g)", e.Name, e.Years, e.Salary)
		return false, nil
	}

	e.Salary += e.Salary * r.RaisePercent / 100
	if err := ref.Store(e); err != nil {
		return false, fmt.Errorf("scenario: update employee: %w", err)
	}

	log.Infof("raised %s to %g", e.Name, e.Salary)
	return true, nil
}
