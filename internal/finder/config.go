package finder

import (
	"strings"

	"github.com/nikmy/meetslot/pkg/errors"
)

type Config struct {
	NoMandatory Policy `yaml:"noMandatory"`

	// MaxChecks caps the number of feasibility checks per query, 0 means no cap.
	MaxChecks int `yaml:"maxChecks"`
}

// Policy decides what happens to optional attendees when nobody is mandatory.
type Policy int

const (
	// PolicyIncludeAll treats every optional attendee as mandatory.
	PolicyIncludeAll Policy = iota

	// PolicyOptimize searches for the largest group of optional attendees
	// that still leaves a slot, as it is done when somebody is mandatory.
	PolicyOptimize
)

func PolicyFromString(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "includeall", "include_all":
		return PolicyIncludeAll, nil
	case "optimize":
		return PolicyOptimize, nil
	default:
		return PolicyIncludeAll, errors.Errorf("unknown policy %q", s)
	}
}

func (p Policy) String() string {
	switch p {
	case PolicyOptimize:
		return "optimize"
	default:
		return "includeAll"
	}
}

func (p *Policy) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	*p, err = PolicyFromString(raw)
	return err
}
