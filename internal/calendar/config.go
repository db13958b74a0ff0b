package calendar

import "time"

type Kind string

const (
	KindMongo Kind = "mongo"
	KindICS   Kind = "ics"
)

type Config struct {
	Kind Kind `yaml:"kind"`

	// Location defines where a day starts and ends, UTC if empty.
	Location string `yaml:"location"`

	Mongo MongoConfig `yaml:"mongo"`
	ICS   ICSConfig   `yaml:"ics"`
}

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`
}

type ICSConfig struct {
	Files []string `yaml:"files"`

	// MaxOccurrences caps expansion of a single recurring event per day.
	MaxOccurrences int `yaml:"maxOccurrences"`
}
