package config

import (
	"github.com/fernandosanchezjr/sparsefsm/encoder"
	"github.com/fernandosanchezjr/sparsefsm/generators"
	"time"
)

const (
	DefaultServerAddress = ":8080"
	DefaultCacheTTL      = 10 * time.Minute
)

type Defaults struct {
	Distance int `yaml:"distance"`
	States   int `yaml:"states"`
	Width    int `yaml:"width"`
}

type Budget struct {
	MaxDraws    int `yaml:"maxDraws"`
	MaxRestarts int `yaml:"maxRestarts"`
}

type Server struct {
	Address  string        `yaml:"address,omitempty"`
	CacheTTL time.Duration `yaml:"cacheTTL,omitempty"`
}

type Config struct {
	Defaults  Defaults `yaml:"defaults"`
	Budget    Budget   `yaml:"budget"`
	Generator string   `yaml:"generator,omitempty"`
	Archive   bool     `yaml:"archive,omitempty"`
	Server    Server   `yaml:"server,omitempty"`
}

func Default() *Config {
	return &Config{
		Defaults: Defaults{Distance: 5, States: 7, Width: 10},
		Budget: Budget{
			MaxDraws:    encoder.DefaultMaxDraws,
			MaxRestarts: encoder.DefaultMaxRestarts,
		},
		Generator: string(generators.MT19937),
		Server: Server{
			Address:  DefaultServerAddress,
			CacheTTL: DefaultCacheTTL,
		},
	}
}

func (c *Config) EncoderBudget() encoder.Budget {
	return encoder.Budget{MaxDraws: c.Budget.MaxDraws, MaxRestarts: c.Budget.MaxRestarts}
}

func (c *Config) GeneratorKind() (generators.Kind, error) {
	return generators.ParseKind(c.Generator)
}

func (c *Config) Validate() error {
	if err := c.EncoderBudget().Validate(); err != nil {
		return err
	}
	if _, err := c.GeneratorKind(); err != nil {
		return err
	}
	if c.Server.CacheTTL < 0 {
		return ErrNegativeCacheTTL
	}
	return nil
}
