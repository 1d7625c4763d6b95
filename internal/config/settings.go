package config

import (
	"fmt"

	"github.com/qdm12/cfddns/internal/params"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client   Client
	Update   Update
	PubIP    PubIP
	Server   Server
	Paths    Paths
	Logger   Logger
	Shoutrrr Shoutrrr
	Resolver Resolver
	Health   Health
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Update.setDefaults()
	c.PubIP.setDefaults()
	c.Server.setDefaults()
	c.Paths.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
	c.Resolver.setDefaults()
	c.Health.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":    &c.Client,
		"update":    &c.Update,
		"public ip": &c.PubIP,
		"server":    &c.Server,
		"paths":     &c.Paths,
		"logger":    &c.Logger,
		"shoutrrr":  &c.Shoutrrr,
		"resolver":  &c.Resolver,
		"health":    &c.Health,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Update.toLinesNode())
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.toLinesNode())
	node.AppendNode(c.Resolver.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader,
	warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Update.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading update settings: %w", err)
	}

	err = c.PubIP.read(reader)
	if err != nil {
		return fmt.Errorf("reading public IP settings: %w", err)
	}

	err = c.Server.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Paths.read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	err = c.Resolver.read(reader)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	c.Health.read(reader)

	return nil
}

// FillFromDocument sets the fields not already set to the
// values of the config document given, which must be
// called after Read and before SetDefaults.
func (c *Config) FillFromDocument(document params.Document) (err error) {
	if c.Update.Period == 0 && document.Delay != nil {
		c.Update.Period, err = secondsToPeriod(*document.Delay)
		if err != nil {
			return fmt.Errorf("delay: %w", err)
		}
	}

	if c.Update.MultiThread == nil {
		c.Update.MultiThread = document.MultiThreaded()
	}

	if c.Logger.Level == nil && document.LogLevel != nil {
		level, err := parseLogLevel(*document.LogLevel)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		c.Logger.Level = &level
	}

	if c.PubIP.URL4 == "" && document.IPv4URL != nil {
		c.PubIP.URL4 = *document.IPv4URL
	}

	if c.PubIP.URL6 == "" && document.IPv6URL != nil {
		c.PubIP.URL6 = *document.IPv6URL
	}

	return nil
}
