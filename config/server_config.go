package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"reflect"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v2"
)

func LoadServerConfig(bs []byte) (*ServerConfig, error) {
	c := &ServerConfig{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

type ServerOpts struct {
	ConfigFile string `long:"config-file" description:"path to config file" value-name:"PATH"`

	ServerConfig
}

// Load returns the flag values with the config file, if any, merged over
// them.
func (o *ServerOpts) Load() (*ServerConfig, error) {
	cfg := o.ServerConfig

	if o.ConfigFile == "" {
		return &cfg, nil
	}

	bs, err := ioutil.ReadFile(o.ConfigFile)
	if err != nil {
		return nil, err
	}

	fileCfg, err := LoadServerConfig(bs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", o.ConfigFile, err)
	}

	cfg.Merge(fileCfg)

	return &cfg, nil
}

type ServerConfig struct {
	Port      uint16 `long:"port" description:"port to serve the API on" value-name:"PORT" default:"8080" yaml:"port"`
	DebugPort uint16 `long:"debug-port" description:"port to serve pprof and metrics on" value-name:"PORT" default:"6060" yaml:"debug_port"`
	LogLevel  string `long:"log-level" description:"log level to use" choice:"debug" choice:"info" choice:"error" default:"info" yaml:"log_level"`

	ScanTimeout      time.Duration `long:"scan-timeout" description:"how long a scan may run before the watchdog fails it" value-name:"DURATION" default:"30m" yaml:"scan_timeout"`
	WatchdogInterval time.Duration `long:"watchdog-interval" description:"how often to look for timed out scans" value-name:"DURATION" default:"1m" yaml:"watchdog_interval"`
	ScheduledScans   bool          `long:"scheduled-scans" description:"scan every registered project once a day" yaml:"scheduled_scans"`
	StatsInterval    time.Duration `long:"stats-interval" description:"how often to publish security statistics" value-name:"DURATION" default:"60s" yaml:"stats_interval"`

	Database DatabaseConfig `group:"Database Options" yaml:"database"`

	SQS struct {
		Region    string `long:"sqs-region" description:"AWS region of the trigger queue" value-name:"REGION" yaml:"region"`
		QueueName string `long:"sqs-queue-name" description:"queue to receive scan triggers from" value-name:"NAME" yaml:"queue_name"`
	} `group:"SQS Options" yaml:"sqs"`

	Slack struct {
		WebhookURL string `long:"slack-webhook-url" description:"Slack webhook URL" env:"SLACK_WEBHOOK_URL" value-name:"WEBHOOK" yaml:"webhook_url"`
		Channel    string `long:"slack-channel" description:"Slack channel to notify" value-name:"CHANNEL" yaml:"channel"`
	} `group:"Slack Options" yaml:"slack"`

	Metrics struct {
		SentryDSN   string `long:"sentry-dsn" description:"DSN to emit to Sentry with" env:"SENTRY_DSN" value-name:"DSN" yaml:"sentry_dsn"`
		Environment string `long:"environment" description:"environment tag for metrics" env:"ENVIRONMENT" value-name:"NAME" default:"development" yaml:"environment"`
		Enabled     bool   `long:"metrics-enabled" description:"publish prometheus metrics on the debug server" yaml:"enabled"`
	} `group:"Metrics Options" yaml:"metrics"`
}

func (c *ServerConfig) Validate() []error {
	var errs []error

	if c.Port == 0 {
		errs = append(errs, errors.New("no port specified"))
	}

	errs = append(errs, c.Database.Validate()...)

	if c.ScanTimeout <= 0 {
		errs = append(errs, errors.New("scan timeout must be positive"))
	}

	if c.WatchdogInterval <= 0 {
		errs = append(errs, errors.New("watchdog interval must be positive"))
	}

	if c.StatsInterval <= 0 {
		errs = append(errs, errors.New("stats interval must be positive"))
	}

	if !allBlankOrAllSet(c.SQS.Region, c.SQS.QueueName) {
		errs = append(errs, errors.New("all sqs options required if any are set"))
	}

	return errs
}

// Err folds the validation failures into one error, or nil.
func (c *ServerConfig) Err() error {
	var result *multierror.Error
	for _, err := range c.Validate() {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func (c *ServerConfig) IsSQSConfigured() bool {
	return allSet(c.SQS.Region, c.SQS.QueueName)
}

func (c *ServerConfig) Merge(other *ServerConfig) {
	merge(reflect.ValueOf(c).Elem(), reflect.ValueOf(other).Elem())
}
