// Package config loads and validates the interpreter's configuration.
package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the name of the config file in the config
// directory.
const ConfigurationName = "config.yaml"

type Configuration struct {
	configFs afero.Fs

	// Prompt is the prompt template. `\w` is replaced with the current
	// working directory.
	Prompt string `json:"prompt" validate:"required"`

	// FallbackPrompt is shown when the working directory can't be read.
	FallbackPrompt string `json:"fallback_prompt" validate:"required"`

	// TerminationLog is the path of the append-only record that gets one
	// line per reaped child process.
	TerminationLog string `json:"termination_log" validate:"required"`

	// EventLog is the path of the newline delimited JSON event log.
	EventLog string `json:"event_log" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewOsFs()
	}
	return c.configFs
}

// JournalFs returns the filesystem the termination record and event log
// live on.
func (c *Configuration) JournalFs() afero.Fs {
	return c.fs()
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}
