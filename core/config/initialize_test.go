package config

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	fs := afero.NewMemMapFs()
	discard := log.New(ioutil.Discard, "", 0)

	cfg, err := initializeFs(fs, ".", discard)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "log.txt", cfg.TerminationLog)

	// Check that the config is valid and loadable.
	cfg, err = loadFs(fs, ".")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("OpenEventLog", func(t *testing.T) {
		fd, err := cfg.OpenEventLog()
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("ReadEventLog", func(t *testing.T) {
		fd, err := cfg.ReadEventLog()
		assert.Nil(t, err)
		fd.Close()
	})
}

func TestInitializeKeepsExistingConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	discard := log.New(ioutil.Discard, "", 0)

	custom := []byte(`prompt: 'sh:\w> '
fallback_prompt: 'sh> '
termination_log: terminations.txt
event_log: events.log
`)
	if err := afero.WriteFile(fs, ConfigurationName, custom, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := initializeFs(fs, ".", discard)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "terminations.txt", cfg.TerminationLog)
}

func TestLoadMissing(t *testing.T) {
	_, err := loadFs(afero.NewMemMapFs(), ".")
	assert.NotNil(t, err)
}
