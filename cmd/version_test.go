package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVersionCmd_Execution(t *testing.T) {
	version := "1.0.0-test"
	cmd := NewVersionCmd(version)

	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Print the version number", cmd.Short)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.NoError(t, err)

	assert.Contains(t, buf.String(), "Version: 1.0.0-test")
}

func TestNewMigrateCmd_Structure(t *testing.T) {
	dataDirectory := t.TempDir()
	cmd := NewMigrateCmd(&dataDirectory)

	assert.Equal(t, "migrate", cmd.Use)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Use)
	}
	assert.Contains(t, names, "up")
	assert.Contains(t, names, "status")
}
