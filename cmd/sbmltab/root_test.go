package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_DoubleDashKeepsPositionals(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"version"})
	require.NoError(t, err)
	assert.Same(t, versionCmd, cmd)

	cmd, rest, err := rootCmd.Find([]string{"--", "version", "-dark-"})
	require.NoError(t, err)
	assert.Same(t, rootCmd, cmd)

	require.NoError(t, cmd.ParseFlags(rest))
	assert.Equal(t, []string{"version", "-dark-"}, cmd.Flags().Args())
}
