package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "dsviz", cmd.Use)
	assert.Contains(t, cmd.Long, "deque")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"deque", "sort", "generate"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestSortCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	sortCmd, _, err := cmd.Find([]string{"sort"})
	require.NoError(t, err)

	algFlag := sortCmd.Flags().Lookup("algorithm")
	require.NotNil(t, algFlag)
	assert.Equal(t, "a", algFlag.Shorthand)
	assert.Equal(t, "bubble", algFlag.DefValue)

	countFlag := sortCmd.Flags().Lookup("count")
	require.NotNil(t, countFlag)
	assert.Equal(t, "n", countFlag.Shorthand)
	assert.Equal(t, "10", countFlag.DefValue)

	delayFlag := sortCmd.Flags().Lookup("delay")
	require.NotNil(t, delayFlag)
	assert.Equal(t, "0s", delayFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, testEnv(nil), "deque", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := WrapExitError(ExitFailure, "outer", errors.New("inner"))
	assert.Equal(t, "outer: inner", wrapped.Error())
	assert.False(t, IsReported(wrapped))
	wrapped.Reported = true
	assert.True(t, IsReported(wrapped))
}

func TestFormatInts(t *testing.T) {
	assert.Equal(t, "[]", formatInts(nil))
	assert.Equal(t, "[5, 3, 8, 1]", formatInts([]int{5, 3, 8, 1}))
}
