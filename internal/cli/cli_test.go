package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) []string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})

	require.NoError(t, RootCmd.Execute())
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestRunCommand(t *testing.T) {
	got := execute(t, "run", "--log-level", "error")

	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, []string{
		"Animal('Cat') is deleted.",
		"Animal('My Cat') is not hungry.",
		"Animal('My Cat') is eating.",
		"Animal('My Cat') is eating.",
	}, got[:4])
}

func TestDispatchCommand(t *testing.T) {
	got := execute(t, "dispatch", "--log-level", "error")

	assert.Contains(t, got, "Cat('Tom') has finished eating.")
	assert.Contains(t, got, "Cat('Tom') says meow.")
	assert.Equal(t, "Animal('Tom') is deleted.", got[len(got)-1])
}

func TestFeedAnimal(t *testing.T) {
	got := execute(t, "feed", "--log-level", "error",
		"--name", "Rex", "--hunger", "50", "--amount", "10", "--cat=false")

	assert.Equal(t, []string{
		"Animal('Rex') is eating.",
		"Animal('Rex') is deleted.",
	}, got)
}

func TestFeedNegativeHunger(t *testing.T) {
	got := execute(t, "feed", "--log-level", "error",
		"--name", "X", "--hunger", "-5", "--amount", "0", "--cat=false")

	assert.Equal(t, []string{
		"Animal('X') is not hungry.",
		"Animal('X') is eating.",
		"Animal('X') is deleted.",
	}, got)
}

func TestFeedCat(t *testing.T) {
	got := execute(t, "feed", "--log-level", "error",
		"--name", "Tom", "--hunger", "40", "--amount", "5", "--cat", "--race", "Siamese")

	assert.Equal(t, []string{
		"Animal('Tom') is eating.",
		"Cat('Tom') has finished eating.",
		"Animal('Tom') is deleted.",
	}, got)
}

func TestMeowCommand(t *testing.T) {
	got := execute(t, "meow", "--log-level", "error", "--name", "Tom")

	assert.Equal(t, []string{
		"Cat('Tom') says meow.",
		"Animal('Tom') is deleted.",
	}, got)
}

func TestGetLogLevel(t *testing.T) {
	old := logLevel
	t.Cleanup(func() { logLevel = old })

	logLevel = ""
	t.Setenv("ZOO_LOG_LEVEL", "debug")
	assert.Equal(t, "debug", getLogLevel())

	logLevel = "warn"
	assert.Equal(t, "warn", getLogLevel())

	logLevel = ""
	t.Setenv("ZOO_LOG_LEVEL", "")
	assert.Equal(t, "info", getLogLevel())
}
