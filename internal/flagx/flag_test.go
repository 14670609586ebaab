package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-c", "conf.json", "-x", "other"}
	got := FilterArgs(args, []string{"-c"})
	assert.Equal(t, []string{"-c", "conf.json"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-d=/tmp/db", "-x=skip"}
	got := FilterArgs(args, []string{"--config", "-d"})
	assert.Equal(t, []string{"--config=conf.json", "-d=/tmp/db"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// -v has no value; the next token is another flag and must not be eaten.
	args := []string{"-v", "-c", "conf.json"}
	got := FilterArgs(args, []string{"-v", "-c"})
	assert.Equal(t, []string{"-v", "-c", "conf.json"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-c"})
	assert.Empty(t, got)
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"imgurshot", "-c", "settings.json", "-i", "10"}
	assert.Equal(t, "settings.json", JsonConfigFlags())

	os.Args = []string{"imgurshot", "-i", "10"}
	assert.Equal(t, "", JsonConfigFlags())
}
