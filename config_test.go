package alphaquor

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	conf := DefaultConfig()
	conf.MaxMoves = 0
	conf.Temperature = -1
	conf.MCTSConf.MaxDepth = 0
	err := conf.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 errors")
	assert.Contains(t, err.Error(), "mcts_conf")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))
		return path
	}

	t.Run("Partial", func(t *testing.T) {
		path := write("partial.json", `{"name": "test", "max_moves": 40, "mcts_conf": {"puct": 0.5, "budget": 64, "timeout": 0, "max_depth": 100, "log_level": "debug"}}`)
		conf, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "test", conf.Name)
		assert.Equal(t, 40, conf.MaxMoves)
		assert.Equal(t, float32(1), conf.Temperature, "default kept")
		assert.Equal(t, float32(0.5), conf.MCTSConf.PUCT)
		assert.Equal(t, int32(64), conf.MCTSConf.Budget)
		assert.Equal(t, time.Duration(0), conf.MCTSConf.Timeout)
		assert.Equal(t, logrus.DebugLevel, conf.MCTSConf.LogLevel)
		assert.NotNil(t, conf.Encoder)
	})
	t.Run("Invalid", func(t *testing.T) {
		_, err := LoadConfig(write("invalid.json", `{"max_moves": -1}`))
		assert.Error(t, err)
	})
	t.Run("Malformed", func(t *testing.T) {
		_, err := LoadConfig(write("malformed.json", `{"max_moves": `))
		assert.Error(t, err)
	})
	t.Run("Missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}
