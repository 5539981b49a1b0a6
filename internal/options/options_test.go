package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type readerConfig struct {
	strict   bool
	maxEntry int
	calls    []string
}

func withStrict() Option[*readerConfig] {
	return NoError(func(c *readerConfig) {
		c.strict = true
		c.calls = append(c.calls, "strict")
	})
}

func withMaxEntry(n int) Option[*readerConfig] {
	return New(func(c *readerConfig) error {
		if n <= 0 {
			return errors.New("max entry must be positive")
		}
		c.maxEntry = n
		c.calls = append(c.calls, "max")

		return nil
	})
}

func TestApply(t *testing.T) {
	cfg := &readerConfig{}
	err := Apply(cfg, withStrict(), withMaxEntry(64))

	require.NoError(t, err)
	require.True(t, cfg.strict)
	require.Equal(t, 64, cfg.maxEntry)
	require.Equal(t, []string{"strict", "max"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &readerConfig{}
	err := Apply(cfg, withMaxEntry(0), withStrict())

	require.Error(t, err)
	require.Contains(t, err.Error(), "must be positive")
	require.False(t, cfg.strict)
	require.Empty(t, cfg.calls)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &readerConfig{}
	require.NoError(t, Apply(cfg, nil, withStrict()))
	require.True(t, cfg.strict)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &readerConfig{}
	require.NoError(t, Apply(cfg))
	require.Equal(t, &readerConfig{}, cfg)
}

func TestApply_ValueTarget(t *testing.T) {
	var seen string
	opt := NoError(func(s string) { seen = s })

	require.NoError(t, Apply[string]("cp932", opt))
	require.Equal(t, "cp932", seen)
}
