package main

import (
	"testing"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func setFlag(t *testing.T, key string, value interface{}, zero interface{}) {
	t.Helper()
	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, zero) })
}

func TestApplyFlagOverrides(t *testing.T) {
	setFlag(t, "source", "sqlite", "")
	setFlag(t, "references", "file:refs.db", "")
	setFlag(t, "top", 80, 0)

	cfg := config.DefaultConfig()
	applyFlagOverrides(cfg)

	assert.Equal(t, "sqlite", cfg.References.Source)
	assert.Equal(t, "file:refs.db", cfg.References.DSN)
	assert.Empty(t, cfg.References.Path)
	assert.Equal(t, 80, cfg.Matcher.TopN)
	assert.Equal(t, 80, cfg.Matcher.MaxTopN)
	assert.NoError(t, cfg.Validate())
}

func TestApplyFlagOverrides_FilePath(t *testing.T) {
	setFlag(t, "source", "fasta", "")
	setFlag(t, "references", "refs.fa", "")

	cfg := config.DefaultConfig()
	applyFlagOverrides(cfg)

	assert.Equal(t, "refs.fa", cfg.References.Path)
	assert.Empty(t, cfg.References.DSN)
	assert.Equal(t, 3, cfg.Matcher.TopN)
}
