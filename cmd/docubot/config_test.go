package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCrawlJobFromEnv(t *testing.T) {
	t.Run("defaults when no env set", func(t *testing.T) {
		t.Setenv("DOCUBOT_MAX_PAGES", "")
		t.Setenv("DOCUBOT_MAX_DEPTH", "")
		t.Setenv("DOCUBOT_CONCURRENCY", "")
		t.Setenv("DOCUBOT_REQUEST_DELAY", "")
		t.Setenv("DOCUBOT_SAME_DOMAIN", "")

		job := crawlJobFromEnv("https://example.com/docs")

		assert.Equal(t, "https://example.com/docs", job.SeedURL)
		assert.Zero(t, job.MaxPages)
		assert.Zero(t, job.MaxDepth)
		assert.True(t, job.SameDomainOnly)
	})

	t.Run("env knobs override defaults", func(t *testing.T) {
		t.Setenv("DOCUBOT_MAX_PAGES", "25")
		t.Setenv("DOCUBOT_MAX_DEPTH", "2")
		t.Setenv("DOCUBOT_CONCURRENCY", "8")
		t.Setenv("DOCUBOT_REQUEST_DELAY", "250ms")
		t.Setenv("DOCUBOT_SAME_DOMAIN", "false")

		job := crawlJobFromEnv("https://example.com/docs")

		assert.Equal(t, 25, job.MaxPages)
		assert.Equal(t, 2, job.MaxDepth)
		assert.Equal(t, 8, job.Concurrency)
		assert.Equal(t, 250*time.Millisecond, job.RequestDelay)
		assert.False(t, job.SameDomainOnly)
	})

	t.Run("malformed values are ignored", func(t *testing.T) {
		t.Setenv("DOCUBOT_MAX_PAGES", "lots")
		t.Setenv("DOCUBOT_REQUEST_DELAY", "-1s")
		t.Setenv("DOCUBOT_SAME_DOMAIN", "maybe")

		job := crawlJobFromEnv("https://example.com/docs")

		assert.Zero(t, job.MaxPages)
		assert.Zero(t, job.RequestDelay)
		assert.True(t, job.SameDomainOnly)
	})
}

func TestExtractOptionsFromEnv(t *testing.T) {
	t.Run("all enabled by default", func(t *testing.T) {
		t.Setenv("DOCUBOT_EXTRACT_IMAGES", "")
		t.Setenv("DOCUBOT_EXTRACT_TABLES", "")
		t.Setenv("DOCUBOT_EXTRACT_CODE", "")

		opts := extractOptionsFromEnv()

		assert.True(t, opts.Images)
		assert.True(t, opts.Tables)
		assert.True(t, opts.CodeBlocks)
	})

	t.Run("knobs disable element types", func(t *testing.T) {
		t.Setenv("DOCUBOT_EXTRACT_IMAGES", "false")
		t.Setenv("DOCUBOT_EXTRACT_TABLES", "0")
		t.Setenv("DOCUBOT_EXTRACT_CODE", "true")

		opts := extractOptionsFromEnv()

		assert.False(t, opts.Images)
		assert.False(t, opts.Tables)
		assert.True(t, opts.CodeBlocks)
	})
}
