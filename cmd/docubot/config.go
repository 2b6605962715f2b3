package main

import (
	"os"
	"strconv"
	"time"

	"github.com/docubot/docubot"
)

// crawlJobFromEnv builds the baseline job for seedURL from DOCUBOT_*
// environment knobs. Command-line flags override these afterwards; anything
// still unset falls back to the job defaults.
func crawlJobFromEnv(seedURL string) docubot.CrawlJob {
	job := docubot.CrawlJob{
		SeedURL:        seedURL,
		SameDomainOnly: true,
	}
	if v, ok := envInt("DOCUBOT_MAX_PAGES"); ok {
		job.MaxPages = v
	}
	if v, ok := envInt("DOCUBOT_MAX_DEPTH"); ok {
		job.MaxDepth = v
	}
	if v, ok := envInt("DOCUBOT_CONCURRENCY"); ok {
		job.Concurrency = v
	}
	if v, ok := envDuration("DOCUBOT_REQUEST_DELAY"); ok {
		job.RequestDelay = v
	}
	if v, ok := envBool("DOCUBOT_SAME_DOMAIN"); ok {
		job.SameDomainOnly = v
	}
	return job
}

// extractOptionsFromEnv reads the structured-extraction toggles.
func extractOptionsFromEnv() docubot.ExtractOptions {
	opts := docubot.DefaultExtractOptions()
	if v, ok := envBool("DOCUBOT_EXTRACT_IMAGES"); ok {
		opts.Images = v
	}
	if v, ok := envBool("DOCUBOT_EXTRACT_TABLES"); ok {
		opts.Tables = v
	}
	if v, ok := envBool("DOCUBOT_EXTRACT_CODE"); ok {
		opts.CodeBlocks = v
	}
	return opts
}

func envInt(name string) (int, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func envDuration(name string) (time.Duration, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := time.ParseDuration(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func envBool(name string) (bool, bool) {
	s := os.Getenv(name)
	if s == "" {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return v, true
}
