package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/docubot/docubot"
	main "github.com/docubot/docubot/cmd/docubot"
	"github.com/docubot/docubot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints ranked matches with snippets", func(t *testing.T) {
		t.Parallel()

		index := &mock.ChunkIndex{
			SearchFn: func(_ context.Context, query string, limit int) ([]docubot.ChunkMatch, error) {
				assert.Equal(t, "install", query)
				assert.Equal(t, 10, limit)
				return []docubot.ChunkMatch{
					{
						Chunk: &docubot.Chunk{
							ID:          "c1",
							Text:        "Install the binary by downloading the release archive.",
							ContentType: docubot.ContentTypeMain,
							SourceURL:   "https://example.com/install",
						},
						Score: 1.5,
					},
					{
						Chunk: &docubot.Chunk{
							ID:          "c2",
							Text:        strings.Repeat("long installation notes ", 20),
							ContentType: docubot.ContentTypeParagraph,
							SourceURL:   "https://example.com/notes",
						},
						Score: 0.7,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Index:  index,
		}

		cmd := &main.SearchCmd{Query: "install", Limit: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "https://example.com/install")
		assert.Contains(t, output, "[main]")
		assert.Contains(t, output, "Install the binary")
		// Long chunk text is truncated for display
		assert.Contains(t, output, "...")
	})

	t.Run("truncates multibyte text on a rune boundary", func(t *testing.T) {
		t.Parallel()

		index := &mock.ChunkIndex{
			SearchFn: func(_ context.Context, _ string, _ int) ([]docubot.ChunkMatch, error) {
				return []docubot.ChunkMatch{
					{
						Chunk: &docubot.Chunk{
							ID:          "c1",
							Text:        strings.Repeat("設定", 300),
							ContentType: docubot.ContentTypeMain,
							SourceURL:   "https://example.com/config",
						},
						Score: 1.0,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Index:  index,
		}

		cmd := &main.SearchCmd{Query: "設定", Limit: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.True(t, utf8.ValidString(output))
		assert.Contains(t, output, "...")
	})

	t.Run("reports when nothing matches", func(t *testing.T) {
		t.Parallel()

		index := &mock.ChunkIndex{
			SearchFn: func(_ context.Context, _ string, _ int) ([]docubot.ChunkMatch, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Index:  index,
		}

		cmd := &main.SearchCmd{Query: "nonexistent", Limit: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matches found.")
	})
}
