package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

func TestGenerateCmd_Use(t *testing.T) {
	assert.Equal(t, "generate", generateCmd.Use)
	assert.NotNil(t, generateCmd.Flags().Lookup("authenticated"))
	assert.NotNil(t, generateCmd.Flags().Lookup("output"))
	assert.NotNil(t, generateCmd.Flags().Lookup("file"))
}

func TestGenerateCmd_WritesConsoleDocument(t *testing.T) {
	svc := &mockPortfolioService{repos: []domain.PortfolioRepository{sampleRepository()}}
	setupCLITest(t, svc)

	out, err := execute(t, "generate", "--user", "alice")

	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, svc.subjects)
	var doc []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc, 1)
	assert.Equal(t, "alice/x", doc[0]["full_name"])
	assert.Contains(t, out, "\n  {\n    \"id\": 1,")
}

func TestGenerateCmd_EmptyPortfolio(t *testing.T) {
	svc := &mockPortfolioService{repos: []domain.PortfolioRepository{}}
	setupCLITest(t, svc)

	out, err := execute(t, "generate", "--user", "alice")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestGenerateCmd_WritesFile(t *testing.T) {
	svc := &mockPortfolioService{repos: []domain.PortfolioRepository{sampleRepository()}}
	setupCLITest(t, svc)
	path := filepath.Join(t.TempDir(), "out.json")

	out, err := execute(t, "generate", "--user", "alice", "--file", path)

	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"full_name": "alice/x"`)
}

func TestGenerateCmd_AuthenticatedIdentity(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"explicit flag", []string{"generate", "--token", "t", "--user", "alice", "--authenticated"}},
		{"no user configured", []string{"generate", "--token", "t"}},
		{"offline input", []string{"generate", "--input", "repos.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockPortfolioService{repos: []domain.PortfolioRepository{}}
			setupCLITest(t, svc)

			_, err := execute(t, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, []string{""}, svc.subjects)
		})
	}
}

func TestGenerateCmd_NoUserNoToken(t *testing.T) {
	svc := &mockPortfolioService{}
	setupCLITest(t, svc)

	_, err := execute(t, "generate")

	assert.ErrorContains(t, err, "no user configured")
	assert.Empty(t, svc.subjects)
}

func TestGenerateCmd_InvalidOutputMode(t *testing.T) {
	svc := &mockPortfolioService{}
	setupCLITest(t, svc)

	_, err := execute(t, "generate", "--user", "alice", "--output", "s3")

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, svc.subjects, "nothing is fetched with a bad sink")
}

func TestGenerateCmd_FailureWritesNothing(t *testing.T) {
	svc := &mockPortfolioService{err: &domain.QuotaExceededError{Limit: 60}}
	setupCLITest(t, svc)
	path := filepath.Join(t.TempDir(), "out.json")

	out, err := execute(t, "generate", "--user", "alice", "--file", path)

	assert.True(t, errors.Is(err, domain.ErrQuotaExceeded))
	assert.Empty(t, out)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateCmd_NoService(t *testing.T) {
	setupCLITest(t, nil)
	portfolioService = nil
	SetServiceFactory(nil)

	_, err := execute(t, "generate", "--user", "alice")

	assert.Error(t, err)
}
