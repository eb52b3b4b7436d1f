package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"ai_tool_directory/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	catalogPath, err := filepath.Abs("../catalog.yaml")
	require.NoError(t, err)

	content := fmt.Sprintf(`log:
  level: error
database:
  driver: sqlite
  path: %s
  auto_migrate: true
catalog:
  path: %s
`, filepath.Join(dir, "test.db"), catalogPath)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommands(t *testing.T) {
	cmd := NewRootCmd()
	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "recommend"})

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "config.yaml", flag.DefValue)
}

func TestMigrateCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := run(t, "migrate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 2 (sqlite)")

	// 重复执行是幂等的
	out, err = run(t, "migrate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 2")
}

func TestRecommendCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	a, err := newApp(context.Background(), cfgPath)
	require.NoError(t, err)
	_, err = a.profileService.UpsertProfile(context.Background(), &models.UserProfile{
		UserID:          "u1",
		JobRole:         models.RoleDeveloper,
		Industry:        models.IndustryTechnology,
		BudgetRange:     models.BudgetUnder50,
		PrimaryUseCases: []string{"coding"},
	})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	out, err := run(t, "recommend", "u1", "--refresh", "--config", cfgPath)
	require.NoError(t, err)

	var result models.PersonalizedRecommendationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "u1", result.UserID)
	assert.NotEmpty(t, result.RecommendedTools)

	_, err = run(t, "recommend", "ghost", "--config", cfgPath)
	assert.ErrorIs(t, err, models.ErrProfileNotFound)

	_, err = run(t, "recommend", "--config", cfgPath)
	assert.Error(t, err)
}
