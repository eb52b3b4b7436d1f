package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai_tool_directory/db"
	"ai_tool_directory/models"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()
	conn, err := db.Connect(ctx, db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(ctx, conn))
	return conn
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestProfileRepository_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(setupTestDB(t))
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = fixedClock(created)

	_, err := repo.GetProfile(ctx, "u1")
	assert.True(t, errors.Is(err, models.ErrProfileNotFound))

	p := &models.UserProfile{
		UserID:          "u1",
		JobRole:         models.RoleDeveloper,
		BudgetRange:     models.BudgetUnder50,
		PrimaryUseCases: []string{"coding", "automation"},
	}
	require.NoError(t, repo.UpsertProfile(ctx, p))

	got, err := repo.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleDeveloper, got.JobRole)
	assert.Equal(t, models.Industry(""), got.Industry)
	assert.Equal(t, []string{"coding", "automation"}, got.PrimaryUseCases)
	assert.Empty(t, got.ToolsViewed)
	assert.Equal(t, created, got.CreatedAt)

	updated := created.Add(time.Hour)
	repo.now = fixedClock(updated)
	p.Industry = models.IndustryFinance
	p.PrimaryUseCases = nil
	require.NoError(t, repo.UpsertProfile(ctx, p))

	got, err = repo.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.IndustryFinance, got.Industry)
	assert.Empty(t, got.PrimaryUseCases)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, updated, got.UpdatedAt)
}

func TestProfileRepository_ApplyInteraction(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(setupTestDB(t))

	applied, err := repo.ApplyInteraction(ctx, "ghost", models.ActionView, "notion")
	require.NoError(t, err)
	assert.False(t, applied, "missing profile is a no-op")

	require.NoError(t, repo.UpsertProfile(ctx, &models.UserProfile{UserID: "u1"}))

	for i := 0; i < 3; i++ {
		applied, err = repo.ApplyInteraction(ctx, "u1", models.ActionBookmark, "notion")
		require.NoError(t, err)
		assert.True(t, applied)
	}
	_, err = repo.ApplyInteraction(ctx, "u1", models.ActionView, "notion")
	require.NoError(t, err)
	_, err = repo.ApplyInteraction(ctx, "u1", models.ActionWorkflowComplete, "ship-a-feature")
	require.NoError(t, err)

	got, err := repo.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"notion"}, got.ToolsBookmarked)
	assert.Equal(t, []string{"notion"}, got.ToolsViewed)
	assert.Equal(t, []string{"ship-a-feature"}, got.WorkflowsCompleted)

	_, err = repo.GetProfile(ctx, "ghost")
	assert.ErrorIs(t, err, models.ErrProfileNotFound)
}

func TestProfileRepository_ListUserIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(setupTestDB(t))
	for _, id := range []string{"b", "a", "c"} {
		require.NoError(t, repo.UpsertProfile(ctx, &models.UserProfile{UserID: id}))
	}

	ids, err := repo.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestRatingRepository_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewRatingRepository(setupTestDB(t))

	require.NoError(t, repo.SaveRating(ctx, models.RatingRecord{UserID: "u1", ToolID: "notion", Rating: 2}))
	require.NoError(t, repo.SaveRating(ctx, models.RatingRecord{UserID: "u1", ToolID: "figma-ai", Rating: 4}))
	require.NoError(t, repo.SaveRating(ctx, models.RatingRecord{UserID: "u1", ToolID: "notion", Rating: 5, Review: "better now"}))
	require.NoError(t, repo.SaveRating(ctx, models.RatingRecord{UserID: "u2", ToolID: "notion", Rating: 1}))

	ratings, err := repo.RatingsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, ratings, 2)

	byTool := map[string]models.RatingRecord{}
	for _, r := range ratings {
		byTool[r.ToolID] = r
	}
	assert.Equal(t, 5, byTool["notion"].Rating)
	assert.Equal(t, "better now", byTool["notion"].Review)
	assert.Equal(t, 4, byTool["figma-ai"].Rating)

	none, err := repo.RatingsByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecommendationRepository_SaveAndLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewRecommendationRepository(setupTestDB(t))
	at := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	empty, err := repo.LatestRecommendations(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := []models.RecommendationRow{
		{RunID: "run-1", RecommendationType: models.RecommendationTool, ItemID: "old", Score: 0.5, Position: 0, GeneratedAt: at},
	}
	require.NoError(t, repo.SaveRecommendations(ctx, "u1", first))

	factors := &models.MatchFactors{RoleMatch: 1, IndustryMatch: 0.4, BudgetMatch: 1, UseCaseMatch: 1, ExperienceMatch: 0.6}
	second := []models.RecommendationRow{
		{RunID: "run-2", RecommendationType: models.RecommendationWorkflow, ItemID: "ship", Score: 0.5, Position: 0, GeneratedAt: at.Add(time.Hour)},
		{RunID: "run-2", RecommendationType: models.RecommendationTool, ItemID: "cursor", Score: 0.8, Position: 1,
			Reasoning: "a; b", ContextTags: []string{"code-development"}, GeneratedAt: at.Add(time.Hour)},
		{RunID: "run-2", RecommendationType: models.RecommendationTool, ItemID: "copilot", Score: 0.9, Position: 0,
			MatchFactors: factors, GeneratedAt: at.Add(time.Hour)},
	}
	require.NoError(t, repo.SaveRecommendations(ctx, "u1", second))

	rows, err := repo.LatestRecommendations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"copilot", "cursor", "ship"}, []string{rows[0].ItemID, rows[1].ItemID, rows[2].ItemID})
	assert.Equal(t, factors, rows[0].MatchFactors)
	assert.Nil(t, rows[1].MatchFactors)
	assert.Equal(t, "a; b", rows[1].Reasoning)
	assert.Equal(t, []string{"code-development"}, rows[1].ContextTags)
	assert.NotEmpty(t, rows[0].ID)
	assert.Equal(t, at.Add(time.Hour), rows[2].GeneratedAt)
}

func TestRecommendationRepository_SaveIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewRecommendationRepository(setupTestDB(t))
	at := time.Now().UTC()

	require.NoError(t, repo.SaveRecommendations(ctx, "u1", []models.RecommendationRow{
		{ID: "keep", RunID: "run-1", RecommendationType: models.RecommendationTool, ItemID: "notion", Score: 0.7, GeneratedAt: at},
	}))

	// 第二行主键重复，整个批次回滚，旧结果保留
	err := repo.SaveRecommendations(ctx, "u1", []models.RecommendationRow{
		{ID: "dup", RunID: "run-2", RecommendationType: models.RecommendationTool, ItemID: "a", Score: 0.9, GeneratedAt: at},
		{ID: "dup", RunID: "run-2", RecommendationType: models.RecommendationTool, ItemID: "b", Score: 0.8, GeneratedAt: at},
	})
	require.Error(t, err)

	rows, err := repo.LatestRecommendations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "keep", rows[0].ID)
}
