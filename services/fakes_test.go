package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"ai_tool_directory/models"
)

// fakeProfiles 内存画像仓库，实现 ProfileStore / ProfileMutator / UserLister
type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]*models.UserProfile
	err      error
}

func newFakeProfiles(profiles ...*models.UserProfile) *fakeProfiles {
	f := &fakeProfiles{profiles: make(map[string]*models.UserProfile)}
	for _, p := range profiles {
		f.profiles[p.UserID] = p
	}
	return f
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfiles) UpsertProfile(_ context.Context, p *models.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.profiles[p.UserID]
	cp := *p
	if ok {
		cp.ToolsViewed = existing.ToolsViewed
		cp.ToolsBookmarked = existing.ToolsBookmarked
		cp.WorkflowsCompleted = existing.WorkflowsCompleted
	}
	f.profiles[p.UserID] = &cp
	return nil
}

func (f *fakeProfiles) ApplyInteraction(_ context.Context, userID string, action models.ActionKind, itemID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return false, nil
	}
	add := func(set []string) []string {
		for _, v := range set {
			if v == itemID {
				return set
			}
		}
		return append(set, itemID)
	}
	switch action {
	case models.ActionView:
		p.ToolsViewed = add(p.ToolsViewed)
	case models.ActionBookmark:
		p.ToolsBookmarked = add(p.ToolsBookmarked)
	case models.ActionWorkflowComplete:
		p.WorkflowsCompleted = add(p.WorkflowsCompleted)
	}
	return true, nil
}

func (f *fakeProfiles) ListUserIDs(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.profiles))
	for id := range f.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// fakeCatalog 固定目录
type fakeCatalog struct {
	tools     []models.ToolRecord
	workflows []models.Workflow
	err       error
}

func (f *fakeCatalog) AllTools(context.Context) ([]models.ToolRecord, error) {
	return f.tools, f.err
}

func (f *fakeCatalog) Workflows(context.Context) ([]models.Workflow, error) {
	return f.workflows, f.err
}

func (f *fakeCatalog) Tool(_ context.Context, id string) (models.ToolRecord, error) {
	for _, t := range f.tools {
		if t.ID == id {
			return t, nil
		}
	}
	return models.ToolRecord{}, fmt.Errorf("%w: %s", models.ErrToolNotFound, id)
}

// fakeRatings 内存评分
type fakeRatings struct {
	mu      sync.Mutex
	ratings []models.RatingRecord
}

func (f *fakeRatings) RatingsByUser(_ context.Context, userID string) ([]models.RatingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.RatingRecord, 0)
	for _, r := range f.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRatings) SaveRating(_ context.Context, r models.RatingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.ratings {
		if existing.UserID == r.UserID && existing.ToolID == r.ToolID {
			f.ratings[i] = r
			return nil
		}
	}
	f.ratings = append(f.ratings, r)
	return nil
}

// fakeStore 内存推荐结果，saveErr 非空时模拟保存失败
type fakeStore struct {
	mu      sync.Mutex
	rows    map[string][]models.RecommendationRow
	saves   int
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string][]models.RecommendationRow)}
}

func (f *fakeStore) SaveRecommendations(_ context.Context, userID string, rows []models.RecommendationRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rows[userID] = append([]models.RecommendationRow(nil), rows...)
	return nil
}

func (f *fakeStore) LatestRecommendations(_ context.Context, userID string) ([]models.RecommendationRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.RecommendationRow{}, f.rows[userID]...), nil
}

var errStoreDown = errors.New("store unavailable")
