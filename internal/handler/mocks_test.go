package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CharacterForge_Go/internal/catalog"
	"github.com/osse101/CharacterForge_Go/internal/crystal"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/eventlog"
	"github.com/osse101/CharacterForge_Go/internal/glyph"
	"github.com/osse101/CharacterForge_Go/internal/potion"
	"github.com/osse101/CharacterForge_Go/internal/profile"
)

// MockHealthChecker mocks HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCatalogReloader mocks CatalogReloader
type MockCatalogReloader struct {
	mock.Mock
}

func (m *MockCatalogReloader) Reload(ctx context.Context) catalog.Summary {
	args := m.Called(ctx)
	return args.Get(0).(catalog.Summary)
}

func (m *MockCatalogReloader) Summary(ctx context.Context) catalog.Summary {
	args := m.Called(ctx)
	return args.Get(0).(catalog.Summary)
}

// MockProfileService mocks profile.Service
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Create(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) Delete(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockProfileService) Snapshot(ctx context.Context, profileID string) (*profile.Snapshot, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Snapshot), args.Error(1)
}

// MockCrystalService mocks crystal.Service
type MockCrystalService struct {
	mock.Mock
}

func (m *MockCrystalService) Config() *crystal.Config {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*crystal.Config)
}

func (m *MockCrystalService) report(args mock.Arguments) (*crystal.Report, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crystal.Report), args.Error(1)
}

func (m *MockCrystalService) Get(ctx context.Context, profileID string) (*crystal.Report, error) {
	return m.report(m.Called(ctx, profileID))
}

func (m *MockCrystalService) SetRank(ctx context.Context, profileID, rank string) (*crystal.Report, error) {
	return m.report(m.Called(ctx, profileID, rank))
}

func (m *MockCrystalService) SetRefinement(ctx context.Context, profileID, refine string) (*crystal.Report, error) {
	return m.report(m.Called(ctx, profileID, refine))
}

func (m *MockCrystalService) SetTier(ctx context.Context, profileID, quality string, tier int) (*crystal.TierResult, error) {
	args := m.Called(ctx, profileID, quality, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crystal.TierResult), args.Error(1)
}

func (m *MockCrystalService) Reset(ctx context.Context, profileID string) (*crystal.Report, error) {
	return m.report(m.Called(ctx, profileID))
}

func (m *MockCrystalService) Export(ctx context.Context, profileID string) (string, error) {
	args := m.Called(ctx, profileID)
	return args.String(0), args.Error(1)
}

func (m *MockCrystalService) Evaluate(ctx context.Context, rank, refine string, tiers map[string]int) (*crystal.Report, error) {
	return m.report(m.Called(ctx, rank, refine, tiers))
}

// MockGlyphService mocks glyph.Service
type MockGlyphService struct {
	mock.Mock
}

func (m *MockGlyphService) Catalog(ctx context.Context) *glyph.Catalog {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*glyph.Catalog)
}

func (m *MockGlyphService) Analyze(ctx context.Context, text string) domain.GlyphDetection {
	args := m.Called(ctx, text)
	return args.Get(0).(domain.GlyphDetection)
}

func (m *MockGlyphService) list(args mock.Arguments) ([]string, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGlyphService) GetSkills(ctx context.Context, profileID string) ([]string, error) {
	return m.list(m.Called(ctx, profileID))
}

func (m *MockGlyphService) AddSkill(ctx context.Context, profileID, skill string) ([]string, error) {
	return m.list(m.Called(ctx, profileID, skill))
}

func (m *MockGlyphService) RemoveSkill(ctx context.Context, profileID, skill string) ([]string, error) {
	return m.list(m.Called(ctx, profileID, skill))
}

func (m *MockGlyphService) ClearSkills(ctx context.Context, profileID string) ([]string, error) {
	return m.list(m.Called(ctx, profileID))
}

func (m *MockGlyphService) Browse(ctx context.Context, profileID, category string) ([]glyph.BrowseEntry, error) {
	args := m.Called(ctx, profileID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]glyph.BrowseEntry), args.Error(1)
}

func (m *MockGlyphService) selection(args mock.Arguments) (*glyph.Selection, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*glyph.Selection), args.Error(1)
}

func (m *MockGlyphService) GetSelection(ctx context.Context, profileID string) (*glyph.Selection, error) {
	return m.selection(m.Called(ctx, profileID))
}

func (m *MockGlyphService) ToggleSelection(ctx context.Context, profileID, name string) (*glyph.Selection, error) {
	return m.selection(m.Called(ctx, profileID, name))
}

func (m *MockGlyphService) ResetSelection(ctx context.Context, profileID string) (*glyph.Selection, error) {
	return m.selection(m.Called(ctx, profileID))
}

// MockPotionService mocks potion.Service
type MockPotionService struct {
	mock.Mock
}

func (m *MockPotionService) Catalog(ctx context.Context) *potion.Catalog {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*potion.Catalog)
}

func (m *MockPotionService) Compute(ctx context.Context, sel domain.PotionSelection) domain.PotionResult {
	args := m.Called(ctx, sel)
	return args.Get(0).(domain.PotionResult)
}

func (m *MockPotionService) Inspect(ctx context.Context) potion.InspectionReport {
	args := m.Called(ctx)
	return args.Get(0).(potion.InspectionReport)
}

func (m *MockPotionService) Suggest(ctx context.Context, req potion.CompletionRequest) potion.Completion {
	args := m.Called(ctx, req)
	return args.Get(0).(potion.Completion)
}

func (m *MockPotionService) list(args mock.Arguments) ([]string, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPotionService) GetBooks(ctx context.Context, profileID string) ([]string, error) {
	return m.list(m.Called(ctx, profileID))
}

func (m *MockPotionService) AddBook(ctx context.Context, profileID, title string) ([]string, error) {
	return m.list(m.Called(ctx, profileID, title))
}

func (m *MockPotionService) RemoveBook(ctx context.Context, profileID, title string) ([]string, error) {
	return m.list(m.Called(ctx, profileID, title))
}

func (m *MockPotionService) ClearBooks(ctx context.Context, profileID string) ([]string, error) {
	return m.list(m.Called(ctx, profileID))
}

func (m *MockPotionService) state(args mock.Arguments) (*potion.SelectionState, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*potion.SelectionState), args.Error(1)
}

func (m *MockPotionService) GetSelection(ctx context.Context, profileID string) (*potion.SelectionState, error) {
	return m.state(m.Called(ctx, profileID))
}

func (m *MockPotionService) Select(ctx context.Context, profileID, selectionType, name string) (*potion.SelectionState, error) {
	return m.state(m.Called(ctx, profileID, selectionType, name))
}

func (m *MockPotionService) ClearSelection(ctx context.Context, profileID, selectionType string) (*potion.SelectionState, error) {
	return m.state(m.Called(ctx, profileID, selectionType))
}

func (m *MockPotionService) ApplyVariant(ctx context.Context, profileID, recipeName string, variant int) (*potion.SelectionState, error) {
	return m.state(m.Called(ctx, profileID, recipeName, variant))
}

func (m *MockPotionService) filters(args mock.Arguments) (domain.PotionFilters, error) {
	if args.Get(0) == nil {
		return domain.PotionFilters{}, args.Error(1)
	}
	return args.Get(0).(domain.PotionFilters), args.Error(1)
}

func (m *MockPotionService) GetFilters(ctx context.Context, profileID string) (domain.PotionFilters, error) {
	return m.filters(m.Called(ctx, profileID))
}

func (m *MockPotionService) SetFilters(ctx context.Context, profileID string, filters domain.PotionFilters) (domain.PotionFilters, error) {
	return m.filters(m.Called(ctx, profileID, filters))
}

func (m *MockPotionService) CheckOrigin(ctx context.Context, profileID, label string) (domain.PotionFilters, error) {
	return m.filters(m.Called(ctx, profileID, label))
}

func (m *MockPotionService) UncheckOrigin(ctx context.Context, profileID, label string) (domain.PotionFilters, error) {
	return m.filters(m.Called(ctx, profileID, label))
}

func (m *MockPotionService) Ingredients(ctx context.Context, profileID string) ([]potion.IngredientView, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]potion.IngredientView), args.Error(1)
}

func (m *MockPotionService) Recipes(ctx context.Context, profileID string) ([]domain.Recipe, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockPotionService) Origins(ctx context.Context, profileID string) (*potion.OriginsView, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*potion.OriginsView), args.Error(1)
}

// MockActivityService mocks eventlog.Service
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Subscribe(bus event.Bus) error {
	args := m.Called(bus)
	return args.Error(0)
}

func (m *MockActivityService) History(ctx context.Context, profileID, eventType string, limit int) ([]eventlog.Entry, error) {
	args := m.Called(ctx, profileID, eventType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Entry), args.Error(1)
}

func (m *MockActivityService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
