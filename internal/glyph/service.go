package glyph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/concurrency"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/logger"
	"github.com/osse101/CharacterForge_Go/internal/repository"
	"github.com/osse101/CharacterForge_Go/internal/utils"
)

// CatalogProvider supplies the current glyph catalog. Implementations never
// return nil; a failed load yields an empty catalog.
type CatalogProvider interface {
	GlyphCatalog(ctx context.Context) *Catalog
}

// Selection is a profile's selected glyphs with derived display values
type Selection struct {
	Glyphs []string           `json:"glyphs"`
	Totals domain.GlyphTotals `json:"totals"`
	Text   string             `json:"text"`
	Emojis string             `json:"emojis"`
}

// Service defines the interface for glyph analysis and per-profile builder state
type Service interface {
	Catalog(ctx context.Context) *Catalog
	Analyze(ctx context.Context, text string) domain.GlyphDetection

	GetSkills(ctx context.Context, profileID string) ([]string, error)
	AddSkill(ctx context.Context, profileID, skill string) ([]string, error)
	RemoveSkill(ctx context.Context, profileID, skill string) ([]string, error)
	ClearSkills(ctx context.Context, profileID string) ([]string, error)

	Browse(ctx context.Context, profileID, category string) ([]BrowseEntry, error)
	GetSelection(ctx context.Context, profileID string) (*Selection, error)
	ToggleSelection(ctx context.Context, profileID, name string) (*Selection, error)
	ResetSelection(ctx context.Context, profileID string) (*Selection, error)
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Options tunes the analysis cache
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	catalogs  CatalogProvider
	store     repository.StateStore
	publisher EventPublisher
	locks     *concurrency.LockManager
	cache     *analysisCache
}

// NewService creates a new glyph service
func NewService(catalogs CatalogProvider, store repository.StateStore, publisher EventPublisher, locks *concurrency.LockManager, opts Options) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		catalogs:  catalogs,
		store:     store,
		publisher: publisher,
		locks:     locks,
		cache:     newAnalysisCache(opts.CacheSize, opts.CacheTTL),
	}
}

func (s *service) Catalog(ctx context.Context) *Catalog {
	if c := s.catalogs.GlyphCatalog(ctx); c != nil {
		return c
	}
	return EmptyCatalog()
}

func (s *service) Analyze(ctx context.Context, text string) domain.GlyphDetection {
	catalog := s.Catalog(ctx)
	if det, ok := s.cache.Get(catalog, text); ok {
		return det
	}
	det := catalog.Analyze(text)
	s.cache.Set(catalog, text, det)
	logger.FromContext(ctx).Debug("Glyph text analyzed",
		"detected", len(det.Detected), "candidates", len(det.Candidates), "unknown", len(det.Unknown))
	return det
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

func (s *service) loadList(ctx context.Context, profileID, key string) ([]string, error) {
	raw, err := s.store.LoadState(ctx, profileID, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if raw == nil {
		return []string{}, nil
	}
	list := utils.StringList(raw, "")
	if list == nil {
		logger.ForProfile(ctx, profileID).Debug("Malformed list state, using defaults", "key", key)
		return []string{}, nil
	}
	return list, nil
}

func (s *service) saveList(ctx context.Context, profileID, key string, list []string) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.store.SaveState(ctx, profileID, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// skills loads the stored skills, cleaning and saving them back when needed.
// Callers must hold the profile lock.
func (s *service) skills(ctx context.Context, profileID string, catalog *Catalog) ([]string, error) {
	raw, err := s.loadList(ctx, profileID, domain.StateKeyGlyphSkills)
	if err != nil {
		return nil, err
	}
	cleaned, mutated := catalog.CleanSkills(raw)
	if mutated {
		if err := s.saveList(ctx, profileID, domain.StateKeyGlyphSkills, cleaned); err != nil {
			return nil, err
		}
	}
	return cleaned, nil
}

func (s *service) GetSkills(ctx context.Context, profileID string) ([]string, error) {
	unlock := s.locks.Lock(profileID)
	defer unlock()
	return s.skills(ctx, profileID, s.Catalog(ctx))
}

// updateSkills applies fn to the cleaned skill list and persists the result when it changed
func (s *service) updateSkills(ctx context.Context, profileID string, fn func(catalog *Catalog, skills []string) []string) ([]string, error) {
	unlock := s.locks.Lock(profileID)
	defer unlock()

	catalog := s.Catalog(ctx)
	current, err := s.skills(ctx, profileID, catalog)
	if err != nil {
		return nil, err
	}
	next := fn(catalog, current)
	if equalLists(current, next) {
		return current, nil
	}
	if err := s.saveList(ctx, profileID, domain.StateKeyGlyphSkills, next); err != nil {
		return nil, err
	}
	logger.ForProfile(ctx, profileID).Info("Glyph skills updated", "count", len(next))
	s.publish(ctx, event.NewGlyphSkillsChangedEvent(profileID, next))
	return next, nil
}

func (s *service) AddSkill(ctx context.Context, profileID, skill string) ([]string, error) {
	if strings.TrimSpace(skill) == "" {
		return nil, fmt.Errorf("%w: skill name is required", domain.ErrInvalidInput)
	}
	return s.updateSkills(ctx, profileID, func(catalog *Catalog, skills []string) []string {
		canonical := catalog.CanonicalSkill(skill)
		if HasSkill(skills, canonical) {
			return skills
		}
		return append(append([]string{}, skills...), canonical)
	})
}

func (s *service) RemoveSkill(ctx context.Context, profileID, skill string) ([]string, error) {
	return s.updateSkills(ctx, profileID, func(_ *Catalog, skills []string) []string {
		key := utils.FoldFrench(skill)
		out := make([]string, 0, len(skills))
		for _, sk := range skills {
			if utils.FoldFrench(sk) != key {
				out = append(out, sk)
			}
		}
		return out
	})
}

func (s *service) ClearSkills(ctx context.Context, profileID string) ([]string, error) {
	return s.updateSkills(ctx, profileID, func(_ *Catalog, _ []string) []string {
		return []string{}
	})
}

func (s *service) Browse(ctx context.Context, profileID, category string) ([]BrowseEntry, error) {
	unlock := s.locks.Lock(profileID)
	defer unlock()

	catalog := s.Catalog(ctx)
	skills, err := s.skills(ctx, profileID, catalog)
	if err != nil {
		return nil, err
	}
	selection, err := s.loadList(ctx, profileID, domain.StateKeyGlyphSelection)
	if err != nil {
		return nil, err
	}
	return catalog.Browse(skills, selection, category), nil
}

func (s *service) view(catalog *Catalog, names []string) *Selection {
	return &Selection{
		Glyphs: names,
		Totals: catalog.Totals(names),
		Text:   catalog.FormatSelection(names),
		Emojis: EmojiLine(names),
	}
}

func (s *service) GetSelection(ctx context.Context, profileID string) (*Selection, error) {
	names, err := s.loadList(ctx, profileID, domain.StateKeyGlyphSelection)
	if err != nil {
		return nil, err
	}
	return s.view(s.Catalog(ctx), names), nil
}

func (s *service) ToggleSelection(ctx context.Context, profileID, name string) (*Selection, error) {
	unlock := s.locks.Lock(profileID)
	defer unlock()

	catalog := s.Catalog(ctx)
	if _, ok := catalog.Lookup(name); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownGlyph, name)
	}
	names, err := s.loadList(ctx, profileID, domain.StateKeyGlyphSelection)
	if err != nil {
		return nil, err
	}

	next := make([]string, 0, len(names)+1)
	removed := false
	for _, n := range names {
		if n == name {
			removed = true
			continue
		}
		next = append(next, n)
	}
	if !removed {
		skills, err := s.skills(ctx, profileID, catalog)
		if err != nil {
			return nil, err
		}
		if !utils.ContainsString(catalog.UnlockedGlyphs(skills), name) {
			return nil, fmt.Errorf("%w: %s", domain.ErrGlyphLocked, name)
		}
		next = append(next, name)
	}

	return s.commitSelection(ctx, profileID, catalog, next)
}

func (s *service) ResetSelection(ctx context.Context, profileID string) (*Selection, error) {
	unlock := s.locks.Lock(profileID)
	defer unlock()
	return s.commitSelection(ctx, profileID, s.Catalog(ctx), []string{})
}

func (s *service) commitSelection(ctx context.Context, profileID string, catalog *Catalog, names []string) (*Selection, error) {
	if err := s.saveList(ctx, profileID, domain.StateKeyGlyphSelection, names); err != nil {
		return nil, err
	}
	view := s.view(catalog, names)
	s.publish(ctx, event.NewGlyphSelectionChangedEvent(profileID, names, view.Totals))
	return view, nil
}

func equalLists(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
