package potion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osse101/CharacterForge_Go/internal/concurrency"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/logger"
	"github.com/osse101/CharacterForge_Go/internal/repository"
	"github.com/osse101/CharacterForge_Go/internal/utils"
)

// CatalogProvider supplies the current potion catalog. Implementations never
// return nil; a failed load yields an empty catalog.
type CatalogProvider interface {
	PotionCatalog(ctx context.Context) *Catalog
}

// SelectionState is a profile's selection with its computed result
type SelectionState struct {
	Selection domain.PotionSelection `json:"selection"`
	Result    domain.PotionResult    `json:"result"`
}

// OriginsView is the origin tree pruned to unlocked origins, with the checked labels
type OriginsView struct {
	Tree     []domain.OriginNode `json:"tree"`
	Selected []string            `json:"selected"`
}

// Service defines the interface for potion computation and per-profile builder state
type Service interface {
	Catalog(ctx context.Context) *Catalog
	Compute(ctx context.Context, sel domain.PotionSelection) domain.PotionResult
	Inspect(ctx context.Context) InspectionReport
	Suggest(ctx context.Context, req CompletionRequest) Completion

	GetBooks(ctx context.Context, profileID string) ([]string, error)
	AddBook(ctx context.Context, profileID, title string) ([]string, error)
	RemoveBook(ctx context.Context, profileID, title string) ([]string, error)
	ClearBooks(ctx context.Context, profileID string) ([]string, error)

	GetSelection(ctx context.Context, profileID string) (*SelectionState, error)
	Select(ctx context.Context, profileID, selectionType, name string) (*SelectionState, error)
	ClearSelection(ctx context.Context, profileID, selectionType string) (*SelectionState, error)
	ApplyVariant(ctx context.Context, profileID, recipeName string, variant int) (*SelectionState, error)

	GetFilters(ctx context.Context, profileID string) (domain.PotionFilters, error)
	SetFilters(ctx context.Context, profileID string, filters domain.PotionFilters) (domain.PotionFilters, error)
	CheckOrigin(ctx context.Context, profileID, label string) (domain.PotionFilters, error)
	UncheckOrigin(ctx context.Context, profileID, label string) (domain.PotionFilters, error)

	Ingredients(ctx context.Context, profileID string) ([]IngredientView, error)
	Recipes(ctx context.Context, profileID string) ([]domain.Recipe, error)
	Origins(ctx context.Context, profileID string) (*OriginsView, error)
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

type service struct {
	catalogs  CatalogProvider
	store     repository.StateStore
	publisher EventPublisher
	locks     *concurrency.LockManager
}

// NewService creates a new potion service
func NewService(catalogs CatalogProvider, store repository.StateStore, publisher EventPublisher, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{catalogs: catalogs, store: store, publisher: publisher, locks: locks}
}

func (s *service) Catalog(ctx context.Context) *Catalog {
	if c := s.catalogs.PotionCatalog(ctx); c != nil {
		return c
	}
	return EmptyCatalog()
}

func (s *service) Compute(ctx context.Context, sel domain.PotionSelection) domain.PotionResult {
	return s.Catalog(ctx).Compute(sel)
}

func (s *service) Inspect(ctx context.Context) InspectionReport {
	return s.Catalog(ctx).Inspect()
}

func (s *service) Suggest(ctx context.Context, req CompletionRequest) Completion {
	return s.Catalog(ctx).SuggestCompletion(req)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

func (s *service) load(ctx context.Context, profileID, key string) ([]byte, error) {
	raw, err := s.store.LoadState(ctx, profileID, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return raw, nil
}

func (s *service) save(ctx context.Context, profileID, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.store.SaveState(ctx, profileID, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// ---------- books ----------

func (s *service) books(ctx context.Context, profileID string) ([]string, error) {
	raw, err := s.load(ctx, profileID, domain.StateKeyPotionBooks)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []string{}, nil
	}
	list := utils.StringList(raw, "")
	if list == nil {
		logger.ForProfile(ctx, profileID).Debug("Malformed books state, using defaults")
		return []string{}, nil
	}
	return utils.TrimDedupe(list), nil
}

func (s *service) GetBooks(ctx context.Context, profileID string) ([]string, error) {
	return s.books(ctx, profileID)
}

func (s *service) updateBooks(ctx context.Context, profileID string, fn func([]string) []string) ([]string, error) {
	unlock := s.locks.Lock(profileID)
	defer unlock()

	current, err := s.books(ctx, profileID)
	if err != nil {
		return nil, err
	}
	next := fn(current)
	if len(next) == len(current) {
		same := true
		for i := range next {
			if next[i] != current[i] {
				same = false
				break
			}
		}
		if same {
			return current, nil
		}
	}
	if err := s.save(ctx, profileID, domain.StateKeyPotionBooks, next); err != nil {
		return nil, err
	}
	logger.ForProfile(ctx, profileID).Info("Potion books updated", "count", len(next))
	s.publish(ctx, event.NewPotionBooksChangedEvent(profileID, next))
	return next, nil
}

func (s *service) AddBook(ctx context.Context, profileID, title string) ([]string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: book title is required", domain.ErrInvalidInput)
	}
	return s.updateBooks(ctx, profileID, func(books []string) []string {
		if utils.ContainsString(books, title) {
			return books
		}
		return append(append([]string{}, books...), title)
	})
}

func (s *service) RemoveBook(ctx context.Context, profileID, title string) ([]string, error) {
	return s.updateBooks(ctx, profileID, func(books []string) []string {
		out := make([]string, 0, len(books))
		for _, b := range books {
			if b != title {
				out = append(out, b)
			}
		}
		return out
	})
}

func (s *service) ClearBooks(ctx context.Context, profileID string) ([]string, error) {
	return s.updateBooks(ctx, profileID, func([]string) []string { return []string{} })
}

// ---------- selection ----------

func (s *service) selection(ctx context.Context, profileID string) (domain.PotionSelection, error) {
	raw, err := s.load(ctx, profileID, domain.StateKeyPotionSelection)
	if err != nil {
		return domain.PotionSelection{}, err
	}
	if raw == nil {
		return domain.NewPotionSelection(), nil
	}
	sel, ok := DecodeSelection(raw)
	if !ok {
		logger.ForProfile(ctx, profileID).Debug("Malformed potion selection, using defaults")
	}
	return sel, nil
}

func (s *service) GetSelection(ctx context.Context, profileID string) (*SelectionState, error) {
	sel, err := s.selection(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return &SelectionState{Selection: sel, Result: s.Catalog(ctx).Compute(sel)}, nil
}

// mutateSelection applies fn under the profile lock, saves, and publishes the new result
func (s *service) mutateSelection(ctx context.Context, profileID string, fn func(*Catalog, domain.PotionSelection) (domain.PotionSelection, error)) (*SelectionState, error) {
	unlock := s.locks.Lock(profileID)
	defer unlock()

	catalog := s.Catalog(ctx)
	current, err := s.selection(ctx, profileID)
	if err != nil {
		return nil, err
	}
	next, err := fn(catalog, current)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, profileID, domain.StateKeyPotionSelection, next); err != nil {
		return nil, err
	}

	result := catalog.Compute(next)
	s.publish(ctx, event.NewPotionSelectionChangedEvent(profileID, next, result))
	return &SelectionState{Selection: next, Result: result}, nil
}

func (s *service) Select(ctx context.Context, profileID, selectionType, name string) (*SelectionState, error) {
	typ, err := ParseSelectionType(selectionType)
	if err != nil {
		return nil, err
	}
	return s.mutateSelection(ctx, profileID, func(c *Catalog, sel domain.PotionSelection) (domain.PotionSelection, error) {
		if _, ok := c.Ingredient(name); !ok {
			return sel, fmt.Errorf("%w: %q", domain.ErrIngredientNotFound, name)
		}
		return Toggle(sel, typ, name), nil
	})
}

// ClearSelection empties one slot, or the whole selection when selectionType is empty
func (s *service) ClearSelection(ctx context.Context, profileID, selectionType string) (*SelectionState, error) {
	typ := ""
	if selectionType != "" {
		var err error
		if typ, err = ParseSelectionType(selectionType); err != nil {
			return nil, err
		}
	}
	return s.mutateSelection(ctx, profileID, func(_ *Catalog, sel domain.PotionSelection) (domain.PotionSelection, error) {
		if typ == "" {
			return domain.NewPotionSelection(), nil
		}
		return ClearByType(sel, typ), nil
	})
}

func (s *service) ApplyVariant(ctx context.Context, profileID, recipeName string, variant int) (*SelectionState, error) {
	return s.mutateSelection(ctx, profileID, func(c *Catalog, _ domain.PotionSelection) (domain.PotionSelection, error) {
		recipe, ok := c.Recipe(recipeName)
		if !ok {
			return domain.PotionSelection{}, fmt.Errorf("%w: %q", domain.ErrRecipeNotFound, recipeName)
		}
		if variant < 0 || variant >= len(recipe.Variants) {
			return domain.PotionSelection{}, fmt.Errorf("%w: recipe %q has no variant %d", domain.ErrInvalidInput, recipeName, variant)
		}
		return c.ApplyVariant(recipe.Variants[variant]), nil
	})
}

// ---------- filters ----------

func (s *service) filters(ctx context.Context, profileID string) (domain.PotionFilters, error) {
	raw, err := s.load(ctx, profileID, domain.StateKeyPotionFilters)
	if err != nil {
		return domain.PotionFilters{}, err
	}
	if raw == nil {
		return domain.NewPotionFilters(), nil
	}
	f, ok := DecodeFilters(raw)
	if !ok {
		logger.ForProfile(ctx, profileID).Debug("Malformed potion filters, using defaults")
	}
	return f, nil
}

func (s *service) GetFilters(ctx context.Context, profileID string) (domain.PotionFilters, error) {
	return s.filters(ctx, profileID)
}

func (s *service) mutateFilters(ctx context.Context, profileID string, fn func(*Catalog, domain.PotionFilters) (domain.PotionFilters, error)) (domain.PotionFilters, error) {
	unlock := s.locks.Lock(profileID)
	defer unlock()

	current, err := s.filters(ctx, profileID)
	if err != nil {
		return domain.PotionFilters{}, err
	}
	next, err := fn(s.Catalog(ctx), current)
	if err != nil {
		return domain.PotionFilters{}, err
	}
	if err := s.save(ctx, profileID, domain.StateKeyPotionFilters, next); err != nil {
		return domain.PotionFilters{}, err
	}
	s.publish(ctx, event.NewPotionFiltersChangedEvent(profileID, next))
	return next, nil
}

func (s *service) SetFilters(ctx context.Context, profileID string, filters domain.PotionFilters) (domain.PotionFilters, error) {
	cat, err := ParseFilterCategory(filters.Cat)
	if err != nil {
		return domain.PotionFilters{}, err
	}
	origins := utils.TrimDedupe(filters.Origins)
	return s.mutateFilters(ctx, profileID, func(_ *Catalog, _ domain.PotionFilters) (domain.PotionFilters, error) {
		return domain.PotionFilters{Cat: cat, Origins: origins}, nil
	})
}

func (s *service) CheckOrigin(ctx context.Context, profileID, label string) (domain.PotionFilters, error) {
	return s.mutateFilters(ctx, profileID, func(c *Catalog, f domain.PotionFilters) (domain.PotionFilters, error) {
		f.Origins = CheckOrigin(c.Origins(), f.Origins, label)
		return f, nil
	})
}

func (s *service) UncheckOrigin(ctx context.Context, profileID, label string) (domain.PotionFilters, error) {
	return s.mutateFilters(ctx, profileID, func(c *Catalog, f domain.PotionFilters) (domain.PotionFilters, error) {
		f.Origins = UncheckOrigin(c.Origins(), f.Origins, label)
		return f, nil
	})
}

// ---------- views ----------

func (s *service) Ingredients(ctx context.Context, profileID string) ([]IngredientView, error) {
	books, err := s.books(ctx, profileID)
	if err != nil {
		return nil, err
	}
	filters, err := s.filters(ctx, profileID)
	if err != nil {
		return nil, err
	}
	sel, err := s.selection(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return s.Catalog(ctx).VisibleIngredients(filters, books, sel), nil
}

func (s *service) Recipes(ctx context.Context, profileID string) ([]domain.Recipe, error) {
	catalog := s.Catalog(ctx)
	if profileID == "" {
		return catalog.Recipes(), nil
	}
	books, err := s.books(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return catalog.VisibleRecipes(books), nil
}

func (s *service) Origins(ctx context.Context, profileID string) (*OriginsView, error) {
	books, err := s.books(ctx, profileID)
	if err != nil {
		return nil, err
	}
	filters, err := s.filters(ctx, profileID)
	if err != nil {
		return nil, err
	}
	catalog := s.Catalog(ctx)
	tree := PruneOrigins(catalog.Origins(), catalog.UnlockedOrigins(books))
	if tree == nil {
		tree = []domain.OriginNode{}
	}
	return &OriginsView{Tree: tree, Selected: filters.Origins}, nil
}
