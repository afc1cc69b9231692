package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/logger"
)

// Service records profile events and serves them back as history
type Service interface {
	// Subscribe registers the event logger for every profile event type
	Subscribe(bus event.Bus) error

	// History returns a profile's recent activity, newest first. An empty
	// eventType returns all types; limit 0 uses DefaultHistoryLimit.
	History(ctx context.Context, profileID, eventType string, limit int) ([]Entry, error)

	// CleanupOldEvents removes entries older than the retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllProfileEventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent stores the event payload as JSON under the profile in its metadata
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	profileID, _ := evt.GetMetadataValue(event.MetadataKeyProfileID).(string)
	if profileID == "" {
		logger.FromContext(ctx).Debug(LogMsgEventMissingProfile, "type", evt.Type)
		return nil
	}
	log := logger.ForProfile(ctx, profileID)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalPayload, err)
	}

	entry := Entry{
		EventType: string(evt.Type),
		ProfileID: profileID,
		Payload:   payload,
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type)
	return nil
}

func (s *service) History(ctx context.Context, profileID, eventType string, limit int) ([]Entry, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 0 || limit > MaxHistoryLimit {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidLimit)
	}

	return s.repo.GetEvents(ctx, Filter{
		ProfileID: profileID,
		EventType: eventType,
		Limit:     limit,
	})
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -retentionDays)
	return s.repo.CleanupOldEvents(ctx, cutoff)
}
