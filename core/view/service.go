// ABOUTME: View service keeps each dashboard client's current result in the cache
// ABOUTME: Every successful scan overwrites the view; reset or TTL expiry discards it

package view

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pakgov-intel/core/domain"
	coreerrors "pakgov-intel/core/errors"
	"pakgov-intel/core/interfaces"

	"github.com/google/uuid"
)

const keyPrefix = "view:"

// DefaultTTL is how long an untouched view is kept
const DefaultTTL = time.Hour

// ViewService stores views by client view id
type ViewService struct {
	deps interfaces.Dependencies
	ttl  time.Duration
}

// NewViewService creates a new view service instance
func NewViewService(deps interfaces.Dependencies, ttl time.Duration) *ViewService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ViewService{
		deps: deps,
		ttl:  ttl,
	}
}

// NewID returns a fresh view id
func NewID() string {
	return uuid.New().String()
}

// validateID checks that id is a view id issued by NewID
func validateID(id string) error {
	if id == "" {
		return &coreerrors.ValidationError{Field: "view_id", Message: "view ID cannot be empty"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return &coreerrors.ValidationError{Field: "view_id", Message: "invalid view ID format"}
	}
	return nil
}

// Current returns the stored view or a NotFoundError
func (s *ViewService) Current(ctx context.Context, id string) (*domain.View, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if s.deps.Cache == nil {
		return nil, errors.New("view cache not configured")
	}

	data, err := s.deps.Cache.Get(ctx, keyPrefix+id)
	if errors.Is(err, interfaces.ErrCacheMiss) {
		return nil, &coreerrors.NotFoundError{Resource: "view", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load view: %w", err)
	}

	var v domain.View
	if err := json.Unmarshal(data, &v); err != nil {
		// A corrupt entry is dropped so the client starts from an empty view.
		_ = s.deps.Cache.Delete(ctx, keyPrefix+id)
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Discarding undecodable view", map[string]interface{}{
				"view_id": id,
				"error":   err.Error(),
			})
		}
		return nil, &coreerrors.NotFoundError{Resource: "view", ID: id}
	}

	return &v, nil
}

// Replace overwrites the view for id
func (s *ViewService) Replace(ctx context.Context, id string, v *domain.View) error {
	if err := validateID(id); err != nil {
		return err
	}
	if v == nil {
		return errors.New("view cannot be nil")
	}
	if s.deps.Cache == nil {
		return errors.New("view cache not configured")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}

	if err := s.deps.Cache.Set(ctx, keyPrefix+id, data, s.ttl); err != nil {
		return fmt.Errorf("failed to store view: %w", err)
	}
	return nil
}

// Reset discards the view for id. Resetting a missing view is not an error.
func (s *ViewService) Reset(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if s.deps.Cache == nil {
		return errors.New("view cache not configured")
	}
	return s.deps.Cache.Delete(ctx, keyPrefix+id)
}
