package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/events"
	"github.com/boz-concept/shop-service/internal/repository"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// DefaultMembershipDays is the window granted by approve and the
// default extension length.
const DefaultMembershipDays = 30

// MembershipService manages the paid tier lifecycle:
// none -> requested -> active -> (expired | revoked) -> none.
type MembershipService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewMembershipService constructs the service.
func NewMembershipService(users repository.UserRepository, dispatcher events.Dispatcher) *MembershipService {
	return &MembershipService{users: users, dispatcher: dispatcher}
}

// MembershipStatus is the customer-facing view of their tier.
type MembershipStatus struct {
	Active        bool
	ExpiresAt     *time.Time
	DaysRemaining int
	Requested     bool
}

// MemberView pairs an active member with days remaining, for the admin
// members listing.
type MemberView struct {
	User          domain.User
	DaysRemaining int
}

// Request marks the user as awaiting approval.
func (s *MembershipService) Request(ctx context.Context, user *domain.User) error {
	if user.HasActiveMembership(time.Now()) {
		return apperrors.NewValidationError("membership already active", nil)
	}
	if user.MembershipRequested {
		return apperrors.NewValidationError("membership already requested", nil)
	}

	if err := s.users.UpdateMembership(ctx, user.ID, user.MembershipActive, user.MembershipExpiresAt, true); err != nil {
		return err
	}
	user.MembershipRequested = true

	s.publish(ctx, events.EventMembershipRequested, user.ID, userActor(user.ID), nil)
	return nil
}

// Approve activates the membership for a fresh 30-day window starting
// now. Re-approving resets the window, it does not extend it.
func (s *MembershipService) Approve(ctx context.Context, admin *domain.Admin, userID string) (time.Time, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return time.Time{}, err
	}

	expiresAt := time.Now().AddDate(0, 0, DefaultMembershipDays)
	if err := s.users.UpdateMembership(ctx, userID, true, &expiresAt, false); err != nil {
		return time.Time{}, err
	}

	s.publish(ctx, events.EventMembershipApproved, userID, adminActor(admin.ID), &expiresAt)
	return expiresAt, nil
}

// Reject clears the pending request without touching the active state.
func (s *MembershipService) Reject(ctx context.Context, admin *domain.Admin, userID string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.users.UpdateMembership(ctx, userID, user.MembershipActive, user.MembershipExpiresAt, false); err != nil {
		return err
	}

	s.publish(ctx, events.EventMembershipRejected, userID, adminActor(admin.ID), nil)
	return nil
}

// Extend adds days to a future expiry, or starts a new window from now
// when the membership has lapsed or was never granted. Always
// reactivates the membership.
func (s *MembershipService) Extend(ctx context.Context, admin *domain.Admin, userID string, days int) (time.Time, error) {
	if days <= 0 {
		days = DefaultMembershipDays
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}

	now := time.Now()
	var expiresAt time.Time
	if user.MembershipExpiresAt != nil && user.MembershipExpiresAt.After(now) {
		expiresAt = user.MembershipExpiresAt.AddDate(0, 0, days)
	} else {
		expiresAt = now.AddDate(0, 0, days)
	}

	if err := s.users.UpdateMembership(ctx, userID, true, &expiresAt, user.MembershipRequested); err != nil {
		return time.Time{}, err
	}

	s.publish(ctx, events.EventMembershipExtended, userID, adminActor(admin.ID), &expiresAt)
	return expiresAt, nil
}

// Revoke deactivates the membership and clears expiry and any pending
// request.
func (s *MembershipService) Revoke(ctx context.Context, admin *domain.Admin, userID string) error {
	if err := s.users.UpdateMembership(ctx, userID, false, nil, false); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}

	s.publish(ctx, events.EventMembershipRevoked, userID, adminActor(admin.ID), nil)
	return nil
}

// Status reports the caller's tier, lazily expiring a stored-active
// membership whose expiry has passed.
func (s *MembershipService) Status(ctx context.Context, user *domain.User) (*MembershipStatus, error) {
	now := time.Now()

	if user.MembershipActive && !user.HasActiveMembership(now) {
		if err := s.users.UpdateMembership(ctx, user.ID, false, nil, user.MembershipRequested); err != nil {
			return nil, err
		}
		user.MembershipActive = false
		user.MembershipExpiresAt = nil
	}

	return &MembershipStatus{
		Active:        user.HasActiveMembership(now),
		ExpiresAt:     user.MembershipExpiresAt,
		DaysRemaining: user.MembershipDaysRemaining(now),
		Requested:     user.MembershipRequested,
	}, nil
}

// ListRequests returns users awaiting approval.
func (s *MembershipService) ListRequests(ctx context.Context) ([]domain.User, error) {
	return s.users.ListMembershipRequests(ctx)
}

// ListMembers returns active members with days remaining, lazily
// expiring stale rows encountered along the way.
func (s *MembershipService) ListMembers(ctx context.Context) ([]MemberView, error) {
	users, err := s.users.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	members := make([]MemberView, 0, len(users))
	for _, user := range users {
		if !user.HasActiveMembership(now) {
			if err := s.users.UpdateMembership(ctx, user.ID, false, nil, user.MembershipRequested); err != nil {
				return nil, err
			}
			continue
		}
		members = append(members, MemberView{
			User:          user,
			DaysRemaining: user.MembershipDaysRemaining(now),
		})
	}
	return members, nil
}

func (s *MembershipService) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

func (s *MembershipService) publish(ctx context.Context, eventType events.EventType, userID string, actor events.Actor, expiresAt *time.Time) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		EntityID:  userID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload: events.MembershipChangedPayload{
			UserID:    userID,
			ExpiresAt: expiresAt,
		},
	})
}
