package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/events"
)

func newMembershipFixture() (*MembershipService, *fakeUserRepo, *recordingDispatcher) {
	users := newFakeUserRepo()
	dispatcher := &recordingDispatcher{}
	return NewMembershipService(users, dispatcher), users, dispatcher
}

func TestMembershipService_Request(t *testing.T) {
	t.Parallel()

	svc, users, dispatcher := newMembershipFixture()
	user := users.add(domain.User{Email: "user@example.com"})

	require.NoError(t, svc.Request(context.Background(), user))
	assert.True(t, user.MembershipRequested)

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, stored.MembershipRequested)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventMembershipRequested, published[0].Type)
}

func TestMembershipService_RequestTwiceFails(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	user := users.add(domain.User{MembershipRequested: true})

	err := svc.Request(context.Background(), user)
	requireDomainError(t, err, "VALIDATION_FAILED")
}

func TestMembershipService_RequestWhileActiveFails(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	expiresAt := time.Now().AddDate(0, 0, 5)
	user := users.add(domain.User{MembershipActive: true, MembershipExpiresAt: &expiresAt})

	err := svc.Request(context.Background(), user)
	requireDomainError(t, err, "VALIDATION_FAILED")
}

func TestMembershipService_ApproveGrantsThirtyDays(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	admin := &domain.Admin{ID: "admin-1"}
	user := users.add(domain.User{MembershipRequested: true})

	expiresAt, err := svc.Approve(context.Background(), admin, user.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), expiresAt, 5*time.Second)

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, stored.MembershipActive)
	assert.False(t, stored.MembershipRequested)
}

func TestMembershipService_ReApproveResetsWindow(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	admin := &domain.Admin{ID: "admin-1"}
	farOut := time.Now().AddDate(0, 0, 90)
	user := users.add(domain.User{MembershipActive: true, MembershipExpiresAt: &farOut})

	expiresAt, err := svc.Approve(context.Background(), admin, user.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), expiresAt, 5*time.Second)
}

func TestMembershipService_ApproveUnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newMembershipFixture()
	admin := &domain.Admin{ID: "admin-1"}

	_, err := svc.Approve(context.Background(), admin, "missing")
	requireDomainError(t, err, "NOT_FOUND")
}

func TestMembershipService_RejectClearsRequestOnly(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	admin := &domain.Admin{ID: "admin-1"}
	expiresAt := time.Now().AddDate(0, 0, 5)
	user := users.add(domain.User{
		MembershipActive:    true,
		MembershipExpiresAt: &expiresAt,
		MembershipRequested: true,
	})

	require.NoError(t, svc.Reject(context.Background(), admin, user.ID))

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, stored.MembershipRequested)
	assert.True(t, stored.MembershipActive)
	require.NotNil(t, stored.MembershipExpiresAt)
	assert.WithinDuration(t, expiresAt, *stored.MembershipExpiresAt, time.Second)
}

func TestMembershipService_ExtendAddsToFutureExpiry(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	admin := &domain.Admin{ID: "admin-1"}
	current := time.Now().AddDate(0, 0, 10)
	user := users.add(domain.User{MembershipActive: true, MembershipExpiresAt: &current})

	expiresAt, err := svc.Extend(context.Background(), admin, user.ID, 30)
	require.NoError(t, err)
	assert.WithinDuration(t, current.AddDate(0, 0, 30), expiresAt, time.Second)

	// A second extension stacks on the new expiry.
	expiresAt, err = svc.Extend(context.Background(), admin, user.ID, 30)
	require.NoError(t, err)
	assert.WithinDuration(t, current.AddDate(0, 0, 60), expiresAt, time.Second)
}

func TestMembershipService_ExtendLapsedStartsFromNow(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	admin := &domain.Admin{ID: "admin-1"}
	lapsed := time.Now().AddDate(0, 0, -20)
	user := users.add(domain.User{MembershipActive: false, MembershipExpiresAt: &lapsed})

	expiresAt, err := svc.Extend(context.Background(), admin, user.ID, 15)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 15), expiresAt, 5*time.Second)

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, stored.MembershipActive)
}

func TestMembershipService_ExtendDefaultsToThirtyDays(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	admin := &domain.Admin{ID: "admin-1"}
	user := users.add(domain.User{})

	expiresAt, err := svc.Extend(context.Background(), admin, user.ID, 0)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), expiresAt, 5*time.Second)
}

func TestMembershipService_Revoke(t *testing.T) {
	t.Parallel()

	svc, users, dispatcher := newMembershipFixture()
	admin := &domain.Admin{ID: "admin-1"}
	expiresAt := time.Now().AddDate(0, 0, 5)
	user := users.add(domain.User{
		MembershipActive:    true,
		MembershipExpiresAt: &expiresAt,
		MembershipRequested: true,
	})

	require.NoError(t, svc.Revoke(context.Background(), admin, user.ID))

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, stored.MembershipActive)
	assert.Nil(t, stored.MembershipExpiresAt)
	assert.False(t, stored.MembershipRequested)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventMembershipRevoked, published[0].Type)
}

func TestMembershipService_RevokeUnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newMembershipFixture()
	admin := &domain.Admin{ID: "admin-1"}

	err := svc.Revoke(context.Background(), admin, "missing")
	requireDomainError(t, err, "NOT_FOUND")
}

func TestMembershipService_StatusLazilyExpires(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	lapsed := time.Now().AddDate(0, 0, -1)
	user := users.add(domain.User{MembershipActive: true, MembershipExpiresAt: &lapsed})

	status, err := svc.Status(context.Background(), user)
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Nil(t, status.ExpiresAt)
	assert.Zero(t, status.DaysRemaining)

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, stored.MembershipActive)
	assert.Nil(t, stored.MembershipExpiresAt)
}

func TestMembershipService_StatusActive(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	expiresAt := time.Now().AddDate(0, 0, 10)
	user := users.add(domain.User{MembershipActive: true, MembershipExpiresAt: &expiresAt})

	status, err := svc.Status(context.Background(), user)
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.Equal(t, 9, status.DaysRemaining)
}

func TestMembershipService_ListMembersSkipsLapsed(t *testing.T) {
	t.Parallel()

	svc, users, _ := newMembershipFixture()
	future := time.Now().AddDate(0, 0, 10)
	past := time.Now().AddDate(0, 0, -10)
	current := users.add(domain.User{Email: "current@example.com", MembershipActive: true, MembershipExpiresAt: &future})
	stale := users.add(domain.User{Email: "stale@example.com", MembershipActive: true, MembershipExpiresAt: &past})

	members, err := svc.ListMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, current.ID, members[0].User.ID)

	flipped, err := users.GetByID(context.Background(), stale.ID)
	require.NoError(t, err)
	assert.False(t, flipped.MembershipActive)
}
