package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/upperhound/academy/internal/academy/domain"
	"github.com/upperhound/academy/internal/academy/store"
	"github.com/upperhound/academy/internal/academy/store/drivers/sqlite"
	"github.com/upperhound/academy/pkg/cryptox"
	"github.com/upperhound/academy/pkg/idx"
)

// newTestStore opens a file-backed sqlite store under the test's temp dir.
// A file (rather than :memory:) is required because database/sql pools
// connections and each :memory: connection would see its own database.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dir := t.TempDir()
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	dsn := "file:" + filepath.Join(dir, "academy.db") +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())

	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedAccount(t *testing.T, s store.Store, role domain.Role, status domain.AccountStatus) domain.Account {
	t.Helper()

	now := time.Now().UTC()
	a := domain.Account{
		ID:           idx.New().String(),
		Email:        idx.New().String() + "@upperhound.edu",
		FullName:     "Seed " + string(role),
		PasswordHash: "unused",
		Role:         role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Accounts().CreateAccount(context.Background(), a))
	return a
}

func TestIssueInvitation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &InvitationService{Store: s}

	admin := seedAccount(t, s, domain.RoleAdmin, domain.AccountApproved)
	leader := seedAccount(t, s, domain.RoleCourseLeader, domain.AccountApproved)
	student := seedAccount(t, s, domain.RoleStudent, domain.AccountApproved)
	suspended := seedAccount(t, s, domain.RoleAdmin, domain.AccountSuspended)

	t.Run("admin can invite any role", func(t *testing.T) {
		for _, role := range []string{"student", "course_leader", "admin"} {
			inv, err := svc.Issue(ctx, role+"@example.com", role, admin.ID)
			require.NoError(t, err)
			require.Equal(t, role, inv.Role.String())
			require.NotEmpty(t, inv.Token)
			require.Equal(t, admin.ID, inv.InvitedBy)
		}
	})

	t.Run("expiry horizon defaults to seven days", func(t *testing.T) {
		inv, err := svc.Issue(ctx, "horizon@example.com", "student", admin.ID)
		require.NoError(t, err)
		require.WithinDuration(t, time.Now().UTC().Add(DefaultInviteTTL), inv.ExpiresAt, time.Minute)
	})

	t.Run("course leader may only invite students", func(t *testing.T) {
		_, err := svc.Issue(ctx, "ok@example.com", "student", leader.ID)
		require.NoError(t, err)

		_, err = svc.Issue(ctx, "no@example.com", "course_leader", leader.ID)
		require.ErrorIs(t, err, ErrRoleNotAllowed)

		_, err = svc.Issue(ctx, "no@example.com", "admin", leader.ID)
		require.ErrorIs(t, err, ErrRoleNotAllowed)
	})

	t.Run("students may not invite at all", func(t *testing.T) {
		_, err := svc.Issue(ctx, "no@example.com", "student", student.ID)
		require.ErrorIs(t, err, ErrRoleNotAllowed)
	})

	t.Run("suspended inviter rejected", func(t *testing.T) {
		_, err := svc.Issue(ctx, "no@example.com", "student", suspended.ID)
		require.ErrorIs(t, err, ErrInviterSuspended)
	})

	t.Run("unknown inviter rejected", func(t *testing.T) {
		_, err := svc.Issue(ctx, "no@example.com", "student", idx.New().String())
		require.ErrorIs(t, err, ErrInviterNotFound)
	})

	t.Run("malformed emails rejected", func(t *testing.T) {
		for _, email := range []string{"", "nope", "a b@example.com", "Jo <jo@example.com>"} {
			_, err := svc.Issue(ctx, email, "student", admin.ID)
			require.ErrorIs(t, err, ErrInvalidEmail, email)
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := svc.Issue(ctx, "ok@example.com", "groomer", admin.ID)
		require.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestVerifyInvitation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &InvitationService{Store: s}

	admin := seedAccount(t, s, domain.RoleAdmin, domain.AccountApproved)

	t.Run("unknown token reported first", func(t *testing.T) {
		_, err := svc.Verify(ctx, "definitely-not-a-token")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("valid invitation yields the safe summary", func(t *testing.T) {
		inv, err := svc.Issue(ctx, "pup@example.com", "student", admin.ID)
		require.NoError(t, err)

		sum, err := svc.Verify(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, "pup@example.com", sum.Email)
		require.Equal(t, domain.RoleStudent, sum.Role)
		require.Equal(t, admin.FullName, sum.InvitedBy)
		require.WithinDuration(t, inv.ExpiresAt, sum.ExpiresAt, time.Second)
	})

	t.Run("used invitation reported as used", func(t *testing.T) {
		inv, err := svc.Issue(ctx, "used@example.com", "student", admin.ID)
		require.NoError(t, err)

		_, err = svc.Accept(ctx, inv.Token)
		require.NoError(t, err)

		_, err = svc.Verify(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInvitationUsed)
	})

	t.Run("expired invitation reported as expired", func(t *testing.T) {
		inv := seedExpiredInvitation(t, s, admin.ID, "late@example.com")

		_, err := svc.Verify(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInvitationExpired)
	})

	t.Run("existing account reported as conflict", func(t *testing.T) {
		existing := seedAccount(t, s, domain.RoleStudent, domain.AccountApproved)
		inv, err := svc.Issue(ctx, existing.Email, "student", admin.ID)
		require.NoError(t, err)

		_, err = svc.Verify(ctx, inv.Token)
		require.ErrorIs(t, err, ErrAccountExists)
	})

	t.Run("inviter display falls back to email when name missing", func(t *testing.T) {
		now := time.Now().UTC()
		blank := domain.Account{
			ID:           idx.New().String(),
			Email:        idx.New().String() + "@upperhound.edu",
			PasswordHash: "unused",
			Role:         domain.RoleAdmin,
			Status:       domain.AccountApproved,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		require.NoError(t, s.Accounts().CreateAccount(ctx, blank))

		inv, err := svc.Issue(ctx, "fallback@example.com", "student", blank.ID)
		require.NoError(t, err)

		sum, err := svc.Verify(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, blank.Email, sum.InvitedBy)
	})
}

func seedExpiredInvitation(t *testing.T, s store.Store, inviterID, email string) domain.Invitation {
	t.Helper()

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		Role:      domain.RoleStudent,
		Token:     "expired-" + idx.New().String(),
		InvitedBy: inviterID,
		ExpiresAt: now.Add(-time.Hour),
		CreatedAt: now.Add(-8 * 24 * time.Hour),
	}
	require.NoError(t, s.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &InvitationService{Store: s}

	admin := seedAccount(t, s, domain.RoleAdmin, domain.AccountApproved)

	t.Run("accept claims the invitation exactly once", func(t *testing.T) {
		inv, err := svc.Issue(ctx, "once@example.com", "student", admin.ID)
		require.NoError(t, err)

		claimed, err := svc.Accept(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, inv.ID, claimed.ID)
		require.Equal(t, "once@example.com", claimed.Email)
		require.NotNil(t, claimed.UsedAt)

		// The second attempt conflates used and missing.
		_, err = svc.Accept(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("expired invitation cannot be accepted", func(t *testing.T) {
		inv := seedExpiredInvitation(t, s, admin.ID, "stale@example.com")

		_, err := svc.Accept(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("unknown token cannot be accepted", func(t *testing.T) {
		_, err := svc.Accept(ctx, "no-such-token")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("concurrent accepts settle on one winner", func(t *testing.T) {
		inv, err := svc.Issue(ctx, "race@example.com", "student", admin.ID)
		require.NoError(t, err)

		const racers = 8
		var wg sync.WaitGroup
		wins := make(chan domain.Invitation, racers)

		for range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if claimed, err := svc.Accept(ctx, inv.Token); err == nil {
					wins <- claimed
				}
			}()
		}
		wg.Wait()
		close(wins)

		var winners int
		for range wins {
			winners++
		}
		require.Equal(t, 1, winners)
	})
}

func TestListRecentInvitations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &InvitationService{Store: s}

	admin := seedAccount(t, s, domain.RoleAdmin, domain.AccountApproved)

	for i := range 3 {
		_, err := svc.Issue(ctx, string(rune('a'+i))+"@example.com", "student", admin.ID)
		require.NoError(t, err)
	}

	list, err := svc.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
}
