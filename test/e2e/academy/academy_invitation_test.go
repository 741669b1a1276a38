package academy_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/upperhound/academy/pkg/academysdk"
)

func TestE2EInvitationLifecycle(t *testing.T) {
	baseURL, cleanup := setupAcademyContainer(t)
	defer cleanup()

	client := academysdk.NewSDKClient(baseURL)
	bootstrapService(t, client)
	session := loginAdmin(t, client)

	ctx := t.Context()

	// Issue an invitation as admin
	issued, err := session.IssueInvitation(ctx, "student@example.com", "student")
	require.NoError(t, err)
	require.NotEmpty(t, issued.Invitation.Token)
	require.Equal(t, "student@example.com", issued.Invitation.Email)
	require.Equal(t, "student", issued.Invitation.Role)

	// Verify shows the summary with the inviter's display name
	verified, err := client.VerifyInvitation(ctx, issued.Invitation.Token)
	require.NoError(t, err)
	require.True(t, verified.Valid)
	require.Equal(t, "student@example.com", verified.Invitation.Email)
	require.Equal(t, adminFullName, verified.Invitation.InvitedBy)

	// Accept consumes the token
	accepted, err := client.AcceptInvitation(ctx, issued.Invitation.Token)
	require.NoError(t, err)
	require.Equal(t, "Invitation accepted successfully", accepted.Message)
	require.Equal(t, issued.Invitation.ID, accepted.InvitationID)

	// Second accept conflates used and missing
	_, err = client.AcceptInvitation(ctx, issued.Invitation.Token)
	assertAPIError(t, err, http.StatusNotFound, "second accept")

	// Verification names the reason
	_, err = client.VerifyInvitation(ctx, issued.Invitation.Token)
	apiErr := assertAPIError(t, err, http.StatusBadRequest, "verify used token")
	require.Contains(t, apiErr.Message, "already been used")
}

func TestE2EUnknownTokens(t *testing.T) {
	baseURL, cleanup := setupAcademyContainer(t)
	defer cleanup()

	client := academysdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, err := client.VerifyInvitation(ctx, "no-such-token")
	assertAPIError(t, err, http.StatusNotFound, "verify unknown token")

	_, err = client.AcceptInvitation(ctx, "no-such-token")
	assertAPIError(t, err, http.StatusNotFound, "accept unknown token")
}

func TestE2ERoleHierarchy(t *testing.T) {
	baseURL, cleanup := setupAcademyContainer(t)
	defer cleanup()

	client := academysdk.NewSDKClient(baseURL)
	bootstrapService(t, client)
	adminSession := loginAdmin(t, client)

	ctx := t.Context()

	// Admin invites a course leader, who registers and logs in
	issued, err := adminSession.IssueInvitation(ctx, "leader@example.com", "course_leader")
	require.NoError(t, err)

	_, err = client.Register(ctx, issued.Invitation.Token, "Lead Groomer", "Leader123!long")
	require.NoError(t, err)

	leaderSession, err := client.Login(ctx, "leader@example.com", "Leader123!long")
	require.NoError(t, err)

	// Course leaders may invite students
	_, err = leaderSession.IssueInvitation(ctx, "their-pup@example.com", "student")
	require.NoError(t, err)

	// But not course leaders or admins
	_, err = leaderSession.IssueInvitation(ctx, "peer@example.com", "course_leader")
	assertAPIError(t, err, http.StatusForbidden, "leader inviting leader")

	_, err = leaderSession.IssueInvitation(ctx, "boss@example.com", "admin")
	assertAPIError(t, err, http.StatusForbidden, "leader inviting admin")

	// Students may not invite anyone
	studentInvite, err := adminSession.IssueInvitation(ctx, "pupil@example.com", "student")
	require.NoError(t, err)
	_, err = client.Register(ctx, studentInvite.Invitation.Token, "Pupil", "Pupil123!long")
	require.NoError(t, err)

	studentSession, err := client.Login(ctx, "pupil@example.com", "Pupil123!long")
	require.NoError(t, err)

	_, err = studentSession.IssueInvitation(ctx, "friend@example.com", "student")
	assertAPIError(t, err, http.StatusForbidden, "student inviting")
}

func TestE2EConcurrentAcceptance(t *testing.T) {
	baseURL, cleanup := setupAcademyContainer(t)
	defer cleanup()

	client := academysdk.NewSDKClient(baseURL)
	bootstrapService(t, client)
	session := loginAdmin(t, client)

	ctx := t.Context()

	issued, err := session.IssueInvitation(ctx, "contested@example.com", "student")
	require.NoError(t, err)

	const racers = 10
	var wg sync.WaitGroup
	results := make(chan error, racers)

	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.AcceptInvitation(ctx, issued.Invitation.Token)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
		} else {
			losses++
		}
	}

	require.Equal(t, 1, wins, "exactly one accept should win")
	require.Equal(t, racers-1, losses)
}

func TestE2EInvitationListing(t *testing.T) {
	baseURL, cleanup := setupAcademyContainer(t)
	defer cleanup()

	client := academysdk.NewSDKClient(baseURL)
	bootstrapService(t, client)
	adminSession := loginAdmin(t, client)

	ctx := t.Context()

	issued, err := adminSession.IssueInvitation(ctx, "feed@example.com", "student")
	require.NoError(t, err)

	list, err := adminSession.ListInvitations(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list.Invitations)

	// Token values never appear in listings, but the record itself does
	var found bool
	for _, record := range list.Invitations {
		require.Empty(t, record.Token)
		if record.ID == issued.Invitation.ID {
			found = true
		}
	}
	require.True(t, found, "issued invitation should appear in the feed")

	// Non-admin staff cannot read the feed
	leaderInvite, err := adminSession.IssueInvitation(ctx, "lister@example.com", "course_leader")
	require.NoError(t, err)
	_, err = client.Register(ctx, leaderInvite.Invitation.Token, "Lister", "Lister123!long")
	require.NoError(t, err)

	leaderSession, err := client.Login(ctx, "lister@example.com", "Lister123!long")
	require.NoError(t, err)

	_, err = leaderSession.ListInvitations(ctx)
	assertAPIError(t, err, http.StatusForbidden, "leader listing invitations")
}
