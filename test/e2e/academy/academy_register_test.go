package academy_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/upperhound/academy/pkg/academysdk"
)

func TestE2ERegistration(t *testing.T) {
	baseURL, cleanup := setupAcademyContainer(t)
	defer cleanup()

	client := academysdk.NewSDKClient(baseURL)
	bootstrapService(t, client)
	session := loginAdmin(t, client)

	ctx := t.Context()

	issued, err := session.IssueInvitation(ctx, "joiner@example.com", "student")
	require.NoError(t, err)

	registered, err := client.Register(ctx, issued.Invitation.Token, "Joiner Pup", "Joiner123!long")
	require.NoError(t, err)
	require.Equal(t, "joiner@example.com", registered.Account.Email)
	require.Equal(t, "student", registered.Account.Role)
	require.Equal(t, "Joiner Pup", registered.Account.FullName)

	// The consumed token cannot register again
	_, err = client.Register(ctx, issued.Invitation.Token, "Copycat", "Copycat123!long")
	assertAPIError(t, err, http.StatusNotFound, "re-using consumed token")

	// The new account can log in
	_, err = client.Login(ctx, "joiner@example.com", "Joiner123!long")
	require.NoError(t, err)

	// A wrong password is refused
	_, err = client.Login(ctx, "joiner@example.com", "Wrong123!long")
	assertAPIError(t, err, http.StatusUnauthorized, "wrong password")
}

func TestE2ERegistrationValidation(t *testing.T) {
	baseURL, cleanup := setupAcademyContainer(t)
	defer cleanup()

	client := academysdk.NewSDKClient(baseURL)
	bootstrapService(t, client)
	session := loginAdmin(t, client)

	ctx := t.Context()

	issued, err := session.IssueInvitation(ctx, "strict@example.com", "student")
	require.NoError(t, err)

	// A short password is rejected and the invitation survives
	_, err = client.Register(ctx, issued.Invitation.Token, "Strict Pup", "tiny")
	assertAPIError(t, err, http.StatusBadRequest, "short password")

	verified, err := client.VerifyInvitation(ctx, issued.Invitation.Token)
	require.NoError(t, err)
	require.True(t, verified.Valid)

	// Verification reports a conflict once the email has an account
	_, err = client.Register(ctx, issued.Invitation.Token, "Strict Pup", "Strict123!long")
	require.NoError(t, err)

	second, err := session.IssueInvitation(ctx, "strict@example.com", "student")
	require.NoError(t, err)

	_, err = client.VerifyInvitation(ctx, second.Invitation.Token)
	apiErr := assertAPIError(t, err, http.StatusBadRequest, "verify with existing account")
	require.Contains(t, apiErr.Message, "already exists")
}
