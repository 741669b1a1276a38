package academy_test

import (
	"net/http"
	"testing"

	"github.com/upperhound/academy/pkg/academysdk"
)

func TestE2EHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupAcademyContainer(t)
	defer cleanup()

	client := academysdk.NewSDKClient(baseURL)
	ctx := t.Context()

	live, err := client.Livez(ctx)
	assertHealthy(t, live, err)

	ready, err := client.Readyz(ctx)
	assertHealthy(t, ready, err)
}

func TestE2EBootstrapGating(t *testing.T) {
	baseURL, cleanup := setupAcademyContainer(t)
	defer cleanup()

	client := academysdk.NewSDKClient(baseURL)
	ctx := t.Context()

	// Wrong token refused
	_, err := client.Bootstrap(ctx, "wrong-token", adminEmail, adminFullName, adminPassword)
	assertAPIError(t, err, http.StatusUnauthorized, "bootstrap with wrong token")

	// First bootstrap succeeds, second is refused
	bootstrapService(t, client)

	_, err = client.Bootstrap(ctx, bootstrapToken, "other@upperhound.edu", "Other", adminPassword)
	assertAPIError(t, err, http.StatusConflict, "second bootstrap")
}
