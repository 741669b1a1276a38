package academy_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/upperhound/academy/pkg/academysdk"
)

/*
 * Common constants and helper functions for academy service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "academy-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminEmail     = "head@upperhound.edu"
	adminFullName  = "Head Groomer"
	adminPassword  = "Admin123!longer"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Academy Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Academy Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/academy/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAcademyContainer starts the academy service in a container and returns the base URL.
func setupAcademyContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":       bootstrapToken,
			"ACADEMY_DATABASE_FILE": "/tmp/academy.db",
			"ACADEMY_PEPPER_FILE":   "/tmp/pepper",
			"ACADEMY_ISSUER":        "upperhound-academy",
			"ENV":                   "test",
			"LOG_LEVEL":             "info",
			"LOG_FORMAT":            "json",
			// Increase rate limits for E2E tests to prevent test failures
			// Tests often make many rapid requests which would otherwise hit the strict production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupAcademyContainerWithDefaultRateLimits starts the service with DEFAULT
// rate limits. This is specifically for testing that rate limiting works.
// Most tests should use setupAcademyContainer() which has relaxed limits.
func setupAcademyContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":       bootstrapToken,
			"ACADEMY_DATABASE_FILE": "/tmp/academy.db",
			"ACADEMY_PEPPER_FILE":   "/tmp/pepper",
			"ACADEMY_ISSUER":        "upperhound-academy",
			"ENV":                   "test",
			"LOG_LEVEL":             "info",
			"LOG_FORMAT":            "json",
			// NOTE: No rate limit overrides - using production defaults for rate limit testing
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// bootstrapService creates the first admin account and returns its id.
func bootstrapService(t *testing.T, client *academysdk.SDKClient) string {
	t.Helper()
	ctx := context.Background()

	resp, err := client.Bootstrap(ctx, bootstrapToken, adminEmail, adminFullName, adminPassword)
	require.NoError(t, err, "Bootstrap should succeed")
	require.NotEmpty(t, resp.AccountID, "Admin account ID should not be empty")

	return resp.AccountID
}

// loginAdmin bootstraps (if needed) and logs in as the admin account.
func loginAdmin(t *testing.T, client *academysdk.SDKClient) *academysdk.Session {
	t.Helper()

	session, err := client.Login(context.Background(), adminEmail, adminPassword)
	require.NoError(t, err, "Admin login should succeed")
	require.NotNil(t, session)

	return session
}

// assertAPIError verifies an error is an *APIError with the given status.
func assertAPIError(t *testing.T, err error, statusCode int, context string) *academysdk.APIError {
	t.Helper()
	require.Error(t, err, context)

	apiErr, ok := err.(*academysdk.APIError)
	require.True(t, ok, "%s - expected *academysdk.APIError, got %T: %v", context, err, err)
	require.Equal(t, statusCode, apiErr.StatusCode, "%s - unexpected status, message: %s", context, apiErr.Message)
	return apiErr
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *academysdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
