package di

import (
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowerlibrary/flower-server/internal/config"
	"github.com/flowerlibrary/flower-server/internal/di/providers"
	"github.com/flowerlibrary/flower-server/internal/service"
)

func testArgs(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	return []string{
		"-env-file", filepath.Join(dir, "missing.env"),
		"-db-path", filepath.Join(dir, "flowers.db"),
		"-log-level", "error",
		"-env", "production",
	}
}

func TestContainer_ResolvesServices(t *testing.T) {
	injector := NewContainer(testArgs(t))
	t.Cleanup(func() { _ = injector.Shutdown() })

	cfg := do.MustInvoke[*config.Config](injector)
	assert.Equal(t, "production", cfg.App.Environment)

	storeHandle := do.MustInvoke[*providers.StoreHandle](injector)
	require.NoError(t, storeHandle.Ping(t.Context()))

	people := do.MustInvoke[*service.PersonService](injector)
	created, err := people.Create(t.Context(), "Alice", []string{"Rose"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", created.Name)

	limiter := do.MustInvoke[*providers.WriteLimiterHandle](injector)
	assert.NotNil(t, limiter.Limiter)
}

func TestContainer_WriteLimiterDisabled(t *testing.T) {
	injector := NewContainer(append(testArgs(t), "-write-rate", "0"))
	t.Cleanup(func() { _ = injector.Shutdown() })

	limiter := do.MustInvoke[*providers.WriteLimiterHandle](injector)
	assert.Nil(t, limiter.Limiter)
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	injector := NewContainer(append(testArgs(t), "-port", "0"))
	t.Cleanup(func() { _ = injector.Shutdown() })

	err := Bootstrap(injector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}
