package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/memory"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
	assert.Equal(t, ":memory:", service.Path())
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults, *settings)
	assert.Equal(t, defaults, service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("data.dir", "/data/bikeshare")
	store.Set("datasets.new_york", "nyc.xlsx")
	store.Set("display.page_size", int64(10))

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "/data/bikeshare", settings.Data.Dir)
	assert.Equal(t, "nyc.xlsx", settings.Data.Files[domain.CityNewYork])
	assert.Equal(t, "chicago.csv", settings.Data.Files[domain.CityChicago])
	assert.Equal(t, 10, settings.Display.PageSize)
}

func TestSettingsService_WithDataDir_Overrides(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("data.dir", "/from/config")

	settings, err := NewSettingsService(store).WithDataDir("/from/flag").Get()

	require.NoError(t, err)
	assert.Equal(t, "/from/flag", settings.Data.Dir)
}

func TestSettingsService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr bool
	}{
		{"defaults are valid", nil, false},
		{"page size in range", map[string]any{"display.page_size": 25}, false},
		{"page size zero", map[string]any{"display.page_size": 0}, true},
		{"page size too large", map[string]any{"display.page_size": 500}, true},
		{"negative page size", map[string]any{"display.page_size": -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			for k, v := range tt.values {
				store.Set(k, v)
			}

			err := NewSettingsService(store).Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Contains(t, err.Error(), "PageSize")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsService_Validate_UnknownKeys(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("display.page_size", 10)
	store.Set("display.colour", true)
	store.Set("datasets.boston", "boston.csv")

	err := NewSettingsService(store).Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), `unknown setting "display.colour"`)
	assert.Contains(t, err.Error(), `unknown setting "datasets.boston"`)
	assert.NotContains(t, err.Error(), "page_size")
}

func TestSettingsService_Validate_ReportsAllProblems(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("display.page_size", 0)
	store.Set("colour", true)

	err := NewSettingsService(store).Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PageSize")
	assert.Contains(t, err.Error(), `unknown setting "colour"`)
}

func TestKnownKey(t *testing.T) {
	for _, key := range []string{"data.dir", "display.page_size", "datasets.chicago", "datasets.new_york", "datasets.washington"} {
		assert.True(t, knownKey(key), key)
	}
	for _, key := range []string{"datasets.new york", "datasets", "display", "data.directory"} {
		assert.False(t, knownKey(key), key)
	}
}
