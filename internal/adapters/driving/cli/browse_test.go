package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

func TestBrowseCmd_Flags(t *testing.T) {
	city := browseCmd.Flags().Lookup("city")
	require.NotNil(t, city)
	assert.Equal(t, "c", city.Shorthand)
	assert.NotNil(t, browseCmd.Flags().Lookup("month"))
	assert.NotNil(t, browseCmd.Flags().Lookup("day"))
	assert.Equal(t, "false", browseCmd.Flags().Lookup("watch").DefValue)
}

func TestBrowseCmd_RequiresTerminal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "browse", "--city", "chicago")

	assert.ErrorIs(t, err, errNotTerminal)
}

func TestBrowseCmd_ValidatesSelectionFirst(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "browse", "--city", "chicago", "--day", "funday")

	assert.ErrorIs(t, err, domain.ErrUnknownDay)
}

func TestBrowseCmd_WithoutServices(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "", "browse", "--city", "chicago")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset service not configured")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))
}
