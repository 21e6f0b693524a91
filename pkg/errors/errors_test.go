package errors

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("idea", "must not be blank", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "idea", validationErr.Field)
	require.Contains(t, err.Error(), "idea: must not be blank")
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "request rejected", nil)
	require.Equal(t, "validation error: request rejected", err.Error())
}

func TestProviderErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("quota exceeded")
	err := NewProviderError("images", underlying)

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	require.Equal(t, "images", providerErr.Call)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[images]")
}

func TestStorageErrorIncludesPath(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewStorageError("write", "/tmp/preferences.yaml", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "write", storageErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "/tmp/preferences.yaml")
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var v *ValidationError
	var p *ProviderError
	var s *StorageError
	require.Empty(t, v.Error())
	require.Empty(t, p.Error())
	require.Empty(t, s.Error())
	require.Nil(t, v.Unwrap())
	require.Nil(t, p.Unwrap())
	require.Nil(t, s.Unwrap())
}
