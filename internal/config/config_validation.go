package config

import (
	"github.com/alexisbeaulieu97/storybox/internal/story"
	storyerrors "github.com/alexisbeaulieu97/storybox/pkg/errors"
)

// ValidateConfig performs structural validation on the loaded configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return storyerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// ValidateRequest checks a story request before it is submitted: the idea must
// be non-blank and every selection must be one of the fixed options.
func ValidateRequest(req story.Request) error {
	if err := validatorInstance().Struct(req); err != nil {
		return convertValidationError(err)
	}

	return nil
}
