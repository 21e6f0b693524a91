package config

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/storybox/internal/story"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
			return story.Genre(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			return story.Mood(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
			return story.Language(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
