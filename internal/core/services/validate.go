package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// validate runs the struct tags declared on domain types. The domain
// package stays dependency-free, so the validator lives here.
var validate = validator.New()

// validateSentence normalises a sentence in place and checks it
// against its struct tags. Violations map onto domain.ErrInvalidInput
// so callers never see validator internals.
func validateSentence(s *domain.Sentence) error {
	s.Normalise()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
