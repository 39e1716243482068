package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("archetype", "is invalid")
	ve.AddFieldErrorf("attributes.VIG", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "archetype: is invalid")
	s.Assert().Contains(ve.Error(), "attributes.VIG: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("nex", "must be between %d and %d", 5, 99).
		RequiredField("archetype").
		InvalidField("origin", "not a known origin")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestMerge() {
	nested := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "", nested)
	errors.ValidateMin("quantity", 0, 1, nested)

	vb := errors.NewValidationBuilder()
	vb.Merge("inventory[2]", nested.Build())
	vb.Merge("inventory[3]", nil)
	vb.Merge("origin", errors.NotFound("origin not found"))

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"is required"}, validationErrors["inventory[2].name"])
	s.Assert().Equal([]string{"must be at least 1"}, validationErrors["inventory[2].quantity"])
	s.Assert().Equal([]string{"origin not found"}, validationErrors["origin"])
	s.Assert().NotContains(validationErrors, "inventory[3]")
}

func (s *ValidationTestSuite) TestErrorMessageIsSorted() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("player_id")
	vb.RequiredField("name")
	vb.RequiredField("archetype")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().Equal(
		"validation failed: archetype: is required; name: is required; player_id: is required",
		errors.GetMessage(err),
	)
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("attributes.FOR", 7, 1, 5, vb)
	errors.ValidateRange("attributes.AGI", 3, 1, 5, vb)
	errors.ValidateRange("hp", 0, 1, 100, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["attributes.FOR"][0], "must be between 1 and 5")
	s.Assert().Contains(validationErrors["hp"][0], "must be between 1 and 100")
	s.Assert().NotContains(validationErrors, "attributes.AGI")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedArchetypes := []string{"Combatente", "Especialista", "Ocultista"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("archetype", "Bardo", allowedArchetypes, vb)
	errors.ValidateEnum("fallback_archetype", "Especialista", allowedArchetypes, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["archetype"][0], "must be one of: Combatente, Especialista, Ocultista")
	s.Assert().NotContains(validationErrors, "fallback_archetype")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	// Simulate validating a character creation request
	type CharacterInput struct {
		Name       string
		Archetype  string
		Attributes map[string]int
	}

	input := CharacterInput{
		Name:      "",
		Archetype: "Bardo",
		Attributes: map[string]int{
			"FOR": 6,
			"AGI": 2,
			"VIG": 0,
		},
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", input.Name, vb)

	allowedArchetypes := []string{"Combatente", "Especialista", "Ocultista"}
	errors.ValidateEnum("archetype", input.Archetype, allowedArchetypes, vb)

	for attr, value := range input.Attributes {
		errors.ValidateRange("attributes."+attr, value, 1, 5, vb)
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "name")
	s.Assert().Contains(validationErrors, "archetype")
	s.Assert().Contains(validationErrors, "attributes.FOR")
	s.Assert().Contains(validationErrors, "attributes.VIG")
	s.Assert().NotContains(validationErrors, "attributes.AGI")
}
