package validation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pawhaven/internal/domain"
	"pawhaven/internal/pkg/validation"
)

func validInput() domain.CreateAdoptionRequestInput {
	return domain.CreateAdoptionRequestInput{
		PetID:             uuid.New(),
		FullName:          "Jamie Doe",
		CitizenshipNumber: "12-345",
		PhoneNumber:       "555-0101",
		Email:             "jamie@example.com",
		HomeAddress:       "1 Shelter Lane",
		Reason:            "big yard",
		Date:              time.Now(),
	}
}

func TestStruct_AcceptsValidInput(t *testing.T) {
	assert.NoError(t, validation.Struct(validInput()))
}

func TestStruct_ReportsFirstFailure(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.CreateAdoptionRequestInput)
		message string
	}{
		{
			"missing pet",
			func(in *domain.CreateAdoptionRequestInput) { in.PetID = uuid.Nil },
			"petid is required",
		},
		{
			"missing name",
			func(in *domain.CreateAdoptionRequestInput) { in.FullName = "" },
			"fullname is required",
		},
		{
			"bad email",
			func(in *domain.CreateAdoptionRequestInput) { in.Email = "not-an-email" },
			"email must be a valid email address",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			err := validation.Struct(in)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}
