package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionRequest tracks a requester's application for a specific pet.
// petName and petType are denormalized at submission time so the request
// survives later edits to the pet record.
type AdoptionRequest struct {
	ID                uuid.UUID      `json:"id" db:"id"`
	PetID             uuid.UUID      `json:"pet_id" db:"pet_id"`
	PetName           string         `json:"pet_name" db:"pet_name"`
	PetType           PetType        `json:"pet_type" db:"pet_type"`
	FullName          string         `json:"full_name" db:"full_name"`
	CitizenshipNumber string         `json:"citizenship_number" db:"citizenship_number"`
	PhoneNumber       string         `json:"phone_number" db:"phone_number"`
	Email             string         `json:"email" db:"email"`
	HomeAddress       string         `json:"home_address" db:"home_address"`
	Reason            string         `json:"reason" db:"reason"`
	Date              time.Time      `json:"date" db:"date"`
	Status            AdoptionStatus `json:"status" db:"status"`
	AdminMessage      string         `json:"admin_message" db:"admin_message"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`

	Pet *Pet `json:"pet,omitempty" db:"-"`
}

type AdoptionStatus string

const (
	AdoptionPending  AdoptionStatus = "pending"
	AdoptionApproved AdoptionStatus = "approved"
	AdoptionRejected AdoptionStatus = "rejected"
)

// Terminal reports whether the status is a decision an operator has made.
// Only terminal statuses are accepted by the decide endpoint.
func (s AdoptionStatus) Terminal() bool {
	return s == AdoptionApproved || s == AdoptionRejected
}

type CreateAdoptionRequestInput struct {
	PetID             uuid.UUID `json:"pet_id" validate:"required"`
	FullName          string    `json:"full_name" validate:"required,max=150"`
	CitizenshipNumber string    `json:"citizenship_number" validate:"required,max=50"`
	PhoneNumber       string    `json:"phone_number" validate:"required,max=30"`
	Email             string    `json:"email" validate:"required,email"`
	HomeAddress       string    `json:"home_address" validate:"required,max=300"`
	Reason            string    `json:"reason" validate:"required,max=2000"`
	Date              time.Time `json:"date"`
}

type DecideAdoptionInput struct {
	Status       string `json:"status" validate:"required"`
	AdminMessage string `json:"admin_message"`
}
