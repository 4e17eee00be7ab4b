package domain

import (
	"time"

	"github.com/google/uuid"
)

type Pet struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Type             PetType   `json:"type" db:"type"`
	Age              int       `json:"age" db:"age"`
	Sex              PetSex    `json:"sex" db:"sex"`
	Breed            string    `json:"breed" db:"breed"`
	Location         string    `json:"location" db:"location"`
	ImageURL         string    `json:"image_url" db:"image_url"`
	OwnerPhoneNumber string    `json:"owner_phone_number" db:"owner_phone_number"`
	Description      string    `json:"description" db:"description"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

type PetType string

const (
	PetCat  PetType = "Cat"
	PetDog  PetType = "Dog"
	PetBird PetType = "Bird"
)

func (t PetType) Valid() bool {
	switch t {
	case PetCat, PetDog, PetBird:
		return true
	}
	return false
}

type PetSex string

const (
	PetMale   PetSex = "Male"
	PetFemale PetSex = "Female"
)

func (s PetSex) Valid() bool {
	return s == PetMale || s == PetFemale
}

type CreatePetInput struct {
	Name             string `json:"name" validate:"required,max=100"`
	Type             string `json:"type" validate:"required"`
	Age              int    `json:"age" validate:"gte=0"`
	Sex              string `json:"sex" validate:"required"`
	Breed            string `json:"breed"`
	Location         string `json:"location"`
	ImageURL         string `json:"image_url"`
	OwnerPhoneNumber string `json:"owner_phone_number"`
	Description      string `json:"description"`
}

// PetFilter narrows the catalog listing. Zero values mean "no constraint".
type PetFilter struct {
	Type   string `query:"type"`
	Sex    string `query:"sex"`
	MinAge *int   `query:"min_age"`
	MaxAge *int   `query:"max_age"`
	Search string `query:"search"`
}
