package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Pet          PetRepository
	Adoption     AdoptionRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Pet:          NewPetRepository(db),
		Adoption:     NewAdoptionRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
