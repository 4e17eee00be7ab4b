package handler

import "pawhaven/internal/service"

type Handlers struct {
	Pet          *PetHandler
	Adoption     *AdoptionHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Pet:          NewPetHandler(services.Pet),
		Adoption:     NewAdoptionHandler(services.Adoption),
		Notification: NewNotificationHandler(services.Notification),
	}
}
