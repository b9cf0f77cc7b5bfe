package trips_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"tourmuse/internal/repositories"
	"tourmuse/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *mongo.Database) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, itineraries services.ItineraryServiceInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo, itineraries)
}
