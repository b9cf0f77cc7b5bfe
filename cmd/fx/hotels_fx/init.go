package hotels_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourmuse/internal/repositories"
	"tourmuse/internal/services"
)

var Module = fx.Provide(provideHotelRepo, provideHotelService)

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideHotelService(hotelRepo repositories.HotelRepository) services.HotelServiceInterface {
	return services.NewHotelService(hotelRepo)
}
