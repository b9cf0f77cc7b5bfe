package guide_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourmuse/internal/repositories"
	"tourmuse/internal/services"
)

var Module = fx.Provide(provideGuideRepo, provideGuideService)

func provideGuideRepo(db *gorm.DB) repositories.GuideRepository {
	return repositories.NewGuideRepository(db)
}

func provideGuideService(guideRepo repositories.GuideRepository) services.GuideServiceInterface {
	return services.NewGuideService(guideRepo)
}
