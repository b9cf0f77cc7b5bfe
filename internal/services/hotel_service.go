package services

import (
	"context"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	dbm "tourmuse/internal/models/db_models"
	req "tourmuse/internal/models/request_models"
	"tourmuse/internal/repositories"
	"tourmuse/pkg/logger"
	"tourmuse/pkg/utils"
)

type HotelServiceInterface interface {
	Search(ctx context.Context, request req.HotelSearchRequest) ([]dbm.Hotel, error)
}

type HotelService struct {
	hotels repositories.HotelRepository
	cache  *gocache.Cache
}

func NewHotelService(hotels repositories.HotelRepository) HotelServiceInterface {
	return &HotelService{
		hotels: hotels,
		cache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

const hotelsCacheKey = "hotels:all"

func (s *HotelService) catalog(ctx context.Context) ([]dbm.Hotel, error) {
	if cached, ok := s.cache.Get(hotelsCacheKey); ok {
		return cached.([]dbm.Hotel), nil
	}

	hotels, err := s.hotels.All(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("failed to load hotel catalog")
		return nil, utils.ErrDatabaseError
	}
	s.cache.Set(hotelsCacheKey, hotels, gocache.DefaultExpiration)
	return hotels, nil
}

// Search is a single-pass filter over the catalog followed by one sort. All
// filter clauses are conjunctive; required amenities must every one be
// present on the hotel.
func (s *HotelService) Search(ctx context.Context, request req.HotelSearchRequest) ([]dbm.Hotel, error) {
	if request.Tier != "" && !dbm.HotelTier(request.Tier).Valid() {
		return nil, utils.ErrInvalidTier
	}

	hotels, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(request.Query))

	filtered := lo.Filter(hotels, func(h dbm.Hotel, _ int) bool {
		if request.Tier != "" && h.Tier != dbm.HotelTier(request.Tier) {
			return false
		}
		if request.MinPrice > 0 && h.PricePerNight < request.MinPrice {
			return false
		}
		if request.MaxPrice > 0 && h.PricePerNight > request.MaxPrice {
			return false
		}
		if request.EcoOnly && !h.EcoCertified {
			return false
		}
		if len(request.Amenities) > 0 {
			available := lo.Map([]string(h.Amenities), func(a string, _ int) string {
				return strings.ToLower(a)
			})
			ok := lo.EveryBy(request.Amenities, func(want string) bool {
				return lo.Contains(available, strings.ToLower(want))
			})
			if !ok {
				return false
			}
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(h.Name), query) &&
			!strings.Contains(strings.ToLower(h.Location), query) {
			return false
		}
		return true
	})

	switch request.SortBy {
	case "rating":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case "name":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	default: // price ascending
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PricePerNight < filtered[j].PricePerNight
		})
	}

	return filtered, nil
}
