// Package world runs the game clock: the in-day timer and the end of
// day turnover that grows crops, ages livestock and rolls the weather.
package world

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mossvale/farmstead/internal/animal"
	"github.com/mossvale/farmstead/internal/catalog"
	"github.com/mossvale/farmstead/internal/concurrency"
	"github.com/mossvale/farmstead/internal/crop"
	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/event"
	"github.com/mossvale/farmstead/internal/logger"
	"github.com/mossvale/farmstead/internal/repository"
	"github.com/mossvale/farmstead/internal/utils"
)

// ClockState is the in-day clock for one player. Minutes reset when the
// day turns over.
type ClockState struct {
	Day     int  `json:"day"`
	Minutes int  `json:"minutes"`
	DayOver bool `json:"day_over"`
}

// DayResult contains the outcome of an end of day turnover
type DayResult struct {
	Day        int            `json:"day"`
	Weather    domain.Weather `json:"weather"`
	Energy     int            `json:"energy"`
	CropsGrown int            `json:"crops_grown"`
	AnimalsFed int            `json:"animals_fed"`
}

// Service defines the interface for world clock operations
type Service interface {
	Advance(ctx context.Context, playerID string, minutes int) (*ClockState, error)
	EndDay(ctx context.Context, playerID string) (*DayResult, error)
}

type service struct {
	repo  repository.World
	bus   event.Bus
	locks *concurrency.LockManager
	rand  func() float64
	now   func() time.Time

	mu     sync.Mutex
	clocks map[string]int
}

// NewService creates a new world service
func NewService(repo repository.World, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:   repo,
		bus:    bus,
		locks:  locks,
		rand:   utils.RandomFloat,
		now:    time.Now,
		clocks: make(map[string]int),
	}
}

// Advance moves the player's in-day clock forward. Crossing the day
// length triggers the end of day turnover and resets the clock.
func (s *service) Advance(ctx context.Context, playerID string, minutes int) (*ClockState, error) {
	if minutes <= 0 {
		return nil, fmt.Errorf("%w: minutes must be positive", domain.ErrInvalidInput)
	}

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	elapsed := s.clocks[playerID] + minutes
	dayOver := elapsed >= domain.DayLength
	if dayOver {
		elapsed = 0
	}
	s.clocks[playerID] = elapsed
	s.mu.Unlock()

	state := &ClockState{Day: player.Day, Minutes: elapsed, DayOver: dayOver}
	if dayOver {
		result, err := s.EndDay(ctx, playerID)
		if err != nil {
			return nil, err
		}
		state.Day = result.Day
	}
	return state, nil
}

// EndDay performs the nightly turnover. Order matters: rain waters the
// fields before growth, growth consumes water, and the freshly rolled
// weather waters the fields again for the morning.
func (s *service) EndDay(ctx context.Context, playerID string) (*DayResult, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	crops, err := s.repo.GetCrops(ctx, playerID)
	if err != nil {
		return nil, err
	}
	animals, err := s.repo.GetAnimals(ctx, playerID)
	if err != nil {
		return nil, err
	}
	tilled, err := s.repo.GetTilledLand(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.Weather == domain.WeatherRainy {
		waterAll(crops, tilled)
	}

	grown := growCrops(crops, tilled)
	fed := ageUpAnimals(animals, s.now())

	energy := player.MaxEnergy
	oldWeather := player.Weather
	weather := domain.WeatherSunny
	if s.rand() < domain.RainChance {
		weather = domain.WeatherRainy
	}
	if weather == domain.WeatherRainy {
		waterAll(crops, tilled)
	}
	day := player.Day + 1

	tx, err := s.repo.BeginWorldTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	patch := domain.PlayerPatch{Day: &day, Weather: &weather, Energy: &energy}
	if err := tx.UpdatePlayer(ctx, playerID, patch); err != nil {
		return nil, err
	}
	for i := range crops {
		c := crops[i]
		if err := tx.UpdateCrop(ctx, c.ID, domain.CropPatch{GrowthStage: &crops[i].GrowthStage, IsWatered: &crops[i].IsWatered}); err != nil {
			return nil, err
		}
	}
	for i := range animals {
		a := &animals[i]
		if !a.IsFed {
			continue
		}
		fedState := false
		if err := tx.UpdateAnimal(ctx, a.ID, domain.AnimalPatch{
			Age:         &a.Age,
			IsFed:       &fedState,
			ProduceTime: &a.ProduceTime,
		}); err != nil {
			return nil, err
		}
	}
	if err := tx.SaveTilledLand(ctx, playerID, tilled); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.NewDayEndedEvent(playerID, day, string(weather))); err != nil {
		log.Warn("Failed to publish day ended event", "error", err)
	}
	if weather != oldWeather {
		if err := s.bus.Publish(ctx, event.NewWeatherChangedEvent(playerID, string(oldWeather), string(weather), day)); err != nil {
			log.Warn("Failed to publish weather event", "error", err)
		}
	}

	log.Info("Day ended", "player_id", playerID, "day", day, "weather", weather,
		"crops_grown", grown, "animals_fed", fed)
	return &DayResult{
		Day:        day,
		Weather:    weather,
		Energy:     energy,
		CropsGrown: grown,
		AnimalsFed: fed,
	}, nil
}

// waterAll marks every crop and every tilled tile as watered.
func waterAll(crops []domain.Crop, tilled []domain.TilledTile) {
	for i := range crops {
		crops[i].IsWatered = true
	}
	for i := range tilled {
		tilled[i].Watered = true
	}
}

// growCrops advances every watered, unfinished crop one stage. Growth
// consumes the water on crops and bare tilled ground alike.
func growCrops(crops []domain.Crop, tilled []domain.TilledTile) int {
	grown := 0
	for i := range crops {
		c := &crops[i]
		kind, err := catalog.Crop(c.Kind)
		if err != nil {
			continue
		}
		if c.IsWatered && !crop.IsMature(*c, kind) {
			c.GrowthStage++
			grown++
		}
		c.IsWatered = false
	}
	for i := range tilled {
		tilled[i].Watered = false
	}
	return grown
}

// ageUpAnimals ages every fed animal and rewinds its produce timer to
// now minus the kind's production period, so a fed animal comes out of
// the night immediately ready to produce.
func ageUpAnimals(animals []domain.Animal, now time.Time) int {
	fed := 0
	for i := range animals {
		a := &animals[i]
		if !a.IsFed {
			continue
		}
		a.Age++
		if kind, err := catalog.Animal(a.Kind); err == nil {
			a.ProduceTime = now.Add(-time.Duration(kind.DaysToProduce) * animal.GameDay)
		}
		fed++
	}
	return fed
}
