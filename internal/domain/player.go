package domain

import "time"

// Player is the persisted state of a single player.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Exp       int       `json:"exp"`
	Money     int       `json:"money"`
	Day       int       `json:"day"`
	Weather   Weather   `json:"weather"`
	Energy    int       `json:"energy"`
	MaxEnergy int       `json:"max_energy"`
	LastLogin time.Time `json:"last_login"`
}

// PlayerPatch lists the player fields a component may update. A nil field
// is left untouched by the persistence layer.
type PlayerPatch struct {
	Name      *string
	Level     *int
	Exp       *int
	Money     *int
	Day       *int
	Weather   *Weather
	Energy    *int
	LastLogin *time.Time
}
