// Package catalog holds the immutable reference data for all crop, animal
// and tool kinds plus the player level thresholds. Pure data: lookups only,
// no mutation. Callers must validate kind names here before constructing
// entities.
package catalog

import (
	"fmt"
	"strings"

	"github.com/mossvale/farmstead/internal/domain"
)

// CropKind describes one plantable crop.
type CropKind struct {
	Name         string
	GrowthTime   int // growth stage count to maturity
	DaysPerStage int
	SellPrice    int
	SeedPrice    int
	ExpReward    int
}

// SeedName returns the inventory item name of this crop's seed.
func (c CropKind) SeedName() string {
	return c.Name + domain.SeedSuffix
}

// AnimalKind describes one purchasable animal.
type AnimalKind struct {
	Name          string
	Product       string
	DaysToProduce int
	ProductPrice  int
	PurchasePrice int
	ExpReward     int
	FeedName      string
	FeedPrice     int
}

// ToolKind describes one tool. UpgradeCosts[i] is the cost of upgrading
// from level i+1; EfficiencyByLevel is indexed by level-1 and its length is
// the max level.
type ToolKind struct {
	Name              string
	MaxDurability     int
	UpgradeCosts      []int
	EfficiencyByLevel []float64
}

// MaxLevel is the highest level this tool kind can reach.
func (t ToolKind) MaxLevel() int {
	return len(t.EfficiencyByLevel)
}

// UpgradeCost returns the money cost of upgrading from the given level, or
// an error when the tool is already at max level.
func (t ToolKind) UpgradeCost(level int) (int, error) {
	if level < 1 || level >= t.MaxLevel() {
		return 0, fmt.Errorf("%w: %s at level %d", domain.ErrToolMaxLevel, t.Name, level)
	}
	return t.UpgradeCosts[level-1], nil
}

// Efficiency returns the work multiplier at the given level.
func (t ToolKind) Efficiency(level int) float64 {
	if level < 1 || level > t.MaxLevel() {
		return 1.0
	}
	return t.EfficiencyByLevel[level-1]
}

var crops = map[string]CropKind{
	"小麦":  {Name: "小麦", GrowthTime: 4, DaysPerStage: 1, SellPrice: 25, SeedPrice: 10, ExpReward: 5},
	"番茄":  {Name: "番茄", GrowthTime: 5, DaysPerStage: 1, SellPrice: 40, SeedPrice: 20, ExpReward: 10},
	"胡萝卜": {Name: "胡萝卜", GrowthTime: 3, DaysPerStage: 1, SellPrice: 30, SeedPrice: 15, ExpReward: 7},
	"土豆":  {Name: "土豆", GrowthTime: 6, DaysPerStage: 1, SellPrice: 60, SeedPrice: 30, ExpReward: 15},
}

var animals = map[string]AnimalKind{
	"牛": {Name: "牛", Product: "牛奶", DaysToProduce: 2, ProductPrice: 120, PurchasePrice: 1500, ExpReward: 20, FeedName: "牛饲料", FeedPrice: 50},
	"羊": {Name: "羊", Product: "羊毛", DaysToProduce: 3, ProductPrice: 150, PurchasePrice: 2000, ExpReward: 25, FeedName: "羊饲料", FeedPrice: 60},
	"鸡": {Name: "鸡", Product: "鸡蛋", DaysToProduce: 1, ProductPrice: 50, PurchasePrice: 800, ExpReward: 10, FeedName: "鸡饲料", FeedPrice: 30},
}

var tools = map[string]ToolKind{
	"锄头": {Name: "锄头", MaxDurability: 100, UpgradeCosts: []int{500, 1500, 3000}, EfficiencyByLevel: []float64{1, 1.2, 1.5, 2.0}},
	"水壶": {Name: "水壶", MaxDurability: 150, UpgradeCosts: []int{400, 1200, 2500}, EfficiencyByLevel: []float64{1, 1.3, 1.6, 2.0}},
	"镰刀": {Name: "镰刀", MaxDurability: 120, UpgradeCosts: []int{450, 1300, 2800}, EfficiencyByLevel: []float64{1, 1.2, 1.5, 1.8}},
}

// levelExpRequirements[i] is the total experience required to hold level
// i+1. Strictly increasing.
var levelExpRequirements = []int{0, 100, 300, 600, 1000, 1500, 2100, 2800, 3600, 4500}

// Tool kinds used by farm actions.
const (
	ToolHoe         = "锄头"
	ToolWateringCan = "水壶"
	ToolSickle      = "镰刀"
)

// Crop looks up a crop kind by name.
func Crop(name string) (CropKind, error) {
	c, ok := crops[name]
	if !ok {
		return CropKind{}, fmt.Errorf("%w: crop %q", domain.ErrUnknownKind, name)
	}
	return c, nil
}

// Animal looks up an animal kind by name.
func Animal(name string) (AnimalKind, error) {
	a, ok := animals[name]
	if !ok {
		return AnimalKind{}, fmt.Errorf("%w: animal %q", domain.ErrUnknownKind, name)
	}
	return a, nil
}

// Tool looks up a tool kind by name.
func Tool(name string) (ToolKind, error) {
	t, ok := tools[name]
	if !ok {
		return ToolKind{}, fmt.Errorf("%w: tool %q", domain.ErrUnknownKind, name)
	}
	return t, nil
}

// Crops returns all crop kinds.
func Crops() []CropKind {
	out := make([]CropKind, 0, len(crops))
	for _, c := range crops {
		out = append(out, c)
	}
	return out
}

// Animals returns all animal kinds.
func Animals() []AnimalKind {
	out := make([]AnimalKind, 0, len(animals))
	for _, a := range animals {
		out = append(out, a)
	}
	return out
}

// Tools returns all tool kinds.
func Tools() []ToolKind {
	out := make([]ToolKind, 0, len(tools))
	for _, t := range tools {
		out = append(out, t)
	}
	return out
}

// CropForSeed resolves a seed item name ("小麦种子") to its crop kind.
func CropForSeed(seedName string) (CropKind, error) {
	kind := strings.TrimSuffix(seedName, domain.SeedSuffix)
	if kind == seedName {
		return CropKind{}, fmt.Errorf("%w: seed %q", domain.ErrUnknownKind, seedName)
	}
	return Crop(kind)
}

// AnimalForFeed resolves a feed item name to the animal kind it feeds.
func AnimalForFeed(feedName string) (AnimalKind, error) {
	for _, a := range animals {
		if a.FeedName == feedName {
			return a, nil
		}
	}
	return AnimalKind{}, fmt.Errorf("%w: feed %q", domain.ErrUnknownKind, feedName)
}

// AnimalForProduct resolves a product name ("牛奶") to its animal kind.
func AnimalForProduct(product string) (AnimalKind, error) {
	for _, a := range animals {
		if a.Product == product {
			return a, nil
		}
	}
	return AnimalKind{}, fmt.Errorf("%w: product %q", domain.ErrUnknownKind, product)
}

// MaxPlayerLevel is the highest reachable player level.
func MaxPlayerLevel() int {
	return len(levelExpRequirements)
}

// ExpForLevel returns the total experience required to hold the given
// level. Level 1 requires 0.
func ExpForLevel(level int) (int, error) {
	if level < 1 || level > len(levelExpRequirements) {
		return 0, fmt.Errorf("%w: level %d", domain.ErrInvalidInput, level)
	}
	return levelExpRequirements[level-1], nil
}

// CanLevelUp reports whether a player at the given level and experience
// qualifies for the next level.
func CanLevelUp(level, exp int) bool {
	if level < 1 || level >= len(levelExpRequirements) {
		return false
	}
	return exp >= levelExpRequirements[level]
}
