package domain

// Farm dimensions, in tiles. All placement rules operate on tile
// coordinates; pixel conversion is a presentation concern.
const (
	FarmWidth  = 16
	FarmHeight = 12
)

// DayLength is the length of a game day in game minutes.
const DayLength = 24 * 60

// MaxEnergy is the energy ceiling for every player.
const MaxEnergy = 100

// Energy costs per action.
const (
	EnergyCostTill    = 2
	EnergyCostWater   = 1
	EnergyCostHarvest = 1
	EnergyCostFeed    = 1
)

// FoodEnergyRestore is how much energy eating one food item restores.
const FoodEnergyRestore = 20

// Weather is the day's weather. Exactly two values exist; the strings are
// persisted verbatim, so they must not change.
type Weather string

const (
	WeatherSunny Weather = "晴天"
	WeatherRainy Weather = "雨天"
)

// Valid reports whether w is one of the two known weather values.
func (w Weather) Valid() bool {
	return w == WeatherSunny || w == WeatherRainy
}

// RainChance is the probability that the next day is rainy.
const RainChance = 0.3

// ItemCategory classifies inventory items. At most one inventory record
// exists per (player, item name, category).
type ItemCategory string

const (
	CategorySeed    ItemCategory = "种子"
	CategoryCrop    ItemCategory = "作物"
	CategoryProduct ItemCategory = "动物产品"
	CategoryFeed    ItemCategory = "饲料"
	CategoryFood    ItemCategory = "食物"
)

// SeedSuffix is appended to a crop kind to form its seed item name.
const SeedSuffix = "种子"

// ToolShopPrice is the flat price of a replacement tool at the market.
const ToolShopPrice = 500
