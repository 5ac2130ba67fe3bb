package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgUnknownKind = "unknown kind"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Zoning errors
	ErrMsgInvalidZone = "outside required zone"

	// Tile errors
	ErrMsgTileOccupied  = "tile is occupied"
	ErrMsgTileNotTilled = "tile is not tilled"
	ErrMsgOutOfBounds   = "position outside farm"

	// Crop errors
	ErrMsgCropNotFound    = "crop not found"
	ErrMsgAlreadyWatered  = "already watered"
	ErrMsgCropMature      = "crop is fully grown"
	ErrMsgCropNotMature   = "crop is not fully grown"

	// Animal errors
	ErrMsgAnimalNotFound = "animal not found"
	ErrMsgAlreadyFed     = "already fed today"
	ErrMsgWrongFeed      = "wrong feed for this animal"
	ErrMsgNotProducible  = "nothing to collect yet"
	ErrMsgBlocked        = "destination is blocked"

	// Tool errors
	ErrMsgToolNotFound = "tool not found"
	ErrMsgToolDepleted = "tool durability depleted"
	ErrMsgToolMaxLevel = "tool already at max level"

	// Resource errors
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgInsufficientEnergy   = "insufficient energy"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgNotSellable          = "item is not sellable"
	ErrMsgNotBuyable           = "item is not buyable"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgPersistence = "persistence failure"
	ErrMsgTxClosed    = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrUnknownKind = errors.New(ErrMsgUnknownKind)

	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Zoning errors
	ErrInvalidZone = errors.New(ErrMsgInvalidZone)

	// Tile errors
	ErrTileOccupied  = errors.New(ErrMsgTileOccupied)
	ErrTileNotTilled = errors.New(ErrMsgTileNotTilled)
	ErrOutOfBounds   = errors.New(ErrMsgOutOfBounds)

	// Crop errors
	ErrCropNotFound   = errors.New(ErrMsgCropNotFound)
	ErrAlreadyWatered = errors.New(ErrMsgAlreadyWatered)
	ErrCropMature     = errors.New(ErrMsgCropMature)
	ErrCropNotMature  = errors.New(ErrMsgCropNotMature)

	// Animal errors
	ErrAnimalNotFound = errors.New(ErrMsgAnimalNotFound)
	ErrAlreadyFed     = errors.New(ErrMsgAlreadyFed)
	ErrWrongFeed      = errors.New(ErrMsgWrongFeed)
	ErrNotProducible  = errors.New(ErrMsgNotProducible)
	ErrBlocked        = errors.New(ErrMsgBlocked)

	// Tool errors
	ErrToolNotFound = errors.New(ErrMsgToolNotFound)
	ErrToolDepleted = errors.New(ErrMsgToolDepleted)
	ErrToolMaxLevel = errors.New(ErrMsgToolMaxLevel)

	// Resource errors
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientEnergy   = errors.New(ErrMsgInsufficientEnergy)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrNotSellable          = errors.New(ErrMsgNotSellable)
	ErrNotBuyable           = errors.New(ErrMsgNotBuyable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrPersistence = errors.New(ErrMsgPersistence)
)
