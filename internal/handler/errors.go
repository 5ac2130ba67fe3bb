package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Player operation error messages
	ErrMsgCreatePlayerFailed = "Failed to create player"
	ErrMsgGetPlayerFailed    = "Failed to get player"
	ErrMsgDeletePlayerFailed = "Failed to delete player"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgGetToolsFailed     = "Failed to get tools"
	ErrMsgEatFoodFailed      = "Failed to eat food"

	// Farm operation error messages
	ErrMsgGetFarmFailed  = "Failed to get farm"
	ErrMsgGetCropsFailed = "Failed to get crops"
	ErrMsgTillFailed     = "Failed to till"
	ErrMsgPlantFailed    = "Failed to plant"
	ErrMsgWaterFailed    = "Failed to water"
	ErrMsgHarvestFailed  = "Failed to harvest"

	// Livestock operation error messages
	ErrMsgGetAnimalsFailed = "Failed to get animals"
	ErrMsgFeedFailed       = "Failed to feed animal"
	ErrMsgCollectFailed    = "Failed to collect product"
	ErrMsgMoveFailed       = "Failed to move animal"

	// Market operation error messages
	ErrMsgBuyItemFailed     = "Failed to buy item"
	ErrMsgSellItemFailed    = "Failed to sell item"
	ErrMsgUpgradeToolFailed = "Failed to upgrade tool"
	ErrMsgGetSalesFailed    = "Failed to get sales history"

	// World operation error messages
	ErrMsgAdvanceFailed = "Failed to advance clock"
	ErrMsgEndDayFailed  = "Failed to end day"
)
