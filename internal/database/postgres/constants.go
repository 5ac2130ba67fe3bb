package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgInvalidPlayerID      = "invalid player id"
	ErrMsgFailedToInsertPlayer = "failed to insert player"
	ErrMsgFailedToUpdatePlayer = "failed to update player"
	ErrMsgFailedToGetPlayer    = "failed to get player"
	ErrMsgFailedToDeletePlayer = "failed to delete player"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetInventory = "failed to get inventory"
	ErrMsgFailedToGetItem      = "failed to get item"
	ErrMsgFailedToUpsertItem   = "failed to upsert item"
	ErrMsgFailedToRemoveItem   = "failed to remove item"
)

// Error Messages - Crop Operations
const (
	ErrMsgFailedToInsertCrop = "failed to insert crop"
	ErrMsgFailedToGetCrops   = "failed to get crops"
	ErrMsgFailedToGetCrop    = "failed to get crop"
	ErrMsgFailedToUpdateCrop = "failed to update crop"
	ErrMsgFailedToDeleteCrop = "failed to delete crop"
)

// Error Messages - Animal Operations
const (
	ErrMsgFailedToInsertAnimal = "failed to insert animal"
	ErrMsgFailedToGetAnimals   = "failed to get animals"
	ErrMsgFailedToGetAnimal    = "failed to get animal"
	ErrMsgFailedToUpdateAnimal = "failed to update animal"
	ErrMsgFailedToDeleteAnimal = "failed to delete animal"
)

// Error Messages - Tool Operations
const (
	ErrMsgFailedToInsertTool = "failed to insert tool"
	ErrMsgFailedToGetTools   = "failed to get tools"
	ErrMsgFailedToGetTool    = "failed to get tool"
	ErrMsgFailedToUpdateTool = "failed to update tool"
)

// Error Messages - Area Operations
const (
	ErrMsgFailedToInsertArea = "failed to insert area"
	ErrMsgFailedToGetAreas   = "failed to get areas"
)

// Error Messages - Tilled Land Operations
const (
	ErrMsgFailedToGetTilledLand   = "failed to get tilled land"
	ErrMsgFailedToSaveTilledLand  = "failed to save tilled land"
	ErrMsgFailedToAddTilledTile   = "failed to add tilled tile"
	ErrMsgFailedToClearTilledTile = "failed to clear tilled tile"
)

// Error Messages - Sales Operations
const (
	ErrMsgFailedToInsertSale = "failed to insert sale"
	ErrMsgFailedToGetSales   = "failed to get sales"
	ErrMsgFailedToPruneSales = "failed to prune sales"
)
