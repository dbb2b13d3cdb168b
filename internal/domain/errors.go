package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgNotInInventory = "item is not in inventory"

	// Inventory errors
	ErrMsgInventoryFull = "inventory is full"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Battle errors
	ErrMsgInvalidAction     = "invalid action"
	ErrMsgUnknownRegion     = "unknown region"
	ErrMsgDistributionGap   = "draw fell outside every spawn interval"
	ErrMsgUnknownSpecies    = "unknown monster species"
	ErrMsgNoLocation        = "player has no location"
	ErrMsgMonsterSourceNil  = "random encounter requires a monster source"
	ErrMsgActionProviderNil = "battle requires an action provider"

	// Config errors
	ErrMsgInvalidConfig = "invalid configuration"

	// World errors
	ErrMsgLocationNotFound = "location not found"
	ErrMsgNoExit           = "no exit in that direction"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrNotInInventory = errors.New(ErrMsgNotInInventory)

	// Inventory errors
	ErrInventoryFull = errors.New(ErrMsgInventoryFull)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Battle errors
	ErrInvalidAction     = errors.New(ErrMsgInvalidAction)
	ErrUnknownRegion     = errors.New(ErrMsgUnknownRegion)
	ErrDistributionGap   = errors.New(ErrMsgDistributionGap)
	ErrUnknownSpecies    = errors.New(ErrMsgUnknownSpecies)
	ErrNoLocation        = errors.New(ErrMsgNoLocation)
	ErrMonsterSourceNil  = errors.New(ErrMsgMonsterSourceNil)
	ErrActionProviderNil = errors.New(ErrMsgActionProviderNil)

	// Config errors
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

	// World errors
	ErrLocationNotFound = errors.New(ErrMsgLocationNotFound)
	ErrNoExit           = errors.New(ErrMsgNoExit)
)
