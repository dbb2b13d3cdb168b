package console

// Prompts
const (
	CommandPrompt = "> "
	ActionPrompt  = "[fight/run] > "
)

// MaxLineLength caps one line of input in bytes, newline included
const MaxLineLength = 4096

// Player-facing text
const (
	MsgWelcome        = "Welcome to Middle-earth, %s. Type 'help' for a list of commands."
	MsgUnknownCommand = "Unknown command %q. Type 'help' for a list of commands."
	MsgLineTooLong    = "That is too long to make sense of."
	MsgUsage          = "Usage: %s"
	MsgFarewell       = "Farewell."
	MsgGameOver       = "Your journey ends here."
	MsgNoExit         = "You cannot go %s from here."
	MsgExits          = "Exits: %s"
	MsgNoExits        = "There is no way out."
	MsgOnGround       = "On the ground: %s"
	MsgTownHere       = "%s is here."
	MsgInnHere        = "Inn: %s (%s per night)"
	MsgShopHere       = "Shop: %s"
	MsgRegion         = "[%s]"
	MsgNotCarrying    = "You are not carrying %s."
	MsgNotHere        = "There is no %s here."
	MsgTaken          = "Taken: %s."
	MsgTooHeavy       = "%s is too heavy to carry."
	MsgLootLeft       = "%s is too heavy to carry; you leave it on the ground."
	MsgDropped        = "Dropped: %s."
	MsgEquipped       = "Equipped: %s."
	MsgCannotEquip    = "You cannot equip %s."
	MsgHealed         = "You recover %d hp."
	MsgNotPotion      = "You have no potion called %s."
	MsgNoInn          = "There is no inn here."
	MsgRested         = "You rest at %s and recover %d hp."
	MsgAlreadyRested  = "You are already fully rested."
	MsgNoShop         = "There is no shop here."
	MsgBought         = "You buy %s for %s."
	MsgSold           = "You sell %s for %s."
	MsgInventoryEmpty = "You are carrying nothing."
	MsgStockEmpty     = "%s has nothing for sale."
	MsgFled           = "You catch your breath in %s."
	MsgBattleLine     = "  %s (hp %d)"
	MsgRoundHeader    = "-- Round %d -- HP %d/%d"
)

// Log messages
const (
	LogMsgCommand      = "Console command"
	LogMsgMoved        = "Player moved"
	LogMsgGameEnded    = "Game ended"
	LogMsgBattleFailed = "Encounter failed"

	LogMsgStoryCompleted = "Scripted battles completed"
)
