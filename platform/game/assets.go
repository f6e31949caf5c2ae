package game

import (
	"github.com/lkaiyu/richman-backend/app/models"
)

// CalculateRent returns the rent owed on a tile: base rent tripled per
// upgrade level. A mortgaged property yields nothing.
func CalculateRent(tile models.Tile) int {
	if tile.BaseRent == 0 || tile.IsMortgaged {
		return 0
	}
	rent := tile.BaseRent
	for i := 0; i < tile.Level; i++ {
		rent *= 3
	}
	return rent
}

// sellValue is what selling a property yields right now: 80% of the
// level-scaled price, minus the redemption cost if it is mortgaged.
func sellValue(tile models.Tile) int {
	value := tile.Price * (1 + tile.Level)
	price := value * 8 / 10
	if tile.IsMortgaged {
		price -= tile.Price * 6 / 10
		if price < 0 {
			price = 0
		}
	}
	return price
}

// BuyProperty debits the price and assigns ownership. A no-op unless the
// tile is an unowned property the player can afford.
func BuyProperty(g *models.GameState, tileId int, playerId string) {
	ti := tileIndex(g, tileId)
	pi := playerIndex(g, playerId)
	tile := &g.Tiles[ti]
	player := &g.Players[pi]

	if tile.Type != models.TileProperty || tile.OwnerId != "" || player.Money < tile.Price {
		g.WaitingForAction = false
		return
	}

	player.Money -= tile.Price
	AddMoneyEffect(g, -tile.Price, player.Position)
	tile.OwnerId = player.Id
	appendLog(g, "🏠 %s bought %s", player.Name, tile.Name)
	g.WaitingForAction = false
}

// UpgradeProperty raises the level by one for a flat cost equal to the base
// price. Mortgaged or maxed-out properties cannot be upgraded.
func UpgradeProperty(g *models.GameState, tileId int, playerId string) {
	ti := tileIndex(g, tileId)
	pi := playerIndex(g, playerId)
	tile := &g.Tiles[ti]
	player := &g.Players[pi]

	if tile.OwnerId != playerId || tile.Level >= models.MaxLevel || tile.IsMortgaged || player.Money < tile.Price {
		g.WaitingForAction = false
		return
	}

	player.Money -= tile.Price
	AddMoneyEffect(g, -tile.Price, player.Position)
	tile.Level++
	appendLog(g, "🔨 %s upgraded %s to level %d", player.Name, tile.Name, tile.Level)
	g.WaitingForAction = false
}

// SellProperty liquidates a property back to the bank and resets it to an
// unowned, unimproved, unmortgaged state.
func SellProperty(g *models.GameState, tileId int, playerId string) {
	ti := tileIndex(g, tileId)
	pi := playerIndex(g, playerId)
	tile := &g.Tiles[ti]
	player := &g.Players[pi]

	if tile.OwnerId != playerId {
		return
	}

	price := sellValue(*tile)
	player.Money += price
	AddMoneyEffect(g, price, player.Position)

	tile.OwnerId = ""
	tile.Level = 0
	tile.IsMortgaged = false
	appendLog(g, "💰 %s sold %s for $%d", player.Name, tile.Name, price)
}

// MortgageProperty trades future rent for half the base price in cash.
func MortgageProperty(g *models.GameState, tileId int, playerId string) {
	ti := tileIndex(g, tileId)
	pi := playerIndex(g, playerId)
	tile := &g.Tiles[ti]
	player := &g.Players[pi]

	if tile.OwnerId != playerId || tile.IsMortgaged {
		return
	}

	value := tile.Price * 5 / 10
	player.Money += value
	AddMoneyEffect(g, value, player.Position)
	tile.IsMortgaged = true
	appendLog(g, "📝 %s mortgaged %s for $%d", player.Name, tile.Name, value)
}

// RedeemProperty lifts a mortgage at 60% of the base price (10% interest
// over the mortgage value).
func RedeemProperty(g *models.GameState, tileId int, playerId string) {
	ti := tileIndex(g, tileId)
	pi := playerIndex(g, playerId)
	tile := &g.Tiles[ti]
	player := &g.Players[pi]

	cost := tile.Price * 6 / 10
	if tile.OwnerId != playerId || !tile.IsMortgaged || player.Money < cost {
		return
	}

	player.Money -= cost
	AddMoneyEffect(g, -cost, player.Position)
	tile.IsMortgaged = false
	appendLog(g, "🔓 %s redeemed %s for $%d", player.Name, tile.Name, cost)
}

// SkipAction declines a pending buy/upgrade decision.
func SkipAction(g *models.GameState) {
	if !g.WaitingForAction {
		return
	}
	g.WaitingForAction = false
	appendLog(g, "⏩ %s passed", g.Players[g.CurrentPlayerIndex].Name)
}
