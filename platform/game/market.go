package game

import (
	"math/rand"

	"github.com/lkaiyu/richman-backend/app/models"
)

// priceFloor keeps every company strictly tradable.
const priceFloor = 10

const historySize = 10

// UpdatePrices runs one day of the market: every company takes an
// independent uniform step within its volatility band.
func UpdatePrices(g *models.GameState, rng *rand.Rand) {
	for i := range g.Companies {
		comp := &g.Companies[i]
		change := rng.Float64()*(comp.Volatility*2) - comp.Volatility
		next := int(float64(comp.Price) * (1 + change))
		if next < priceFloor {
			next = priceFloor
		}
		comp.Price = next
		comp.History = append(comp.History, next)
		if len(comp.History) > historySize {
			comp.History = comp.History[len(comp.History)-historySize:]
		}
	}
}

// BuyStock executes instantly at the current price. A no-op when the player
// cannot cover the cost.
func BuyStock(g *models.GameState, playerId string, companyId string, shares int) {
	pi := playerIndex(g, playerId)
	ci := companyIndex(g, companyId)
	player := &g.Players[pi]
	comp := g.Companies[ci]

	if shares <= 0 || player.Money < shares*comp.Price {
		return
	}

	cost := shares * comp.Price
	player.Money -= cost
	AddMoneyEffect(g, -cost, player.Position)
	player.Portfolio[companyId] += shares
	appendLog(g, "📉 %s bought %d shares of %s", player.Name, shares, comp.Name)
}

// SellStock executes instantly at the current price. A no-op when the player
// holds fewer shares than requested.
func SellStock(g *models.GameState, playerId string, companyId string, shares int) {
	pi := playerIndex(g, playerId)
	ci := companyIndex(g, companyId)
	player := &g.Players[pi]
	comp := g.Companies[ci]

	if shares <= 0 || player.Portfolio[companyId] < shares {
		return
	}

	proceeds := shares * comp.Price
	player.Money += proceeds
	AddMoneyEffect(g, proceeds, player.Position)
	player.Portfolio[companyId] -= shares
	appendLog(g, "📈 %s sold %d shares of %s", player.Name, shares, comp.Name)
}
