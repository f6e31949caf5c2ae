package game

import (
	"math"
	"math/rand"
	"sort"

	"github.com/lkaiyu/richman-backend/app/models"
)

// AI cash reserves: the bot keeps working capital aside before redeeming
// mortgages or buying shares, and only buys lottery tickets above a buffer.
const (
	aiRedeemFloor   = 2000
	aiTradeFloor    = 3000
	aiLotteryBuffer = 500
)

// AIAutoRedeem lifts mortgages when idle cash allows, highest current rent
// first, always keeping max(aiRedeemFloor, 30% of cash) in reserve.
func AIAutoRedeem(g *models.GameState, playerId string) {
	pi := playerIndex(g, playerId)
	player := &g.Players[pi]
	if !player.IsAi || player.IsBankrupt {
		return
	}

	var mortgaged []models.Tile
	for _, t := range g.Tiles {
		if t.OwnerId == playerId && t.IsMortgaged {
			mortgaged = append(mortgaged, t)
		}
	}
	if len(mortgaged) == 0 {
		return
	}
	sort.Slice(mortgaged, func(i, j int) bool {
		// Sort by the rent the tile would earn once redeemed.
		ri, rj := mortgaged[i], mortgaged[j]
		ri.IsMortgaged, rj.IsMortgaged = false, false
		return CalculateRent(ri) > CalculateRent(rj)
	})

	for _, t := range mortgaged {
		cost := t.Price * 6 / 10
		reserve := aiRedeemFloor
		if r := player.Money * 3 / 10; r > reserve {
			reserve = r
		}
		if player.Money-cost >= reserve {
			RedeemProperty(g, t.Id, playerId)
		}
	}
}

// trend estimates price direction from the last few history points: the
// relative change between the averages of the older and newer halves.
func trend(history []int) float64 {
	if len(history) < 2 {
		return 0
	}
	recent := history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	mid := (len(recent) + 1) / 2
	first := avg(recent[:mid])
	second := avg(recent[len(recent)/2:])
	if first == 0 {
		return 0
	}
	return (second - first) / first
}

// costBasis is a rough holding-cost estimate: the mean of the whole price
// history.
func costBasis(history []int) float64 {
	if len(history) == 0 {
		return 0
	}
	return avg(history)
}

func avg(xs []int) float64 {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// AITradeStocks runs the bot's trading pass over every company: take profit
// above 15% (half the position when still trending up), bail on a clear
// downtrend or a 20% loss, and buy when the price looks cheap or stable,
// capped at 30% of cash per name and trimmed for volatile ones.
func AITradeStocks(g *models.GameState, playerId string, rng *rand.Rand) {
	pi := playerIndex(g, playerId)
	if !g.Players[pi].IsAi || g.Players[pi].IsBankrupt {
		return
	}

	player := &g.Players[pi]
	reserve := aiTradeFloor
	if r := player.Money * 4 / 10; r > reserve {
		reserve = r
	}

	for _, comp := range g.Companies {
		price := comp.Price
		tr := trend(comp.History)
		basis := costBasis(comp.History)
		held := player.Portfolio[comp.Id]
		heldValue := held * price

		if held > 0 && basis > 0 {
			profit := (float64(price) - basis) / basis
			shouldSell := profit > 0.15 || tr < -0.08 || profit < -0.20
			if shouldSell {
				toSell := held
				if profit > 0.15 && tr > 0 {
					toSell = (held + 1) / 2 // lock in half the profit
				}
				SellStock(g, playerId, comp.Id, toSell)
			}
		}

		available := player.Money - reserve
		if available <= price*5 {
			continue
		}
		isCheap := float64(price) < basis*0.95
		isTrendingUp := tr > 0 && tr < 0.15
		isStabilizing := math.Abs(tr) < 0.05
		notOverexposed := float64(heldValue) < float64(player.Money)*0.3
		if !notOverexposed || !(isCheap || isTrendingUp || isStabilizing) {
			continue
		}

		budget := float64(available) * (0.1 + rng.Float64()*0.1)
		shares := int(budget / float64(price))
		if comp.Volatility > 0.15 {
			shares = shares * 6 / 10
		}
		if shares >= 5 {
			BuyStock(g, playerId, comp.Id, shares)
		}
	}
}

// PlayAITurn drives one complete AI turn: portfolio upkeep, the jail/rest
// gate, the roll, stepwise movement, landing resolution, card
// acknowledgement, and turn completion.
func PlayAITurn(g *models.GameState, rng *rand.Rand) {
	if g.IsGameOver {
		return
	}
	player := &g.Players[g.CurrentPlayerIndex]
	if !player.IsAi || player.IsBankrupt {
		return
	}

	AIAutoRedeem(g, player.Id)
	AITradeStocks(g, player.Id, rng)

	if player.JailTurns > 0 && g.JailFreeCards[player.Id] > 0 {
		UseJailFreeCard(g, player.Id)
	}
	if !BeginRoll(g, rng) {
		return
	}

	steps := g.DiceValue[0] + g.DiceValue[1]
	for i := 0; i < steps; i++ {
		MoveOneStep(g)
	}
	HandleLanding(g, rng)
	if g.ActiveCard != nil {
		ApplyCardEffect(g, rng)
	}
	EndTurn(g, rng)
}
