package game

import (
	"math/rand"

	"github.com/lkaiyu/richman-backend/app/models"
	"github.com/lkaiyu/richman-backend/platform/board"
)

// fateCards skews toward life events, chanceCards toward deals and
// speculation. Both mix good and bad entries and are drawn with replacement.
var fateCards = []models.EventCard{
	{Id: "fate_01", Title: "Lottery Windfall", Description: "Your scratch ticket hit! Collect $3000", Emoji: "🎰",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: 3000}, IsGood: true},
	{Id: "fate_02", Title: "Mystery Inheritance", Description: "A distant relative left you $2500", Emoji: "📜",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: 2500}, IsGood: true},
	{Id: "fate_03", Title: "Happy Birthday", Description: "It's your birthday! Every player gives you $500", Emoji: "🎂",
		Effect: models.CardEffect{Type: models.EffectBirthday, Value: 500}, IsGood: true},
	{Id: "fate_04", Title: "Stock Dividend", Description: "Your holdings pay $50 per share", Emoji: "📈",
		Effect: models.CardEffect{Type: models.EffectStockBonus, Value: 50}, IsGood: true},
	{Id: "fate_05", Title: "Time Warp", Description: "A mysterious force sends you to start. Collect your salary!", Emoji: "⚡",
		Effect: models.CardEffect{Type: models.EffectMoveTo, TargetPosition: 0}, IsGood: true},
	{Id: "fate_06", Title: "Free Vacation", Description: "A free trip to the parking corner for a rest", Emoji: "🏖️",
		Effect: models.CardEffect{Type: models.EffectMoveTo, TargetPosition: 14}, IsGood: true},
	{Id: "fate_07", Title: "Government Refund", Description: "A tax refund notice arrives, worth $1500", Emoji: "🏛️",
		Effect: models.CardEffect{Type: models.EffectTaxRefund, Value: 1500}, IsGood: true},
	{Id: "fate_08", Title: "Jail-Free Card", Description: "Keep this card to skip a jail sentence", Emoji: "🗝️",
		Effect: models.CardEffect{Type: models.EffectGetOutOfJail}, IsGood: true},
	{Id: "fate_09", Title: "Urban Renewal", Description: "A city project upgrades one of your properties for free!", Emoji: "🏗️",
		Effect: models.CardEffect{Type: models.EffectFreeUpgrade}, IsGood: true},
	{Id: "fate_10", Title: "Charity Gala", Description: "Every player donates $300 to your cause", Emoji: "🥂",
		Effect: models.CardEffect{Type: models.EffectCollectFromEach, Value: 300}, IsGood: true},

	{Id: "fate_11", Title: "Hospital Bill", Description: "A sudden illness costs you $1500", Emoji: "🏥",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: -1500}, IsGood: false},
	{Id: "fate_12", Title: "Kidnapped", Description: "Thrown straight into jail by a shady gang!", Emoji: "👮",
		Effect: models.CardEffect{Type: models.EffectGoToJail}, IsGood: false},
	{Id: "fate_13", Title: "Market Crash", Description: "Stocks plunge, losing $30 per share", Emoji: "📉",
		Effect: models.CardEffect{Type: models.EffectStockBonus, Value: -30}, IsGood: false},
	{Id: "fate_14", Title: "Car Accident", Description: "Repairs set you back $800", Emoji: "🚗",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: -800}, IsGood: false},
	{Id: "fate_15", Title: "Typhoon Damage", Description: "Pay $200 repairs per property you own", Emoji: "🌀",
		Effect: models.CardEffect{Type: models.EffectRepairProperty, Value: 200}, IsGood: false},
	{Id: "fate_16", Title: "Phone Scam", Description: "A scammer talks you out of $1200", Emoji: "☎️",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: -1200}, IsGood: false},
	{Id: "fate_17", Title: "Shopping Spree", Description: "Impulse purchases: pay every player $400", Emoji: "🛍️",
		Effect: models.CardEffect{Type: models.EffectPayEachPlayer, Value: 400}, IsGood: false},
	{Id: "fate_18", Title: "Rotten Luck", Description: "Move back 3 steps. Hope that isn't the jail...", Emoji: "🦶",
		Effect: models.CardEffect{Type: models.EffectMoveSteps, Value: -3}, IsGood: false},
}

var chanceCards = []models.EventCard{
	{Id: "chance_01", Title: "Investment Payoff", Description: "An early bet pays out $2000", Emoji: "💰",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: 2000}, IsGood: true},
	{Id: "chance_02", Title: "Jackpot Subsidy", Description: "A subsidy adds $3000 to the lottery jackpot!", Emoji: "🎊",
		Effect: models.CardEffect{Type: models.EffectLotteryBoost, Value: 3000}, IsGood: true},
	{Id: "chance_03", Title: "Flight to Shanghai", Description: "A free plane ticket straight to Shanghai!", Emoji: "✈️",
		Effect: models.CardEffect{Type: models.EffectMoveTo, TargetPosition: 26}, IsGood: true},
	{Id: "chance_04", Title: "Lost Wallet", Description: "You find a wallet with $500 inside", Emoji: "👛",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: 500}, IsGood: true},
	{Id: "chance_05", Title: "Viral Stream", Description: "Your stream goes viral! Every player tips you $250", Emoji: "📱",
		Effect: models.CardEffect{Type: models.EffectCollectFromEach, Value: 250}, IsGood: true},
	{Id: "chance_06", Title: "Lucky Stride", Description: "Fortune smiles: move forward 3 steps!", Emoji: "🍀",
		Effect: models.CardEffect{Type: models.EffectMoveSteps, Value: 3}, IsGood: true},
	{Id: "chance_07", Title: "Fund Maturity", Description: "Your index fund matures with $1800 in gains", Emoji: "📊",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: 1800}, IsGood: true},
	{Id: "chance_08", Title: "Jail-Free Card", Description: "A lawyer friend hands you a jail-free card", Emoji: "⚖️",
		Effect: models.CardEffect{Type: models.EffectGetOutOfJail}, IsGood: true},
	{Id: "chance_09", Title: "Contract Won", Description: "Your firm wins a big tender worth $2200", Emoji: "🏢",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: 2200}, IsGood: true},
	{Id: "chance_10", Title: "Designer Makeover", Description: "A designer renovates one of your properties for free!", Emoji: "🎨",
		Effect: models.CardEffect{Type: models.EffectFreeUpgrade}, IsGood: true},

	{Id: "chance_11", Title: "Speeding Ticket", Description: "Caught speeding, fined $600", Emoji: "🚔",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: -600}, IsGood: false},
	{Id: "chance_12", Title: "Drunk Driving", Description: "Pulled over at a checkpoint. Straight to jail!", Emoji: "🍺",
		Effect: models.CardEffect{Type: models.EffectGoToJail}, IsGood: false},
	{Id: "chance_13", Title: "School District Tax", Description: "New policy: pay $150 per property you own", Emoji: "🏫",
		Effect: models.CardEffect{Type: models.EffectRepairProperty, Value: 150}, IsGood: false},
	{Id: "chance_14", Title: "Bad Tip", Description: "A hot stock tip loses you $1000", Emoji: "💸",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: -1000}, IsGood: false},
	{Id: "chance_15", Title: "Dinner on You", Description: "You pick up the tab: pay every player $300", Emoji: "🍽️",
		Effect: models.CardEffect{Type: models.EffectPayEachPlayer, Value: 300}, IsGood: false},
	{Id: "chance_16", Title: "Premium Due", Description: "Your insurer bills a $700 top-up premium", Emoji: "📋",
		Effect: models.CardEffect{Type: models.EffectMoney, Value: -700}, IsGood: false},
	{Id: "chance_17", Title: "Wrong Turn", Description: "Navigation error: move back 2 steps", Emoji: "🗺️",
		Effect: models.CardEffect{Type: models.EffectMoveSteps, Value: -2}, IsGood: false},
	{Id: "chance_18", Title: "Deported", Description: "Visa trouble sends you back to start (no salary)", Emoji: "🛂",
		Effect: models.CardEffect{Type: models.EffectMoveTo, TargetPosition: 0, NoSalary: true}, IsGood: false},
}

// DrawCard picks uniformly, with replacement, from the deck matching the
// tile type.
func DrawCard(tileType models.TileType, rng *rand.Rand) models.EventCard {
	if tileType == models.TileFate {
		return fateCards[rng.Intn(len(fateCards))]
	}
	return chanceCards[rng.Intn(len(chanceCards))]
}

// ApplyCardEffect resolves the pending card. The pending state is cleared
// before any re-entrant landing dispatch, and a movement effect never
// re-draws when it lands on another FATE/CHANCE tile.
func ApplyCardEffect(g *models.GameState, rng *rand.Rand) {
	if g.ActiveCard == nil {
		return
	}

	card := g.ActiveCard.Card
	playerId := g.ActiveCard.PlayerId
	pi := playerIndex(g, playerId)
	player := &g.Players[pi]
	effect := card.Effect
	needsLanding := false

	switch effect.Type {
	case models.EffectMoney:
		player.Money += effect.Value
		AddMoneyEffect(g, effect.Value, player.Position)
		if effect.Value >= 0 {
			appendLog(g, "💰 %s gained $%d", player.Name, effect.Value)
		} else {
			appendLog(g, "💸 %s lost $%d", player.Name, -effect.Value)
		}

	case models.EffectMoveTo:
		target := effect.TargetPosition
		if !effect.NoSalary && target < player.Position {
			player.Money += board.Salary
			AddMoneyEffect(g, board.Salary, 0)
			appendLog(g, "💰 %s passed start and collected $%d", player.Name, board.Salary)
		}
		player.Position = target
		appendLog(g, "🚀 %s was teleported to %s", player.Name, g.Tiles[tileIndex(g, target)].Name)
		needsLanding = true

	case models.EffectMoveSteps:
		steps := effect.Value
		newPos := ((player.Position+steps)%board.Size + board.Size) % board.Size
		if steps > 0 && newPos < player.Position {
			player.Money += board.Salary
			AddMoneyEffect(g, board.Salary, 0)
			appendLog(g, "💰 %s passed start and collected $%d", player.Name, board.Salary)
		}
		player.Position = newPos
		if steps > 0 {
			appendLog(g, "🚶 %s moved forward %d steps to %s", player.Name, steps, g.Tiles[tileIndex(g, newPos)].Name)
		} else {
			appendLog(g, "🚶 %s moved back %d steps to %s", player.Name, -steps, g.Tiles[tileIndex(g, newPos)].Name)
		}
		needsLanding = true

	case models.EffectGoToJail:
		player.Position = board.JailPosition()
		player.JailTurns = jailSentence
		appendLog(g, "🚔 %s was sent to jail for %d turns", player.Name, jailSentence)

	case models.EffectGetOutOfJail:
		g.JailFreeCards[playerId]++
		appendLog(g, "🗝️ %s received a get-out-of-jail card!", player.Name)

	case models.EffectPayEachPlayer:
		total := 0
		for i := range g.Players {
			other := &g.Players[i]
			if other.Id == playerId || other.IsBankrupt {
				continue
			}
			other.Money += effect.Value
			AddMoneyEffect(g, effect.Value, other.Position)
			total += effect.Value
		}
		player.Money -= total
		AddMoneyEffect(g, -total, player.Position)
		appendLog(g, "💸 %s paid every player $%d", player.Name, effect.Value)

	case models.EffectCollectFromEach, models.EffectBirthday:
		// No payer is pushed negative by a card: each pays at most their
		// current balance.
		collected := 0
		for i := range g.Players {
			other := &g.Players[i]
			if other.Id == playerId || other.IsBankrupt {
				continue
			}
			pay := effect.Value
			if other.Money < pay {
				pay = other.Money
			}
			if pay < 0 {
				pay = 0
			}
			other.Money -= pay
			AddMoneyEffect(g, -pay, other.Position)
			collected += pay
		}
		player.Money += collected
		AddMoneyEffect(g, collected, player.Position)
		if effect.Type == models.EffectBirthday {
			appendLog(g, "🎂 Happy birthday %s! Gifts total $%d", player.Name, collected)
		} else {
			appendLog(g, "💰 %s collected $%d in total", player.Name, collected)
		}

	case models.EffectRepairProperty:
		owned := 0
		for _, t := range g.Tiles {
			if t.OwnerId == playerId {
				owned++
			}
		}
		total := effect.Value * owned
		if total > 0 {
			player.Money -= total
			AddMoneyEffect(g, -total, player.Position)
			appendLog(g, "🔧 %s paid $%d repairs on %d properties", player.Name, total, owned)
		} else {
			appendLog(g, "😌 %s owns no property, nothing to repair", player.Name)
		}

	case models.EffectFreeUpgrade:
		var upgradable []int
		for i, t := range g.Tiles {
			if t.OwnerId == playerId && t.Type == models.TileProperty && t.Level < models.MaxLevel && !t.IsMortgaged {
				upgradable = append(upgradable, i)
			}
		}
		if len(upgradable) > 0 {
			ti := upgradable[rng.Intn(len(upgradable))]
			g.Tiles[ti].Level++
			appendLog(g, "🏗️ %s's %s was upgraded for free!", player.Name, g.Tiles[ti].Name)
		} else {
			// Nothing to upgrade: a cash consolation instead.
			player.Money += 1000
			AddMoneyEffect(g, 1000, player.Position)
			appendLog(g, "💵 %s had no upgradable property, compensated $1000", player.Name)
		}

	case models.EffectStockBonus:
		total := 0
		for _, shares := range player.Portfolio {
			total += shares * effect.Value
		}
		if total != 0 {
			player.Money += total
			AddMoneyEffect(g, total, player.Position)
			if total > 0 {
				appendLog(g, "📈 %s collected $%d in dividends", player.Name, total)
			} else {
				appendLog(g, "📉 %s lost $%d in the crash", player.Name, -total)
			}
		} else {
			appendLog(g, "📊 %s holds no shares", player.Name)
		}

	case models.EffectTaxRefund:
		player.Money += effect.Value
		AddMoneyEffect(g, effect.Value, player.Position)
		appendLog(g, "🏛️ %s received a $%d tax refund", player.Name, effect.Value)

	case models.EffectLotteryBoost:
		g.LotteryJackpot += effect.Value
		appendLog(g, "🎊 Lottery jackpot boosted by $%d! Now $%d", effect.Value, g.LotteryJackpot)
	}

	// Pending-card state is cleared before any re-entrant dispatch.
	g.ActiveCard = nil

	if player.Money < 0 {
		enterInsolvency(g, pi, "")
	}

	if needsLanding && !g.IsGameOver && g.DebtCrisis == nil {
		landed := g.Tiles[tileIndex(g, g.Players[pi].Position)]
		if landed.Type != models.TileFate && landed.Type != models.TileChance {
			HandleLanding(g, rng)
		}
	}
}
