package game

import (
	"math/rand"

	"github.com/lkaiyu/richman-backend/app/models"
	"github.com/lkaiyu/richman-backend/platform/board"
)

// jailSentence is how many turns a player sits out after being sent to jail.
const jailSentence = 2

// RollDice returns two independent dice in [1,6].
func RollDice(rng *rand.Rand) (int, int) {
	return rng.Intn(6) + 1, rng.Intn(6) + 1
}

// BeginRoll starts the current player's movement phase: the jail/rest gate
// first, then the dice. Returns false when no movement should follow —
// either the turn was spent idling or the engine is waiting on input.
func BeginRoll(g *models.GameState, rng *rand.Rand) bool {
	if g.IsGameOver || g.WaitingForAction || g.DiceValue != nil || g.ActiveCard != nil || g.DebtCrisis != nil {
		return false
	}
	if ConsumeIdleTurn(g) {
		EndTurn(g, rng)
		return false
	}
	d1, d2 := RollDice(rng)
	g.DiceValue = []int{d1, d2}
	player := g.Players[g.CurrentPlayerIndex]
	appendLog(g, "🎲 %s rolled %d + %d = %d", player.Name, d1, d2, d1+d2)
	return true
}

// ConsumeIdleTurn applies the pre-roll gate: a player sitting in jail or
// resting spends this turn decrementing the counter instead of rolling.
// Returns true when the turn was consumed.
func ConsumeIdleTurn(g *models.GameState) bool {
	player := &g.Players[g.CurrentPlayerIndex]
	if player.JailTurns > 0 {
		player.JailTurns--
		appendLog(g, "⛓️ %s sits in jail, %d turn(s) left", player.Name, player.JailTurns)
		return true
	}
	if player.RestTurns > 0 {
		player.RestTurns--
		appendLog(g, "☕ %s rests this turn", player.Name)
		return true
	}
	return false
}

// UseJailFreeCard spends one jail-free card to clear the remaining sentence.
func UseJailFreeCard(g *models.GameState, playerId string) {
	pi := playerIndex(g, playerId)
	player := &g.Players[pi]
	if g.JailFreeCards[playerId] <= 0 || player.JailTurns == 0 {
		return
	}
	player.JailTurns = 0
	g.JailFreeCards[playerId]--
	appendLog(g, "🗝️ %s used a get-out-of-jail card!", player.Name)
}

// MoveOneStep advances the current player one tile. Crossing the start tile
// pays the salary exactly once.
func MoveOneStep(g *models.GameState) {
	player := &g.Players[g.CurrentPlayerIndex]
	newPos := (player.Position + 1) % board.Size
	if newPos == 0 {
		player.Money += board.Salary
		AddMoneyEffect(g, board.Salary, 0)
		appendLog(g, "💰 %s passed start and collected $%d", player.Name, board.Salary)
	}
	player.Position = newPos
}

// HandleLanding dispatches on the tile the current player stopped at.
// Returns true when the landing finished the turn; false when the engine is
// now waiting for external input (a buy/upgrade decision or a card
// acknowledgement).
func HandleLanding(g *models.GameState, rng *rand.Rand) bool {
	pi := g.CurrentPlayerIndex
	player := &g.Players[pi]
	ti := tileIndex(g, player.Position)
	tile := &g.Tiles[ti]

	switch tile.Type {
	case models.TileProperty:
		return landOnProperty(g, pi, ti, rng)

	case models.TileJail:
		appendLog(g, "👮 %s is just visiting the jail.", player.Name)
		return true

	case models.TileToJail:
		player.Position = board.JailPosition()
		player.JailTurns = jailSentence
		appendLog(g, "🚔 %s was arrested! %d turns in jail.", player.Name, jailSentence)
		return true

	case models.TileLottery:
		appendLog(g, "🎰 %s arrived at the lottery stand.", player.Name)
		if player.IsAi && player.Money > aiLotteryBuffer {
			BuyLotteryAI(g, player.Id, rng)
		}
		return true

	case models.TileFate, models.TileChance:
		card := DrawCard(tile.Type, rng)
		g.ActiveCard = &models.ActiveCard{Card: card, CardType: tile.Type, PlayerId: player.Id}
		label := "fate"
		if tile.Type == models.TileChance {
			label = "chance"
		}
		appendLog(g, "%s %s drew a %s card: %s", card.Emoji, player.Name, label, card.Title)
		return false // turn continues once the card is acknowledged

	case models.TileStart:
		appendLog(g, "🏁 %s stopped right on start.", player.Name)
		return true

	case models.TileCorner:
		player.RestTurns = 1
		appendLog(g, "☕ %s rests at free parking, skipping next turn.", player.Name)
		return true
	}
	return true
}

func landOnProperty(g *models.GameState, pi int, ti int, rng *rand.Rand) bool {
	player := &g.Players[pi]
	tile := &g.Tiles[ti]

	switch {
	case tile.OwnerId == "":
		if player.IsAi {
			if player.Money >= tile.Price {
				BuyProperty(g, tile.Id, player.Id)
			}
			return true
		}
		g.WaitingForAction = true
		return false

	case tile.OwnerId != player.Id:
		rent := CalculateRent(*tile)
		if rent == 0 {
			if tile.IsMortgaged {
				appendLog(g, "📝 %s is mortgaged, no rent due.", tile.Name)
			}
			return true
		}
		oi := playerIndex(g, tile.OwnerId)
		owner := &g.Players[oi]
		player.Money -= rent
		owner.Money += rent
		AddMoneyEffect(g, -rent, player.Position)
		AddMoneyEffect(g, rent, owner.Position)
		appendLog(g, "💸 %s paid $%d rent for %s", player.Name, rent, tile.Name)
		if player.Money < 0 {
			enterInsolvency(g, pi, owner.Id)
		}
		return true

	default: // own property
		if tile.Level < models.MaxLevel && !tile.IsMortgaged {
			if player.IsAi {
				if player.Money >= tile.Price {
					UpgradeProperty(g, tile.Id, player.Id)
				}
				return true
			}
			g.WaitingForAction = true
			return false
		}
		return true
	}
}

// EndTurn completes the current turn and hands control to the next player.
// It is a no-op while anything is still pending: a player decision, an
// unacknowledged card, an open debt crisis, or game over.
func EndTurn(g *models.GameState, rng *rand.Rand) {
	if g.IsGameOver || g.WaitingForAction || g.ActiveCard != nil || g.DebtCrisis != nil {
		return
	}
	g.DiceValue = nil
	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % len(g.Players)
	CheckNextDay(g, rng)
}

// CheckNextDay advances one market/lottery day after the turn order wraps
// back to the first player.
func CheckNextDay(g *models.GameState, rng *rand.Rand) {
	if g.CurrentPlayerIndex != 0 {
		return
	}
	advanceDay(g, rng)
}

func advanceDay(g *models.GameState, rng *rand.Rand) {
	g.Day++
	g.DaysUntilDraw--
	UpdatePrices(g, rng)
	if g.DaysUntilDraw <= 0 {
		processLotteryDraw(g, rng)
		g.DaysUntilDraw = drawInterval
	}
}
