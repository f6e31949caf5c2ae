package game

import (
	"math/rand"
	"testing"

	"github.com/lkaiyu/richman-backend/app/models"
	"github.com/lkaiyu/richman-backend/platform/board"
)

func TestMovementWrapsAndPaysSalaryOnce(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 25
	money := g.Players[0].Money

	for i := 0; i < 5; i++ {
		MoveOneStep(g)
	}

	if g.Players[0].Position != 2 {
		t.Fatalf("position = %d, want 2", g.Players[0].Position)
	}
	if g.Players[0].Money != money+board.Salary {
		t.Fatalf("money = %d, want exactly one salary (%d)", g.Players[0].Money, money+board.Salary)
	}
}

func TestBeginRollSpendsJailTurn(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(1))
	g.Players[0].JailTurns = 2

	if BeginRoll(g, rng) {
		t.Fatalf("jailed player should not roll")
	}
	if g.Players[0].JailTurns != 1 {
		t.Fatalf("jail turns = %d, want 1", g.Players[0].JailTurns)
	}
	if g.DiceValue != nil {
		t.Fatalf("dice should stay unset")
	}
	if g.CurrentPlayerIndex != 1 {
		t.Fatalf("turn did not pass to the next player")
	}
}

func TestBeginRollBlockedWhilePending(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(1))

	g.WaitingForAction = true
	if BeginRoll(g, rng) {
		t.Fatalf("roll allowed while waiting on a decision")
	}
	g.WaitingForAction = false

	g.DebtCrisis = &models.DebtCrisis{DebtorId: "p0", Amount: 100}
	if BeginRoll(g, rng) {
		t.Fatalf("roll allowed during a debt crisis")
	}
	g.DebtCrisis = nil

	if !BeginRoll(g, rng) {
		t.Fatalf("roll should succeed once nothing is pending")
	}
	if len(g.DiceValue) != 2 {
		t.Fatalf("dice = %v, want two values", g.DiceValue)
	}
	for _, d := range g.DiceValue {
		if d < 1 || d > 6 {
			t.Fatalf("die out of range: %d", d)
		}
	}
}

func TestGoToJailTile(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(1))
	g.Players[0].Position = 21

	if !HandleLanding(g, rng) {
		t.Fatalf("arrest should finish the landing")
	}
	if g.Players[0].Position != board.JailPosition() {
		t.Fatalf("position = %d, want jail (%d)", g.Players[0].Position, board.JailPosition())
	}
	if g.Players[0].JailTurns != jailSentence {
		t.Fatalf("jail turns = %d, want %d", g.Players[0].JailTurns, jailSentence)
	}
}

func TestCornerForcesRest(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(1))
	g.Players[0].Position = 14

	HandleLanding(g, rng)
	if g.Players[0].RestTurns != 1 {
		t.Fatalf("rest turns = %d, want 1", g.Players[0].RestTurns)
	}
}

func TestHumanLandingOnUnownedPropertyWaits(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(1))
	g.Players[0].Position = 1

	if HandleLanding(g, rng) {
		t.Fatalf("landing should pause for a buy decision")
	}
	if !g.WaitingForAction {
		t.Fatalf("WaitingForAction not set")
	}
}

func TestRentTransfersBetweenPlayers(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(1))
	ti := findProperty(t, g, 1500)
	g.Tiles[ti].OwnerId = "p1"
	g.Tiles[ti].Level = 1
	g.Players[0].Position = g.Tiles[ti].Id

	p0, p1 := g.Players[0].Money, g.Players[1].Money
	if !HandleLanding(g, rng) {
		t.Fatalf("paying rent should finish the landing")
	}

	rent := 120 * 3
	if g.Players[0].Money != p0-rent {
		t.Fatalf("tenant money = %d, want %d", g.Players[0].Money, p0-rent)
	}
	if g.Players[1].Money != p1+rent {
		t.Fatalf("owner money = %d, want %d", g.Players[1].Money, p1+rent)
	}
}

func TestRentBankruptsAssetlessTenant(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(1))
	ti := findProperty(t, g, 1500)
	g.Tiles[ti].OwnerId = "p1"
	g.Players[0].Position = g.Tiles[ti].Id
	g.Players[0].Money = 50 // rent is 120, nothing to liquidate

	HandleLanding(g, rng)

	if !g.Players[0].IsBankrupt || !g.IsGameOver {
		t.Fatalf("assetless tenant should go bankrupt immediately")
	}
	if g.Winner != "Bot" {
		t.Fatalf("winner = %q, want the creditor", g.Winner)
	}
}

func TestEndTurnWrapAdvancesDay(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(1))
	g.CurrentPlayerIndex = 1

	EndTurn(g, rng)

	if g.CurrentPlayerIndex != 0 {
		t.Fatalf("index = %d, want 0", g.CurrentPlayerIndex)
	}
	if g.Day != 2 {
		t.Fatalf("day = %d, want 2", g.Day)
	}
	if g.DaysUntilDraw != drawInterval-1 {
		t.Fatalf("days until draw = %d, want %d", g.DaysUntilDraw, drawInterval-1)
	}
}

func TestEndTurnMidRotationKeepsDay(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(1))

	EndTurn(g, rng) // p0 -> p1, no wrap
	if g.Day != 1 {
		t.Fatalf("day advanced mid-rotation")
	}
}

func TestUseJailFreeCard(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].JailTurns = 2
	g.JailFreeCards["p0"] = 1

	UseJailFreeCard(g, "p0")
	if g.Players[0].JailTurns != 0 {
		t.Fatalf("jail turns = %d, want 0", g.Players[0].JailTurns)
	}
	if g.JailFreeCards["p0"] != 0 {
		t.Fatalf("card not consumed")
	}

	UseJailFreeCard(g, "p0") // no card left
	if g.JailFreeCards["p0"] != 0 {
		t.Fatalf("card count went negative")
	}
}
