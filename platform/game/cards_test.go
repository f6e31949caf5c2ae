package game

import (
	"math/rand"
	"testing"

	"github.com/lkaiyu/richman-backend/app/models"
	"github.com/lkaiyu/richman-backend/platform/board"
)

func cardById(t *testing.T, id string) models.EventCard {
	t.Helper()
	for _, c := range fateCards {
		if c.Id == id {
			return c
		}
	}
	for _, c := range chanceCards {
		if c.Id == id {
			return c
		}
	}
	t.Fatalf("no card %q", id)
	return models.EventCard{}
}

func applyCard(g *models.GameState, card models.EventCard, playerId string) {
	g.ActiveCard = &models.ActiveCard{Card: card, PlayerId: playerId}
	ApplyCardEffect(g, rand.New(rand.NewSource(1)))
}

func TestMoneyCard(t *testing.T) {
	g := newTestGame(t)
	money := g.Players[0].Money

	applyCard(g, cardById(t, "fate_01"), "p0") // +3000

	if g.Players[0].Money != money+3000 {
		t.Fatalf("money = %d, want %d", g.Players[0].Money, money+3000)
	}
	if g.ActiveCard != nil {
		t.Fatalf("card not cleared after resolution")
	}
}

func TestCollectCappedAtPayerBalance(t *testing.T) {
	g := newTestGame(t)
	g.Players[1].Money = 100
	money := g.Players[0].Money

	applyCard(g, cardById(t, "fate_10"), "p0") // collect $300 from each

	if g.Players[0].Money != money+100 {
		t.Fatalf("collected %d, want capped at 100", g.Players[0].Money-money)
	}
	if g.Players[1].Money != 0 {
		t.Fatalf("payer money = %d, want 0 (never negative)", g.Players[1].Money)
	}
}

func TestGoToJailCard(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 10

	applyCard(g, cardById(t, "fate_12"), "p0")

	if g.Players[0].Position != board.JailPosition() {
		t.Fatalf("position = %d, want jail", g.Players[0].Position)
	}
	if g.Players[0].JailTurns != jailSentence {
		t.Fatalf("jail turns = %d, want %d", g.Players[0].JailTurns, jailSentence)
	}
}

func TestJailFreeCardGrant(t *testing.T) {
	g := newTestGame(t)
	applyCard(g, cardById(t, "fate_08"), "p0")
	if g.JailFreeCards["p0"] != 1 {
		t.Fatalf("jail-free cards = %d, want 1", g.JailFreeCards["p0"])
	}
}

func TestTeleportWithoutSalary(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 10
	money := g.Players[0].Money

	applyCard(g, cardById(t, "chance_18"), "p0") // back to start, no salary

	if g.Players[0].Position != 0 {
		t.Fatalf("position = %d, want 0", g.Players[0].Position)
	}
	if g.Players[0].Money != money {
		t.Fatalf("money = %d, deported player should not collect salary", g.Players[0].Money)
	}
}

func TestTeleportBackwardPaysSalary(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 20
	money := g.Players[0].Money

	applyCard(g, cardById(t, "fate_06"), "p0") // to the parking corner at 14

	if g.Players[0].Position != 14 {
		t.Fatalf("position = %d, want 14", g.Players[0].Position)
	}
	// Target behind the player means a lap through start.
	if g.Players[0].Money != money+board.Salary {
		t.Fatalf("money = %d, want %d", g.Players[0].Money, money+board.Salary)
	}
	if g.Players[0].RestTurns != 1 {
		t.Fatalf("landing on the corner should force a rest")
	}
}

func TestTeleportTriggersLanding(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 3

	applyCard(g, cardById(t, "chance_03"), "p0") // fly to Shanghai (26)

	if g.Players[0].Position != 26 {
		t.Fatalf("position = %d, want 26", g.Players[0].Position)
	}
	if !g.WaitingForAction {
		t.Fatalf("landing on an unowned property should wait for a buy decision")
	}
}

func TestMoveStepsNeverRedraws(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 7

	applyCard(g, cardById(t, "fate_18"), "p0") // back 3 steps, onto a fate tile

	if g.Players[0].Position != 4 {
		t.Fatalf("position = %d, want 4", g.Players[0].Position)
	}
	if g.ActiveCard != nil {
		t.Fatalf("card movement must not draw another card")
	}
}

func TestPayEachPlayer(t *testing.T) {
	g := newTestGame(t)
	p0, p1 := g.Players[0].Money, g.Players[1].Money

	applyCard(g, cardById(t, "fate_17"), "p0") // pay $400 to each

	if g.Players[0].Money != p0-400 {
		t.Fatalf("payer money = %d, want %d", g.Players[0].Money, p0-400)
	}
	if g.Players[1].Money != p1+400 {
		t.Fatalf("receiver money = %d, want %d", g.Players[1].Money, p1+400)
	}
}

func TestRepairChargesPerProperty(t *testing.T) {
	g := newTestGame(t)
	g.Tiles[findProperty(t, g, 800)].OwnerId = "p0"
	g.Tiles[findProperty(t, g, 900)].OwnerId = "p0"
	money := g.Players[0].Money

	applyCard(g, cardById(t, "fate_15"), "p0") // $200 per property

	if g.Players[0].Money != money-400 {
		t.Fatalf("money = %d, want %d", g.Players[0].Money, money-400)
	}
}

func TestFreeUpgradeFallsBackToCash(t *testing.T) {
	g := newTestGame(t)
	money := g.Players[0].Money

	applyCard(g, cardById(t, "fate_09"), "p0") // no property owned

	if g.Players[0].Money != money+1000 {
		t.Fatalf("money = %d, want consolation %d", g.Players[0].Money, money+1000)
	}
}

func TestFreeUpgradeRaisesLevel(t *testing.T) {
	g := newTestGame(t)
	ti := findProperty(t, g, 800)
	g.Tiles[ti].OwnerId = "p0"

	applyCard(g, cardById(t, "fate_09"), "p0")

	if g.Tiles[ti].Level != 1 {
		t.Fatalf("level = %d, want 1", g.Tiles[ti].Level)
	}
}

func TestStockBonusPerShare(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Portfolio["c1"] = 10
	money := g.Players[0].Money

	applyCard(g, cardById(t, "fate_04"), "p0") // $50 per share

	if g.Players[0].Money != money+500 {
		t.Fatalf("money = %d, want %d", g.Players[0].Money, money+500)
	}
}

func TestLotteryBoostCard(t *testing.T) {
	g := newTestGame(t)
	jackpot := g.LotteryJackpot

	applyCard(g, cardById(t, "chance_02"), "p0")

	if g.LotteryJackpot != jackpot+3000 {
		t.Fatalf("jackpot = %d, want %d", g.LotteryJackpot, jackpot+3000)
	}
}

func TestCardDebtBankruptsAssetlessPlayer(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Money = 100

	applyCard(g, cardById(t, "fate_11"), "p0") // hospital bill, -1500

	if !g.Players[0].IsBankrupt || !g.IsGameOver {
		t.Fatalf("card debt with no assets should end in bankruptcy")
	}
	if g.Winner != "Bot" {
		t.Fatalf("winner = %q, want the surviving player", g.Winner)
	}
}

func TestDrawCardMatchesDeck(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		fate := DrawCard(models.TileFate, rng)
		if fate.Id[:4] != "fate" {
			t.Fatalf("fate tile drew %q", fate.Id)
		}
		chance := DrawCard(models.TileChance, rng)
		if chance.Id[:6] != "chance" {
			t.Fatalf("chance tile drew %q", chance.Id)
		}
	}
}
