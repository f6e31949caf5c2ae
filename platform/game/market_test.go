package game

import (
	"math/rand"
	"testing"
)

func TestUpdatePricesRespectsFloorAndHistory(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(11))
	g.Companies[0].Price = priceFloor // worst case for the floor

	for day := 0; day < 50; day++ {
		UpdatePrices(g, rng)
	}

	for _, comp := range g.Companies {
		if comp.Price < priceFloor {
			t.Fatalf("%s price = %d, below floor %d", comp.Name, comp.Price, priceFloor)
		}
		if len(comp.History) > historySize {
			t.Fatalf("%s history length = %d, want at most %d", comp.Name, len(comp.History), historySize)
		}
		if comp.History[len(comp.History)-1] != comp.Price {
			t.Fatalf("%s history tail %d does not match price %d",
				comp.Name, comp.History[len(comp.History)-1], comp.Price)
		}
	}
}

func TestBelowFloorSeedsClampOnFirstUpdate(t *testing.T) {
	g := newTestGame(t)
	seededLow := 0
	for _, comp := range g.Companies {
		if comp.Price < priceFloor {
			seededLow++
		}
	}
	if seededLow == 0 {
		t.Fatalf("expected some listings seeded under the floor")
	}

	UpdatePrices(g, rand.New(rand.NewSource(1)))
	for _, comp := range g.Companies {
		if comp.Price < priceFloor {
			t.Fatalf("%s still under the floor after one market day: %d", comp.Name, comp.Price)
		}
	}
}

func TestBuyAndSellStock(t *testing.T) {
	g := newTestGame(t)
	comp := g.Companies[0]
	money := g.Players[0].Money

	BuyStock(g, "p0", comp.Id, 10)
	if g.Players[0].Money != money-10*comp.Price {
		t.Fatalf("money after buy = %d, want %d", g.Players[0].Money, money-10*comp.Price)
	}
	if g.Players[0].Portfolio[comp.Id] != 10 {
		t.Fatalf("holding = %d, want 10", g.Players[0].Portfolio[comp.Id])
	}

	SellStock(g, "p0", comp.Id, 4)
	if g.Players[0].Portfolio[comp.Id] != 6 {
		t.Fatalf("holding after sale = %d, want 6", g.Players[0].Portfolio[comp.Id])
	}
	if g.Players[0].Money != money-6*comp.Price {
		t.Fatalf("money after sale = %d, want %d", g.Players[0].Money, money-6*comp.Price)
	}
}

func TestStockTradeRejections(t *testing.T) {
	g := newTestGame(t)
	comp := g.Companies[0]
	money := g.Players[0].Money

	BuyStock(g, "p0", comp.Id, 0)
	BuyStock(g, "p0", comp.Id, -5)
	SellStock(g, "p0", comp.Id, 1) // nothing held

	g.Players[0].Money = comp.Price - 1
	BuyStock(g, "p0", comp.Id, 1)
	g.Players[0].Money = money

	if g.Players[0].Money != money || g.Players[0].Portfolio[comp.Id] != 0 {
		t.Fatalf("rejected trade mutated state")
	}
}
