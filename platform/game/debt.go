package game

import (
	"github.com/lkaiyu/richman-backend/app/models"
)

// maxLiquidationSteps caps the automatic liquidation loop so a logic defect
// degrades into a deterministic bankruptcy instead of a hang.
const maxLiquidationSteps = 100

// HasAssetsToLiquidate reports whether the player owns anything that can be
// turned into cash: any property (mortgaged ones can still be sold) or any
// positive share holding.
func HasAssetsToLiquidate(g *models.GameState, playerId string) bool {
	for _, t := range g.Tiles {
		if t.OwnerId == playerId {
			return true
		}
	}
	player := g.Players[playerIndex(g, playerId)]
	for _, shares := range player.Portfolio {
		if shares > 0 {
			return true
		}
	}
	return false
}

// PotentialAssetValue is the cash a full liquidation would raise: sale value
// of every owned property plus the market value of every holding.
func PotentialAssetValue(g *models.GameState, playerId string) int {
	total := 0
	for _, t := range g.Tiles {
		if t.OwnerId == playerId {
			total += sellValue(t)
		}
	}
	player := g.Players[playerIndex(g, playerId)]
	for _, comp := range g.Companies {
		total += player.Portfolio[comp.Id] * comp.Price
	}
	return total
}

// enterInsolvency routes a negative balance into the solvency resolver. With
// no liquidatable assets it is an immediate bankruptcy; otherwise a debt
// crisis opens, which an AI debtor resolves on the spot.
func enterInsolvency(g *models.GameState, debtorIdx int, creditorId string) {
	debtor := &g.Players[debtorIdx]
	if debtor.Money >= 0 {
		return
	}
	amount := -debtor.Money

	if !HasAssetsToLiquidate(g, debtor.Id) {
		finalizeBankruptcy(g, debtorIdx, creditorId)
		return
	}

	g.DebtCrisis = &models.DebtCrisis{
		DebtorId:   debtor.Id,
		CreditorId: creditorId,
		Amount:     amount,
	}
	appendLog(g, "⚠️ %s is short on cash! Must raise $%d from assets", debtor.Name, amount)

	if debtor.IsAi {
		autoLiquidate(g, debtorIdx, creditorId)
	}
}

// autoLiquidate sells the AI debtor's assets one step at a time, re-checking
// the balance after each: all shares of one company first, then mortgaging
// one property, then selling one property outright.
func autoLiquidate(g *models.GameState, debtorIdx int, creditorId string) {
	debtorId := g.Players[debtorIdx].Id

	for i := 0; i < maxLiquidationSteps; i++ {
		debtor := &g.Players[debtorIdx]
		if debtor.Money >= 0 {
			break
		}
		if !HasAssetsToLiquidate(g, debtorId) {
			break
		}

		sold := false
		for _, comp := range g.Companies {
			if shares := debtor.Portfolio[comp.Id]; shares > 0 {
				SellStock(g, debtorId, comp.Id, shares)
				sold = true
				break
			}
		}
		if sold {
			continue
		}

		mortgaged := false
		for _, t := range g.Tiles {
			if t.OwnerId == debtorId && !t.IsMortgaged {
				MortgageProperty(g, t.Id, debtorId)
				mortgaged = true
				break
			}
		}
		if mortgaged {
			continue
		}

		liquidated := false
		for _, t := range g.Tiles {
			if t.OwnerId == debtorId {
				SellProperty(g, t.Id, debtorId)
				liquidated = true
				break
			}
		}
		if !liquidated {
			break
		}
	}

	g.DebtCrisis = nil
	debtor := &g.Players[debtorIdx]
	if debtor.Money < 0 {
		finalizeBankruptcy(g, debtorIdx, creditorId)
		return
	}
	appendLog(g, "✅ %s liquidated assets and covered the debt!", debtor.Name)
}

// ResolveDebtCrisis re-checks an open crisis after a manual sell, mortgage,
// or stock sale. Cleared once the balance is non-negative; finalized as
// bankruptcy once nothing remains to liquidate.
func ResolveDebtCrisis(g *models.GameState) {
	if g.DebtCrisis == nil {
		return
	}
	debtorIdx := playerIndex(g, g.DebtCrisis.DebtorId)
	debtor := &g.Players[debtorIdx]

	if debtor.Money >= 0 {
		appendLog(g, "✅ %s paid off the debt!", debtor.Name)
		g.DebtCrisis = nil
		return
	}
	if !HasAssetsToLiquidate(g, debtor.Id) {
		finalizeBankruptcy(g, debtorIdx, g.DebtCrisis.CreditorId)
	}
}

// DeclareBankruptcy gives up on an open crisis immediately, regardless of
// remaining assets.
func DeclareBankruptcy(g *models.GameState) {
	if g.DebtCrisis == nil {
		return
	}
	finalizeBankruptcy(g, playerIndex(g, g.DebtCrisis.DebtorId), g.DebtCrisis.CreditorId)
}

// finalizeBankruptcy ends the game at the first bankruptcy. The creditor
// wins; for bank debt, any remaining solvent player does.
func finalizeBankruptcy(g *models.GameState, debtorIdx int, creditorId string) {
	debtor := &g.Players[debtorIdx]
	debtor.IsBankrupt = true
	appendLog(g, "💀 %s went bankrupt!", debtor.Name)
	g.IsGameOver = true
	g.DebtCrisis = nil

	if creditorId != "" {
		g.Winner = g.Players[playerIndex(g, creditorId)].Name
		return
	}
	for _, p := range g.Players {
		if !p.IsBankrupt && p.Id != debtor.Id {
			g.Winner = p.Name
			return
		}
	}
}
