package game

import (
	"math/rand"
	"sort"

	"github.com/lkaiyu/richman-backend/app/models"
)

const (
	ticketPrice  = 300
	jackpotBase  = 5000
	jackpotStep  = 3000 // rollover increment when nobody hits the jackpot
	drawInterval = 7    // days between draws
	numberRange  = 10   // ticket numbers are drawn from 1..numberRange
	ticketSize   = 3
)

// BuyLottery sells one ticket of three distinct numbers in [1,10]. Half the
// ticket price feeds the jackpot immediately. Invalid numbers or
// insufficient cash make it a no-op.
func BuyLottery(g *models.GameState, playerId string, numbers []int) {
	pi := playerIndex(g, playerId)
	player := &g.Players[pi]

	if !validTicket(numbers) || player.Money < ticketPrice {
		return
	}

	player.Money -= ticketPrice
	AddMoneyEffect(g, -ticketPrice, player.Position)

	picked := append([]int(nil), numbers...)
	sort.Ints(picked)
	player.LotteryTickets = append(player.LotteryTickets, models.LotteryTicket{
		Numbers: picked,
		Cost:    ticketPrice,
	})
	g.LotteryJackpot += ticketPrice / 2
	appendLog(g, "🎟️ %s bought a lottery ticket %v", player.Name, picked)
}

// BuyLotteryAI picks three random distinct numbers and buys a ticket.
func BuyLotteryAI(g *models.GameState, playerId string, rng *rand.Rand) {
	BuyLottery(g, playerId, drawNumbers(rng))
}

func validTicket(numbers []int) bool {
	if len(numbers) != ticketSize {
		return false
	}
	seen := map[int]bool{}
	for _, n := range numbers {
		if n < 1 || n > numberRange || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}

func drawNumbers(rng *rand.Rand) []int {
	var numbers []int
	for len(numbers) < ticketSize {
		n := rng.Intn(numberRange) + 1
		dup := false
		for _, m := range numbers {
			if m == n {
				dup = true
				break
			}
		}
		if !dup {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)
	return numbers
}

func countMatches(ticket []int, winning []int) int {
	matches := 0
	for _, n := range ticket {
		for _, w := range winning {
			if n == w {
				matches++
				break
			}
		}
	}
	return matches
}

// ticketPrize maps a match count to a payout. The jackpot tier is handled by
// the caller since it drains the shared pool.
func ticketPrize(matches int, cost int) int {
	switch matches {
	case 1:
		return cost
	case 2:
		return cost * 5
	}
	return 0
}

// processLotteryDraw runs one draw: every ticket is scored against three
// winning numbers, prizes are credited, and all tickets are cleared whether
// they won or not.
func processLotteryDraw(g *models.GameState, rng *rand.Rand) {
	winning := drawNumbers(rng)
	appendLog(g, "🎰 Lottery draw! Winning numbers: %v", winning)

	jackpotHit := false
	for i := range g.Players {
		player := &g.Players[i]
		prize := 0
		bestMatch := 0
		for _, ticket := range player.LotteryTickets {
			matches := countMatches(ticket.Numbers, winning)
			if matches > bestMatch {
				bestMatch = matches
			}
			if matches == ticketSize {
				jackpotHit = true
				prize += g.LotteryJackpot
			} else {
				prize += ticketPrize(matches, ticket.Cost)
			}
		}
		player.LotteryTickets = []models.LotteryTicket{}
		if prize == 0 {
			continue
		}
		player.Money += prize
		AddMoneyEffect(g, prize, player.Position)
		switch bestMatch {
		case ticketSize:
			appendLog(g, "🎊 %s hit the jackpot! Won $%d!", player.Name, prize)
		case 2:
			appendLog(g, "🎉 %s won second prize, $%d", player.Name, prize)
		case 1:
			appendLog(g, "🎫 %s won third prize, $%d", player.Name, prize)
		}
	}

	if jackpotHit {
		g.LotteryJackpot = jackpotBase
	} else {
		g.LotteryJackpot += jackpotStep
		appendLog(g, "💰 Jackpot rolls over to $%d", g.LotteryJackpot)
	}
}
