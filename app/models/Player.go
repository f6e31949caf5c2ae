package models

type LotteryTicket struct {
	Numbers []int `json:"numbers"` // 3 distinct numbers, sorted
	Cost    int   `json:"cost"`
}

type Player struct {
	Id             string          `json:"id"`
	Name           string          `json:"name"`
	Color          string          `json:"color"`
	Money          int             `json:"money"` // may go negative inside one transition
	Position       int             `json:"position"`
	IsAi           bool            `json:"isAi"`
	IsBankrupt     bool            `json:"isBankrupt"`
	JailTurns      int             `json:"jailTurns"`
	RestTurns      int             `json:"restTurns"`
	Portfolio      map[string]int  `json:"portfolio"`
	LotteryTickets []LotteryTicket `json:"lotteryTickets"`
}

// DebtCrisis is the suspended state entered when a player's balance goes
// negative while they still hold liquidatable assets. At most one is active
// per game. An empty CreditorId means the debt is owed to the bank.
type DebtCrisis struct {
	DebtorId   string `json:"debtorId"`
	CreditorId string `json:"creditorId,omitempty"`
	Amount     int    `json:"amount"`
}
