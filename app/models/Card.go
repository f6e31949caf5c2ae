package models

type CardEffectType string

const (
	EffectMoney           CardEffectType = "MONEY"
	EffectMoveTo          CardEffectType = "MOVE_TO"
	EffectMoveSteps       CardEffectType = "MOVE_STEPS"
	EffectGoToJail        CardEffectType = "GO_TO_JAIL"
	EffectGetOutOfJail    CardEffectType = "GET_OUT_OF_JAIL"
	EffectPayEachPlayer   CardEffectType = "PAY_EACH_PLAYER"
	EffectCollectFromEach CardEffectType = "COLLECT_FROM_EACH"
	EffectRepairProperty  CardEffectType = "REPAIR_PROPERTIES"
	EffectFreeUpgrade     CardEffectType = "FREE_UPGRADE"
	EffectStockBonus      CardEffectType = "STOCK_BONUS"
	EffectBirthday        CardEffectType = "BIRTHDAY"
	EffectTaxRefund       CardEffectType = "TAX_REFUND"
	EffectLotteryBoost    CardEffectType = "LOTTERY_BOOST"
)

type CardEffect struct {
	Type           CardEffectType `json:"type"`
	Value          int            `json:"value,omitempty"`
	TargetPosition int            `json:"targetPosition,omitempty"`
	NoSalary       bool           `json:"noSalary,omitempty"` // MOVE_TO only: skip the start-tile salary
}

type EventCard struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Emoji       string     `json:"emoji"`
	Effect      CardEffect `json:"effect"`
	IsGood      bool       `json:"isGood"`
}

// ActiveCard is a drawn card waiting for acknowledgement. The turn does not
// complete while one is pending.
type ActiveCard struct {
	Card     EventCard `json:"card"`
	CardType TileType  `json:"cardType"` // FATE or CHANCE
	PlayerId string    `json:"playerId"`
}
