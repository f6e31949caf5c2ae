package models

type Game struct {
	Id     string
	Name   string
	Status string
	Owner  string
}

type GameCreateDto struct {
	Name    string   `json:"name"`
	Players []string `json:"players"`
}

type VerifyGameDto struct {
	Code    string
	User_id string
}
