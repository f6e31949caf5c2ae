package queries

import (
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"
	log "github.com/sirupsen/logrus"

	"github.com/lkaiyu/richman-backend/app/models"
	"github.com/lkaiyu/richman-backend/platform/cache"
	"github.com/lkaiyu/richman-backend/platform/game"
)

func stateKey(gameId string) string {
	return fmt.Sprintf("%s.state", gameId)
}

func VerifyGame(id string, db *pg.DB) bool {
	g := &models.Game{Id: id}
	err := db.Model(g).WherePK().Select()
	return err == nil
}

func CreateGame(g *models.Game, db *pg.DB) error {
	_, err := db.Model(g).Insert()
	return err
}

// SaveState persists the full snapshot for a game under its code. The live
// state of every running game lives in Redis; Postgres only keeps the game
// record.
func SaveState(gameId string, state *models.GameState, conn *redis.Conn) error {
	data, err := game.Snapshot(state)
	if err != nil {
		return err
	}
	if !cache.Set(stateKey(gameId), data, conn) {
		return fmt.Errorf("failed saving state for game %s", gameId)
	}
	return nil
}

// HasState reports whether a live snapshot exists for the game.
func HasState(gameId string, conn *redis.Conn) bool {
	return cache.Exists(stateKey(gameId), conn)
}

// LoadState restores a game's snapshot, tolerating records written by older
// schema versions.
func LoadState(gameId string, conn *redis.Conn) (*models.GameState, error) {
	data, err := cache.Get(stateKey(gameId), conn)
	if err != nil {
		return nil, err
	}
	return game.LoadSnapshot([]byte(data))
}

// FinishGame marks the game record done. The snapshot stays around so the
// final board can still be fetched; DeleteGame removes it.
func FinishGame(gameId string, db *pg.DB) {
	g := &models.Game{Id: gameId}
	_, err := db.Model(g).WherePK().Set("status = ?", "finished").Update()
	if err != nil {
		log.WithField("game", gameId).Error(err)
	}
}

func DeleteGame(gameId string, db *pg.DB, conn *redis.Conn) {
	g := &models.Game{Id: gameId}
	if _, err := db.Model(g).WherePK().Delete(); err != nil {
		log.WithField("game", gameId).Error(err)
	}
	if err := cache.Del(stateKey(gameId), conn); err != nil {
		log.WithField("game", gameId).Error(err)
	}
}
