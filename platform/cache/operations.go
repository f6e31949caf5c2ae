package cache

import (
	log "github.com/sirupsen/logrus"

	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn *redis.Conn) (string, error) {
	data, err := redis.String((*conn).Do("GET", key))
	if err != nil {
		return "", err
	}
	return data, nil
}

func Set(key string, value interface{}, conn *redis.Conn) bool {
	reply, err := redis.String((*conn).Do("SET", key, value))
	if reply != "OK" || err != nil {
		log.WithField("key", key).Error(err)
		return false
	}
	return true
}

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

func Exists(key string, conn *redis.Conn) bool {
	n, err := redis.Int((*conn).Do("EXISTS", key))
	return err == nil && n > 0
}
