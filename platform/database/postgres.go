package database

import (
	"os"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	_ "github.com/joho/godotenv/autoload"

	"github.com/lkaiyu/richman-backend/app/models"
)

func PostgreSQLConnection() *pg.DB {
	return pg.Connect(&pg.Options{
		User:     os.Getenv("DB_USER"),
		Addr:     os.Getenv("DB_ADDR"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: os.Getenv("DB_NAME"),
	})
}

// EnsureSchema creates the users and games tables when they do not exist.
func EnsureSchema(db *pg.DB) error {
	for _, model := range []interface{}{(*models.User)(nil), (*models.Game)(nil)} {
		err := db.Model(model).CreateTable(&orm.CreateTableOptions{IfNotExists: true})
		if err != nil {
			return err
		}
	}
	return nil
}
