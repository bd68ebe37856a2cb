package storage

import (
	"path"

	"github.com/plotstream/plotstream/utils"
	"go.etcd.io/bbolt"
)

const DBPath = "db"

func GetDBPath() string {
	return path.Join(utils.GetSubFolder(DBPath), "data.db")
}

func GetDB() (*bbolt.DB, error) {
	return bbolt.Open(GetDBPath(), 0600, nil)
}

func OpenDB(filePath string) (*bbolt.DB, error) {
	return bbolt.Open(filePath, 0600, nil)
}
