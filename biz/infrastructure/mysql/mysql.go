package mysql

import (
	"database/sql"
	"sync"

	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/util/log"

	_ "github.com/go-sql-driver/mysql"
)

// MySQL连接管理
// 各表的 mapper 共享同一个连接池

var instance *sql.DB
var once sync.Once

// GetDB 构造一个MySQL连接池
func GetDB(config *config.Config) *sql.DB {
	once.Do(func() {
		db, err := sql.Open("mysql", config.MySQL.DSN)
		if err != nil {
			panic(err)
		}
		// 测试连接
		if err = db.Ping(); err != nil {
			panic(err)
		}
		log.Info("MySQL connection established successfully")
		instance = db
	})
	return instance
}
