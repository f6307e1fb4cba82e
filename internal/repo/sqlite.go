package repo

import (
	"database/sql"
	"errors"

	"FileNest/config"
	"FileNest/model"
	"FileNest/utils"

	sqliteGo "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var Db *gorm.DB

const customDriverName = "sqlite3_filenest"

func init() {
	// Cascades from users to files/notes/tokens depend on this pragma.
	sql.Register(customDriverName,
		&sqliteGo.SQLiteDriver{
			ConnectHook: func(conn *sqliteGo.SQLiteConn) error {
				if _, err := conn.Exec("PRAGMA foreign_keys = ON", nil); err != nil {
					return err
				}
				_, err := conn.Exec("PRAGMA busy_timeout = 5000", nil)
				return err
			},
		},
	)
}

// autoMigrateAll migrates all database models.
func autoMigrateAll(db *gorm.DB) {
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.File{})
	db.AutoMigrate(&model.Note{})
	db.AutoMigrate(&model.ShareToken{})
	db.AutoMigrate(&model.NoteShareToken{})
	db.AutoMigrate(&model.Session{})
}

// seedRootAdmin creates the root admin account if missing.
func seedRootAdmin(db *gorm.DB) {
	var existing model.User
	err := db.Where("username = ?", model.RootUsername).First(&existing).Error
	if err == nil {
		if !existing.IsAdmin {
			db.Model(&existing).Update("is_admin", true)
		}
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithError(err).Fatal("look up root admin failed")
	}

	root := model.User{
		Username:     model.RootUsername,
		PasswordHash: utils.GetPwd(model.RootUsername),
		IsAdmin:      true,
	}
	if err := db.Create(&root).Error; err != nil {
		log.WithError(err).Fatal("create root admin failed")
	}
	log.Info("default admin account created: root")
}

// open builds a gorm handle over the extended sqlite driver.
func open(dsn string, logMode gormLogger.LogLevel) (*gorm.DB, error) {
	conn, err := sql.Open(customDriverName, dsn)
	if err != nil {
		return nil, err
	}
	return gorm.Open(sqlite.Dialector{
		DriverName: customDriverName,
		DSN:        dsn,
		Conn:       conn,
	}, &gorm.Config{
		Logger: gormLogger.Default.LogMode(logMode),
	})
}

// InitSqlite initializes the main database connection.
func InitSqlite() {
	db, err := open(config.AppConfig.DBPath, gormLogger.Warn)
	if err != nil {
		log.WithError(err).Fatal("init sqlite fail")
	}

	autoMigrateAll(db)
	seedRootAdmin(db)
	log.Info("init sqlite success")
	Db = db
}

// InitSqliteTest initializes a throwaway database for tests.
func InitSqliteTest(dsn string) {
	db, err := open(dsn, gormLogger.Silent)
	if err != nil {
		log.WithError(err).Fatal("init test sqlite fail")
	}

	autoMigrateAll(db)
	seedRootAdmin(db)
	Db = db
}
