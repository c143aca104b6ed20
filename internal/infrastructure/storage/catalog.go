package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tactical-sim/pkg/logger"
)

var ErrSaveNotFound = errors.New("save not found")

// SaveRecord - запись каталога о сделанном сохранении. Сам файл сохранения
// остаётся единственным источником для загрузки; каталог нужен для списка.
type SaveRecord struct {
	ID             uint   `gorm:"primaryKey"`
	SaveID         string `gorm:"uniqueIndex;size:36"`
	Path           string `gorm:"index"`
	Turn           int
	OperativesTurn bool
	State          string
	Width          int
	Height         int
	// Roster - кто был жив на момент сохранения (справочно, при загрузке не используется).
	Roster    datatypes.JSON
	CreatedAt time.Time
}

// RosterEntry - строка справочного состава.
type RosterEntry struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Health int    `json:"health"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// NewSaveRecord собирает запись с новым SaveID.
func NewSaveRecord(path string, st SaveState, width, height int, state string, roster []RosterEntry) (SaveRecord, error) {
	if roster == nil {
		roster = []RosterEntry{}
	}
	raw, err := json.Marshal(roster)
	if err != nil {
		return SaveRecord{}, fmt.Errorf("encode roster: %w", err)
	}
	return SaveRecord{
		SaveID:         uuid.NewString(),
		Path:           path,
		Turn:           st.Turn,
		OperativesTurn: st.OperativesTurn,
		State:          state,
		Width:          width,
		Height:         height,
		Roster:         datatypes.JSON(raw),
	}, nil
}

// RosterEntries декодирует справочный состав.
func (r SaveRecord) RosterEntries() ([]RosterEntry, error) {
	var out []RosterEntry
	if len(r.Roster) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(r.Roster, &out); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return out, nil
}

// Catalog - индекс сохранений в локальной SQLite.
type Catalog struct {
	db *gorm.DB
}

func OpenCatalog(path string) (*Catalog, error) {
	if path == "" {
		path = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	if err := db.AutoMigrate(&SaveRecord{}); err != nil {
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "save_catalog",
		"path":      path,
	}).Debug("Save catalog opened.")
	return &Catalog{db: db}, nil
}

// RecordSave добавляет запись о сохранении.
func (c *Catalog) RecordSave(ctx context.Context, rec SaveRecord) error {
	if rec.SaveID == "" {
		rec.SaveID = uuid.NewString()
	}
	if err := c.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("record save %s: %w", rec.Path, err)
	}
	return nil
}

// List возвращает последние сохранения, новые первыми. limit <= 0 - без ограничения.
func (c *Catalog) List(ctx context.Context, limit int) ([]SaveRecord, error) {
	var out []SaveRecord
	q := c.db.WithContext(ctx).Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return out, nil
}

// Latest - последнее сохранение по пути.
func (c *Catalog) Latest(ctx context.Context, path string) (*SaveRecord, error) {
	var rec SaveRecord
	err := c.db.WithContext(ctx).Where("path = ?", path).Order("id desc").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", path, ErrSaveNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("latest save %s: %w", path, err)
	}
	return &rec, nil
}

func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
