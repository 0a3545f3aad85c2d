package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/internal/timeutil"
)

type categoryRow struct {
	Name string `gorm:"uniqueIndex;not null"`
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
}

func (categoryRow) TableName() string {
	return "categories"
}

type sessionRow struct {
	StartedAt       time.Time `gorm:"not null"`
	EndedAt         time.Time `gorm:"not null"`
	Date            string    `gorm:"not null;index:idx_session_log_order,priority:2"`
	StartTime       string    `gorm:"not null;index:idx_session_log_order,priority:3"`
	EndTime         string    `gorm:"not null"`
	Duration        string    `gorm:"not null"`
	WorkDone        string
	UserID          string `gorm:"not null;index:idx_session_log_order,priority:1"`
	Category        categoryRow
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	CategoryID      uint64 `gorm:"not null"`
	DurationSeconds int64  `gorm:"not null"`
	Efficiency      int
}

func (sessionRow) TableName() string {
	return "session_log"
}

// totalRow is keyed on both the category and the user so each user keeps an
// independent total per category.
type totalRow struct {
	UserID       string `gorm:"primaryKey"`
	CategoryID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	TotalSeconds int64  `gorm:"not null;default:0"`
}

func (totalRow) TableName() string {
	return "total_times"
}

// SQLClient is a SQLite database client.
type SQLClient struct {
	db    *gorm.DB
	users []string
}

// NewSQLClient opens the SQLite database at dbPath.
func NewSQLClient(dbPath string, opts ...Option) (*SQLClient, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SQLite serialises writers, a single connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	o := buildOptions(opts)

	return &SQLClient{
		db:    db,
		users: o.users,
	}, nil
}

func (c *SQLClient) EnsureSchema() error {
	err := c.db.AutoMigrate(&categoryRow{}, &sessionRow{}, &totalRow{})
	if err != nil {
		return err
	}

	return c.db.Transaction(c.backfillTotals)
}

func (c *SQLClient) ListCategories() ([]string, error) {
	return listCategoryRows(c.db)
}

func listCategoryRows(tx *gorm.DB) ([]string, error) {
	var names []string

	err := tx.Model(&categoryRow{}).Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}

	sortNatural(names)

	return names, nil
}

func (c *SQLClient) AddCategory(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errEmptyCategory
	}

	var names []string

	err := c.db.Transaction(func(tx *gorm.DB) error {
		var count int64

		err := tx.Model(&categoryRow{}).Where("name = ?", name).Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrDuplicateCategory.Fmt(name)
		}

		cat := categoryRow{Name: name}

		err = tx.Create(&cat).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateCategory.Fmt(name)
			}

			return err
		}

		if len(c.users) > 0 {
			rows := make([]totalRow, len(c.users))
			for i, user := range c.users {
				rows[i] = totalRow{CategoryID: cat.ID, UserID: user}
			}

			err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
			if err != nil {
				return err
			}
		}

		names, err = listCategoryRows(tx)

		return err
	})

	return names, err
}

func (c *SQLClient) LoadUserSessions(user string) ([]models.Session, error) {
	var rows []sessionRow

	err := c.db.Preload("Category").
		Where("user_id = ?", user).
		Order("date DESC, start_time DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]models.Session, len(rows))

	for i := range rows {
		r := rows[i]

		sessions[i] = models.Session{
			StartTime:       r.StartedAt.Local(),
			EndTime:         r.EndedAt.Local(),
			Category:        r.Category.Name,
			WorkDone:        r.WorkDone,
			UserID:          r.UserID,
			DurationSeconds: r.DurationSeconds,
			Efficiency:      r.Efficiency,
		}
	}

	return sessions, nil
}

func (c *SQLClient) LoadUserTotals(user string) (models.Totals, error) {
	return userTotalRows(c.db, user)
}

func userTotalRows(tx *gorm.DB, user string) (models.Totals, error) {
	var rows []struct {
		Name         string
		TotalSeconds int64
	}

	err := tx.Table("total_times").
		Select("categories.name AS name, total_times.total_seconds AS total_seconds").
		Joins("JOIN categories ON categories.id = total_times.category_id").
		Where("total_times.user_id = ?", user).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(models.Totals, len(rows))
	for _, r := range rows {
		totals[r.Name] = r.TotalSeconds
	}

	return totals, nil
}

func (c *SQLClient) AppendSession(sess *models.Session) (models.Totals, error) {
	var totals models.Totals

	err := c.db.Transaction(func(tx *gorm.DB) error {
		var cat categoryRow

		err := tx.Where("name = ?", sess.Category).First(&cat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownCategory.Fmt(sess.Category)
		}

		if err != nil {
			return err
		}

		row := sessionRow{
			StartedAt:       sess.StartTime,
			EndedAt:         sess.EndTime,
			Date:            sess.Date(),
			StartTime:       sess.Start(),
			EndTime:         sess.End(),
			Duration:        timeutil.FormatDuration(sess.DurationSeconds),
			WorkDone:        sess.WorkDone,
			UserID:          sess.UserID,
			CategoryID:      cat.ID,
			DurationSeconds: sess.DurationSeconds,
			Efficiency:      sess.Efficiency,
		}

		err = tx.Omit("Category").Create(&row).Error
		if err != nil {
			return err
		}

		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "category_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"total_seconds": gorm.Expr("total_seconds + ?", sess.DurationSeconds),
			}),
		}).Create(&totalRow{
			CategoryID:   cat.ID,
			UserID:       sess.UserID,
			TotalSeconds: sess.DurationSeconds,
		}).Error
		if err != nil {
			return err
		}

		totals, err = userTotalRows(tx, sess.UserID)

		return err
	})
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			return nil, err
		}

		return nil, errPersistence.Wrap(err)
	}

	return totals, nil
}

func (c *SQLClient) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
