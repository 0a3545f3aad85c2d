package store

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ayoisaiah/tally/internal/models"
)

// backfillTotals creates a zero total for every category a known user has no
// total for yet. This covers accounts added to the configuration after the
// category was created.
func (c *Client) backfillTotals(tx *bolt.Tx) error {
	totals := tx.Bucket([]byte(totalBucket))

	return tx.Bucket([]byte(categoryBucket)).ForEach(func(_, v []byte) error {
		var cat models.Category

		err := json.Unmarshal(v, &cat)
		if err != nil {
			return err
		}

		for _, user := range c.users {
			k := totalKey(user, cat.ID)
			if totals.Get(k) != nil {
				continue
			}

			err = totals.Put(k, encodeSeconds(0))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// backfillTotals creates a zero total for every category a known user has no
// total for yet.
func (c *SQLClient) backfillTotals(tx *gorm.DB) error {
	if len(c.users) == 0 {
		return nil
	}

	var ids []uint64

	err := tx.Model(&categoryRow{}).Pluck("id", &ids).Error
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	rows := make([]totalRow, 0, len(ids)*len(c.users))

	for _, id := range ids {
		for _, user := range c.users {
			rows = append(rows, totalRow{CategoryID: id, UserID: user})
		}
	}

	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
