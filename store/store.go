// Package store connects to the data store and manages categories, sessions
// and per-user category totals
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/internal/osutil"
	"github.com/ayoisaiah/tally/internal/timeutil"
)

const (
	categoryBucket = "categories"
	sessionBucket  = "sessions"
	totalBucket    = "totals"
)

// totalKeySep separates the user and category id in a totals key.
const totalKeySep = "\x00"

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	users []string
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string, opts ...Option) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)

	return &Client{
		DB:    db,
		users: o.users,
	}, nil
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// another process holds the file lock
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errTallyRunning
		}

		return nil, err
	}

	return db, nil
}

func (c *Client) EnsureSchema() error {
	return c.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{categoryBucket, sessionBucket, totalBucket} {
			_, err := tx.CreateBucketIfNotExists([]byte(name))
			if err != nil {
				return err
			}
		}

		return c.backfillTotals(tx)
	})
}

func (c *Client) ListCategories() ([]string, error) {
	var names []string

	err := c.View(func(tx *bolt.Tx) error {
		var err error

		names, err = listCategories(tx)

		return err
	})

	return names, err
}

func listCategories(tx *bolt.Tx) ([]string, error) {
	var names []string

	err := tx.Bucket([]byte(categoryBucket)).ForEach(func(k, _ []byte) error {
		names = append(names, string(k))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortNatural(names)

	return names, nil
}

// sortNatural sorts category names so that "Task 2" comes before "Task 10".
func sortNatural(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natural.Less(a, b):
			return -1
		default:
			return 1
		}
	})
}

func (c *Client) AddCategory(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errEmptyCategory
	}

	var names []string

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(categoryBucket))

		if b.Get([]byte(name)) != nil {
			return ErrDuplicateCategory.Fmt(name)
		}

		id, err := b.NextSequence()
		if err != nil {
			return err
		}

		value, err := json.Marshal(models.Category{ID: id, Name: name})
		if err != nil {
			return err
		}

		err = b.Put([]byte(name), value)
		if err != nil {
			return err
		}

		totals := tx.Bucket([]byte(totalBucket))

		for _, user := range c.users {
			err = totals.Put(totalKey(user, id), encodeSeconds(0))
			if err != nil {
				return err
			}
		}

		names, err = listCategories(tx)

		return err
	})

	return names, err
}

func (c *Client) LoadUserSessions(user string) ([]models.Session, error) {
	var sessions []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket)).Bucket([]byte(user))
		if b == nil {
			return nil
		}

		return b.ForEach(func(_, v []byte) error {
			var sess models.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	models.SortSessions(sessions)

	return sessions, nil
}

func (c *Client) LoadUserTotals(user string) (models.Totals, error) {
	var totals models.Totals

	err := c.View(func(tx *bolt.Tx) error {
		var err error

		totals, err = userTotals(tx, user)

		return err
	})

	return totals, err
}

func (c *Client) AppendSession(sess *models.Session) (models.Totals, error) {
	var totals models.Totals

	err := c.Update(func(tx *bolt.Tx) error {
		cat, err := getCategory(tx, sess.Category)
		if err != nil {
			return err
		}

		value, err := json.Marshal(sess)
		if err != nil {
			return err
		}

		userSessions, err := tx.Bucket([]byte(sessionBucket)).
			CreateBucketIfNotExists([]byte(sess.UserID))
		if err != nil {
			return err
		}

		seq, err := userSessions.NextSequence()
		if err != nil {
			return err
		}

		key := append(timeutil.ToKey(sess.StartTime), encodeSeconds(int64(seq))...)

		err = userSessions.Put(key, value)
		if err != nil {
			return err
		}

		b := tx.Bucket([]byte(totalBucket))
		k := totalKey(sess.UserID, cat.ID)

		err = b.Put(k, encodeSeconds(decodeSeconds(b.Get(k))+sess.DurationSeconds))
		if err != nil {
			return err
		}

		totals, err = userTotals(tx, sess.UserID)

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

func getCategory(tx *bolt.Tx, name string) (*models.Category, error) {
	v := tx.Bucket([]byte(categoryBucket)).Get([]byte(name))
	if v == nil {
		return nil, ErrUnknownCategory.Fmt(name)
	}

	var cat models.Category

	err := json.Unmarshal(v, &cat)
	if err != nil {
		return nil, err
	}

	return &cat, nil
}

// categoryNames maps category ids to names.
func categoryNames(tx *bolt.Tx) (map[uint64]string, error) {
	names := make(map[uint64]string)

	err := tx.Bucket([]byte(categoryBucket)).ForEach(func(_, v []byte) error {
		var cat models.Category

		err := json.Unmarshal(v, &cat)
		if err != nil {
			return err
		}

		names[cat.ID] = cat.Name

		return nil
	})

	return names, err
}

func userTotals(tx *bolt.Tx, user string) (models.Totals, error) {
	names, err := categoryNames(tx)
	if err != nil {
		return nil, err
	}

	totals := make(models.Totals)
	prefix := []byte(user + totalKeySep)

	cur := tx.Bucket([]byte(totalBucket)).Cursor()

	for k, v := cur.Seek(prefix); k != nil && strings.HasPrefix(string(k), string(prefix)); k, v = cur.Next() {
		if len(k)-len(prefix) != 8 {
			continue
		}

		id := binary.BigEndian.Uint64(k[len(prefix):])

		name, ok := names[id]
		if !ok {
			continue
		}

		totals[name] = decodeSeconds(v)
	}

	return totals, nil
}

func totalKey(user string, categoryID uint64) []byte {
	key := make([]byte, 0, len(user)+len(totalKeySep)+8)
	key = append(key, user...)
	key = append(key, totalKeySep...)

	return binary.BigEndian.AppendUint64(key, categoryID)
}

func encodeSeconds(secs int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(secs))
}

func decodeSeconds(b []byte) int64 {
	if len(b) != 8 {
		return 0
	}

	return int64(binary.BigEndian.Uint64(b))
}
