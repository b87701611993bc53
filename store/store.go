// store keeps translation results in a bolt database, so records
// which were already processed are not translated again.
package store

import (
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

// RESULTS is the bucket name for all records.
var RESULTS = []byte("results")

// Record stores the result of processing a single DNA sequence.
type Record struct {
	Name       string    `json:"name"`
	Table      string    `json:"table"`
	DNA        string    `json:"dna"`
	Complement string    `json:"complement"`
	RNA        string    `json:"rna"`
	Protein    string    `json:"protein"`
	Letters    string    `json:"letters"`
	Unmatched  []int     `json:"unmatched,omitempty"`
	Saved      time.Time `json:"saved"`
}

// Key returns the database key of a record translated with a table.
func Key(name, table string) []byte {
	return []byte(table + "\x00" + name)
}

// Store saves and loads records.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) a database file.
func Open(fn string) (*Store, error) {
	db, err := bolt.Open(fn, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// New creates a new Store. A store with nil database does nothing.
func New(db *bolt.DB) *Store {
	return &Store{db: db}
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save saves the record under the key.
func (s *Store) Save(key []byte, r *Record) error {
	r.Saved = time.Now()
	b, err := json.Marshal(r)
	if err != nil {
		log.Error("Error serializing record", err)
		return err
	}
	err = SaveData(s.db, key, b)
	if err != nil {
		log.Error("Error saving record", err)
	}
	return err
}

// Load returns the record stored under the key, or nil if there is
// none.
func (s *Store) Load(key []byte) (*Record, error) {
	var r *Record

	b, err := LoadData(s.db, key)
	if err != nil || b == nil {
		return nil, err
	}

	err = json.Unmarshal(b, &r)
	if err != nil {
		return nil, err
	}

	if r == nil {
		return nil, nil
	}

	log.Debugf("Found stored record %q (saved %v)", r.Name, r.Saved)
	return r, nil
}

// Keys returns all stored keys.
func (s *Store) Keys() (keys []string, err error) {
	if s.db == nil {
		return nil, nil
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(RESULTS)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(RESULTS)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(RESULTS)
		if b == nil {
			return nil
		}

		// v is only valid during the transaction
		if v := b.Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
