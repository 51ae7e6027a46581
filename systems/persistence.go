package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/gemrun/components"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const recordsKey = "records"

// ErrCorruptRecords is returned when the saved records blob cannot be decoded.
var ErrCorruptRecords = errors.New("corrupt level records")

// LevelRecord is what is remembered about a level between runs.
type LevelRecord struct {
	// Fastest winning time; zero until the level has been won
	BestSeconds float64 `json:"bestSeconds"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Deaths      int     `json:"deaths"`
}

// RecordStore loads and saves the encoded records blob.
type RecordStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// MemoryStore keeps records for the lifetime of the process.
type MemoryStore struct {
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) LoadItem(key string) ([]byte, error) {
	return s.items[key], nil
}

func (s *MemoryStore) SaveItem(key string, data []byte) error {
	s.items[key] = append([]byte(nil), data...)
	return nil
}

var recordStore RecordStore = NewMemoryStore()

// InitPersistence opens the on-disk gdata store. On failure records are kept
// in memory only.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return fmt.Errorf("open save data: %w", err)
	}
	recordStore = m
	return nil
}

// SetRecordStore replaces the store used for level records.
func SetRecordStore(s RecordStore) {
	recordStore = s
}

// LoadRecords returns every saved level record. A missing blob is not an error.
func LoadRecords() (map[string]LevelRecord, error) {
	records := make(map[string]LevelRecord)

	data, err := recordStore.LoadItem(recordsKey)
	if err != nil {
		return records, fmt.Errorf("load records: %w", err)
	}
	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return make(map[string]LevelRecord), fmt.Errorf("parse records: %w: %w", ErrCorruptRecords, err)
	}
	return records, nil
}

// LoadRecord returns the record for one level.
func LoadRecord(level string) (LevelRecord, bool) {
	records, err := LoadRecords()
	if err != nil {
		log.Warn("could not load records", "err", err)
		return LevelRecord{}, false
	}
	r, ok := records[level]
	return r, ok
}

// RecordOutcome folds a finished level instance into its saved record.
func RecordOutcome(level string, outcome components.Outcome, seconds float64, deaths int) (LevelRecord, error) {
	records, err := LoadRecords()
	switch {
	case errors.Is(err, ErrCorruptRecords):
		log.Warn("discarding unreadable records", "err", err)
	case err != nil:
		// Saving now would overwrite records we never saw.
		return LevelRecord{}, err
	}

	r := records[level]
	r.Deaths += deaths
	switch outcome {
	case components.OutcomeWon:
		r.Wins++
		if r.BestSeconds == 0 || seconds < r.BestSeconds {
			r.BestSeconds = seconds
		}
	case components.OutcomeTimeUp:
		r.Losses++
	}
	records[level] = r

	data, err := json.Marshal(records)
	if err != nil {
		return r, fmt.Errorf("encode records: %w", err)
	}
	if err := recordStore.SaveItem(recordsKey, data); err != nil {
		return r, fmt.Errorf("save records: %w", err)
	}
	return r, nil
}
