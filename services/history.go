package services

import (
	"sync"
	"time"

	"school-readiness-api/models"
)

// DailyCapacity bounds each day's bucket; the oldest record is evicted when a
// new one would exceed it.
const DailyCapacity = 30

const dayKeyLayout = "20060102"

// Clock supplies the current local time. Injected so tests can pin the day.
type Clock func() time.Time

// HistoryStore keeps an ordered, size-bounded bucket of prediction records per
// calendar day. Buckets for past days stay in memory for the process lifetime;
// nothing is persisted across restarts.
type HistoryStore struct {
	mu   sync.Mutex
	now  Clock
	days map[string][]models.PredictionRecord
}

func NewHistoryStore(now Clock) *HistoryStore {
	if now == nil {
		now = time.Now
	}
	return &HistoryStore{
		now:  now,
		days: make(map[string][]models.PredictionRecord),
	}
}

// Append adds rec to the bucket of its timestamp's day, evicting the oldest
// record if the bucket is full. Eviction happens atomically with insertion
// under the store lock.
func (s *HistoryStore) Append(rec models.PredictionRecord) {
	key := rec.Timestamp.Format(dayKeyLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := append(s.days[key], rec)
	if len(bucket) > DailyCapacity {
		copy(bucket, bucket[1:])
		bucket = bucket[:DailyCapacity]
		historyEvictions.Inc()
	}
	s.days[key] = bucket
}

// Snapshot returns a copy of the bucket for the given date, so readers never
// observe a concurrent append mid-write.
func (s *HistoryStore) Snapshot(date time.Time) []models.PredictionRecord {
	key := date.Format(dayKeyLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.days[key]
	out := make([]models.PredictionRecord, len(bucket))
	copy(out, bucket)
	return out
}

// Today returns a snapshot of the current day's bucket.
func (s *HistoryStore) Today() []models.PredictionRecord {
	return s.Snapshot(s.now())
}

// Now exposes the store clock so collaborators stamp records consistently.
func (s *HistoryStore) Now() time.Time {
	return s.now()
}
