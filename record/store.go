package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/service"
)

// queueSize bounds pending async writes; overflow drops the run
const queueSize = 32

// ErrClosed is returned by writes after Stop
var ErrClosed = errors.New("record store closed")

// Run is one completed level attempt
type Run struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Level     string    `gorm:"index;size:128" json:"level"`
	Score     int       `json:"score"`
	Duration  float64   `json:"duration"` // Seconds from level start to completion
	Marble    string    `gorm:"size:64" json:"marble"`

	// Goals maps goal id to the first marble that scored it
	Goals datatypes.JSON `json:"goals"`
}

// NewRun converts a completion event into a record
func NewRun(p *event.LevelCompletePayload) (Run, error) {
	goals, err := json.Marshal(p.Goals)
	if err != nil {
		return Run{}, fmt.Errorf("encoding goals: %w", err)
	}
	return Run{
		Level:    p.Level,
		Score:    p.Score,
		Duration: p.Seconds,
		Marble:   p.Marble,
		Goals:    datatypes.JSON(goals),
	}, nil
}

// GoalOwners decodes the goal map
func (r Run) GoalOwners() (map[int]string, error) {
	out := make(map[int]string)
	if len(r.Goals) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(r.Goals, &out); err != nil {
		return nil, fmt.Errorf("decoding goals: %w", err)
	}
	return out, nil
}

// Open connects to postgres for postgres:// DSNs, otherwise to a sqlite file
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true})
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", dialector.Name(), err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrating runs: %w", err)
	}
	return db, nil
}

// Store persists runs; Submit queues writes for a background writer
type Store struct {
	dsn string
	log zerolog.Logger

	mu     sync.RWMutex
	db     *gorm.DB
	queue  chan Run
	done   chan struct{}
	closed bool
}

var _ service.Service = (*Store)(nil)

func NewStore() *Store {
	return &Store{log: zerolog.Nop()}
}

func (s *Store) Name() string {
	return "record"
}

func (s *Store) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: string DSN, args[1]: zerolog.Logger
func (s *Store) Init(args ...any) error {
	if len(args) > 0 {
		dsn, ok := args[0].(string)
		if !ok {
			return fmt.Errorf("record: dsn must be a string, got %T", args[0])
		}
		s.dsn = dsn
	}
	if len(args) > 1 {
		if log, ok := args[1].(zerolog.Logger); ok {
			s.log = log
		}
	}
	if s.dsn == "" {
		return errors.New("record: empty dsn")
	}
	return nil
}

// Start opens the database and launches the writer
func (s *Store) Start() error {
	db, err := Open(s.dsn)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.db = db
	s.queue = make(chan Run, queueSize)
	s.done = make(chan struct{})
	s.closed = false
	s.mu.Unlock()

	queue, done := s.queue, s.done
	core.Go(func() { s.writer(queue, done) })
	s.log.Info().Str("dialect", db.Dialector.Name()).Msg("Record store opened")
	return nil
}

func (s *Store) writer(queue <-chan Run, done chan<- struct{}) {
	defer close(done)
	for run := range queue {
		if err := s.Save(context.Background(), &run); err != nil {
			s.log.Warn().Err(err).Str("level", run.Level).Msg("Run not saved")
		}
	}
}

// Stop drains queued writes then closes the database
func (s *Store) Stop() error {
	s.mu.Lock()
	if s.closed || s.queue == nil {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.queue)
	done := s.done
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	defer s.mu.Unlock()
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return sqlDB.Close()
}

// Submit queues a run without blocking; false when full or stopped
func (s *Store) Submit(run Run) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed || s.queue == nil {
		return false
	}
	select {
	case s.queue <- run:
		return true
	default:
		s.log.Warn().Str("level", run.Level).Msg("Record queue full, run dropped")
		return false
	}
}

func (s *Store) handle() (*gorm.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}

// Save writes a run synchronously, filling its ID
func (s *Store) Save(ctx context.Context, run *Run) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Best returns the top n runs of a level, highest score then fastest
func (s *Store) Best(ctx context.Context, level string, n int) ([]Run, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	var runs []Run
	err = db.WithContext(ctx).
		Where("level = ?", level).
		Order("score DESC").Order("duration ASC").Order("id ASC").
		Limit(n).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	return runs, nil
}

// Count returns how many runs are stored for a level, all levels when empty
func (s *Store) Count(ctx context.Context, level string) (int64, error) {
	db, err := s.handle()
	if err != nil {
		return 0, err
	}
	q := db.WithContext(ctx).Model(&Run{})
	if level != "" {
		q = q.Where("level = ?", level)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting runs: %w", err)
	}
	return n, nil
}
