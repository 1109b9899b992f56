package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/eduverse-api/internal/fallback"
	"github.com/noah-isme/eduverse-api/internal/models"
	"github.com/noah-isme/eduverse-api/pkg/jobs"
)

// WriteJobType tags durability writes on the job queue.
const WriteJobType = "datastore.write"

const defaultWriteTimeout = 10 * time.Second

// FallbackPolicy decides when a read is served from the fallback dataset.
type FallbackPolicy int

const (
	// FallbackOnErrorOrEmpty treats an empty remote result like an outage.
	FallbackOnErrorOrEmpty FallbackPolicy = iota
	// FallbackOnErrorOnly returns an empty remote result as is.
	FallbackOnErrorOnly
)

// PolicyFromConfig maps the DATA_FALLBACK_ON_EMPTY switch to a policy.
func PolicyFromConfig(fallbackOnEmpty bool) FallbackPolicy {
	if fallbackOnEmpty {
		return FallbackOnErrorOrEmpty
	}
	return FallbackOnErrorOnly
}

type profileStore interface {
	List(ctx context.Context) ([]models.User, error)
}

type taskStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
	Upsert(ctx context.Context, task models.Task, ownerID string) error
}

type habitStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Habit, error)
	Upsert(ctx context.Context, habit models.Habit, ownerID string) error
}

type timetableStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.TimeTableEntry, error)
	Create(ctx context.Context, entry models.TimeTableEntry, ownerID string) error
}

type conversationStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Conversation, error)
}

type messageStore interface {
	ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error)
	Create(ctx context.Context, conversationID string, msg models.Message) error
}

type announcementStore interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, announcement models.Announcement) error
}

// WriteDispatcher accepts durability writes for asynchronous execution.
type WriteDispatcher interface {
	Enqueue(job jobs.Job) error
}

// DataRepositories groups the remote store accessors. A nil accessor behaves like an
// unreachable store.
type DataRepositories struct {
	Profiles      profileStore
	Tasks         taskStore
	Habits        habitStore
	Timetable     timetableStore
	Conversations conversationStore
	Messages      messageStore
	Announcements announcementStore
}

// DataServiceParams configures a DataService.
type DataServiceParams struct {
	Repos        DataRepositories
	Fallback     *fallback.Dataset
	Policy       FallbackPolicy
	Writer       WriteDispatcher
	WriteTimeout time.Duration
	Metrics      *MetricsService
	Validator    *validator.Validate
	Logger       *zap.Logger
	Clock        func() time.Time
}

// DataService is the data access layer: reads never fail and writes are optimistic.
type DataService struct {
	repos        DataRepositories
	fallback     *fallback.Dataset
	policy       FallbackPolicy
	writer       WriteDispatcher
	writeTimeout time.Duration
	metrics      *MetricsService
	validator    *validator.Validate
	logger       *zap.Logger
	now          func() time.Time
}

// NewDataService builds a DataService with sane defaults.
func NewDataService(params DataServiceParams) *DataService {
	if params.Fallback == nil {
		params.Fallback = fallback.New(time.Now())
	}
	if params.WriteTimeout <= 0 {
		params.WriteTimeout = defaultWriteTimeout
	}
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Clock == nil {
		params.Clock = time.Now
	}
	return &DataService{
		repos:        params.Repos,
		fallback:     params.Fallback,
		policy:       params.Policy,
		writer:       params.Writer,
		writeTimeout: params.WriteTimeout,
		metrics:      params.Metrics,
		validator:    params.Validator,
		logger:       params.Logger,
		now:          params.Clock,
	}
}

// SetWriter attaches the dispatcher used for durability writes.
func (s *DataService) SetWriter(writer WriteDispatcher) {
	s.writer = writer
}

// readWithFallback runs a remote read and substitutes the seed records on error, or on an
// empty result when the policy asks for it.
func readWithFallback[T any](ctx context.Context, s *DataService, entity fallback.Kind, remote func(context.Context) ([]T, error), seed func() []T) ([]T, models.DataSource) {
	if remote == nil {
		s.logger.Warn("remote store not wired, serving fallback", zap.String("entity", string(entity)))
		s.metrics.RecordFallback(string(entity), FallbackReasonError)
		return seed(), models.SourceFallback
	}

	items, err := remote(ctx)
	if err != nil {
		s.logger.Warn("remote read failed, serving fallback", zap.String("entity", string(entity)), zap.Error(err))
		s.metrics.RecordFallback(string(entity), FallbackReasonError)
		return seed(), models.SourceFallback
	}
	if len(items) == 0 {
		if s.policy == FallbackOnErrorOrEmpty {
			s.logger.Warn("remote read returned no rows, serving fallback", zap.String("entity", string(entity)))
			s.metrics.RecordFallback(string(entity), FallbackReasonEmpty)
			return seed(), models.SourceFallback
		}
		return []T{}, models.SourceRemote
	}
	return items, models.SourceRemote
}

// resolveProvenance stamps a record. A seed identifier is always SEEDED whatever the record
// carries; other records keep their tag, and untagged ones are REMOTE.
func (s *DataService) resolveProvenance(kind fallback.Kind, id string, tagged models.Provenance) models.Provenance {
	if s.fallback.IsSeeded(kind, id) {
		return models.ProvenanceSeeded
	}
	if tagged == models.ProvenanceSeeded {
		return tagged
	}
	return models.ProvenanceRemote
}

// persist schedules the durability write of a record. Seeded records are never written.
// Failures are logged and counted, never returned.
func (s *DataService) persist(ctx context.Context, kind fallback.Kind, id string, provenance models.Provenance, write func(context.Context) error) {
	entity := string(kind)
	if provenance == models.ProvenanceSeeded {
		s.logger.Debug("skipping write of seeded record", zap.String("entity", entity), zap.String("id", id))
		s.metrics.RecordWriteSkipped(entity)
		return
	}
	if write == nil {
		s.logger.Error("remote store not wired, write dropped", zap.String("entity", entity), zap.String("id", id))
		s.metrics.RecordWriteFailure(entity)
		return
	}

	run := WriteFunc(func(jobCtx context.Context) {
		writeCtx, cancel := context.WithTimeout(jobCtx, s.writeTimeout)
		defer cancel()
		if err := write(writeCtx); err != nil {
			s.logger.Error("remote write failed", zap.String("entity", entity), zap.String("id", id), zap.Error(err))
			s.metrics.RecordWriteFailure(entity)
		}
	})

	detached := context.WithoutCancel(ctx)
	if s.writer == nil {
		run(detached)
		return
	}
	job := jobs.Job{ID: uuid.NewString(), Type: WriteJobType, Payload: run}
	if err := s.writer.Enqueue(job); err != nil {
		s.logger.Warn("write queue unavailable, writing inline", zap.String("entity", entity), zap.Error(err))
		go run(detached)
	}
}

// WriteFunc is the payload of a durability write job.
type WriteFunc func(ctx context.Context)

// ExecuteWriteJob is the job queue handler for durability writes. Failures are already
// reported by the write itself.
func ExecuteWriteJob(ctx context.Context, job jobs.Job) error {
	run, ok := job.Payload.(WriteFunc)
	if !ok {
		return nil
	}
	run(ctx)
	return nil
}
