package calendar

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/meetslot/internal/meeting"
	"github.com/nikmy/meetslot/pkg/errors"
	"github.com/nikmy/meetslot/pkg/logger"
	"github.com/nikmy/meetslot/pkg/mongotools"
)

const (
	eventFieldAttendees = "attendees"
	eventFieldStart     = "start"
	eventFieldEnd       = "end"
)

type eventDoc struct {
	Title     string    `bson:"title"`
	Attendees []string  `bson:"attendees"`
	Start     time.Time `bson:"start"`
	End       time.Time `bson:"end"`
}

func newMongoSource(ctx context.Context, log logger.Logger, cfg MongoConfig, loc *time.Location) (*mongoSource, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	return &mongoSource{
		coll: client.Database(cfg.Database).Collection(cfg.Collection),
		loc:  loc,
		log:  log.With("mongo_events"),
	}, nil
}

type mongoSource struct {
	coll *mongo.Collection
	loc  *time.Location
	log  logger.Logger
}

func (m *mongoSource) Events(ctx context.Context, day time.Time, attendees []string) ([]meeting.Event, error) {
	dayStart, dayEnd := dayBounds(day, m.loc)

	c, err := m.coll.Find(ctx, mongotools.And(
		mongotools.Overlapping(eventFieldStart, eventFieldEnd, dayStart, dayEnd),
		mongotools.In(eventFieldAttendees, attendees),
	))
	if err != nil {
		return nil, errors.WrapFail(err, "select events of the day")
	}

	docs, err := mongotools.FilterFunc[eventDoc](ctx, c, nil)
	if err != nil {
		return nil, errors.WrapFail(err, "read events")
	}

	events := toEvents(docs, dayStart, dayEnd)
	m.log.Debugf("%d of %d documents fit into %s", len(events), len(docs), dayStart.Format(time.DateOnly))

	return events, nil
}

func (m *mongoSource) Close(ctx context.Context) error {
	err := m.coll.Database().Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}

func toEvents(docs []eventDoc, dayStart, dayEnd time.Time) []meeting.Event {
	events := make([]meeting.Event, 0, len(docs))
	for _, d := range docs {
		when, ok := project(dayStart, dayEnd, d.Start, d.End)
		if !ok {
			continue
		}

		events = append(events, meeting.Event{
			Title:     d.Title,
			Attendees: d.Attendees,
			When:      when,
		})
	}
	return events
}
