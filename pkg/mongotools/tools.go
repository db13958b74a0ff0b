package mongotools

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/meetslot/pkg/errors"
)

// And merges field filters into one document.
func And(filters ...bson.M) bson.M {
	s := make(bson.M, len(filters))
	for _, f := range filters {
		for k, v := range f {
			s[k] = v
		}
	}

	return s
}

func All() bson.M {
	return bson.M{}
}

// In matches documents whose field holds any of values, or everything
// when values is empty.
func In[T any](field string, values []T) bson.M {
	if len(values) == 0 {
		return All()
	}
	return bson.M{field: bson.M{"$in": values}}
}

// Overlapping matches documents whose [startField, endField) intersects [from, to).
func Overlapping(startField, endField string, from, to time.Time) bson.M {
	return bson.M{
		startField: bson.M{"$lt": to},
		endField:   bson.M{"$gt": from},
	}
}

func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	var filtered []T
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}
