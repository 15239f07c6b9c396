package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Misenpai/prweb/internal/shared/contextutil"
	"github.com/Misenpai/prweb/internal/upstream"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const holidayCacheTTL = 12 * time.Hour

func holidayCacheKey(year int) string {
	return fmt.Sprintf("holidays:%d", year)
}

// Fetcher is the slice of the upstream client this service needs.
type Fetcher interface {
	Get(ctx context.Context, cred upstream.Credential, path string, out any) error
}

type HolidayService interface {
	ForYear(ctx context.Context, cred upstream.Credential, year int) ([]Holiday, error)
}

type holidayService struct {
	client Fetcher
	rdb    *redis.Client
	sf     *singleflight.Group
}

// NewHolidayService caches the yearly holiday feed in Redis; pass a nil
// client to run cacheless.
func NewHolidayService(client Fetcher, rdb *redis.Client) HolidayService {
	return &holidayService{client: client, rdb: rdb, sf: &singleflight.Group{}}
}

// ForYear returns the holiday list for a year. A failed upstream lookup
// degrades to an empty list rather than an error, so the calendar still
// renders with weekend/absent classification only.
func (s *holidayService) ForYear(ctx context.Context, cred upstream.Credential, year int) ([]Holiday, error) {
	cacheKey := holidayCacheKey(year)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var holidays []Holiday
			if err := json.Unmarshal([]byte(cached), &holidays); err == nil {
				return holidays, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		l := contextutil.GetLogger(ctx, nil)

		var out holidaysResponse
		path := fmt.Sprintf("/calendar/holidays?year=%d", year)
		if err := s.client.Get(ctx, cred, path, &out); err != nil {
			return nil, err
		}
		if !out.Success {
			l.Warn("holiday feed rejected the request", zap.Int("year", year))
			return []Holiday{}, nil
		}

		holidays := out.Holidays
		if holidays == nil {
			holidays = []Holiday{}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(holidays); err == nil {
				s.rdb.Set(ctx, cacheKey, payload, holidayCacheTTL)
			}
		}

		return holidays, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Holiday), nil
}
