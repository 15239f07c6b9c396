package calendar_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Misenpai/prweb/internal/calendar"
	"github.com/Misenpai/prweb/internal/upstream"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeFetcher struct {
	getFn func(ctx context.Context, cred upstream.Credential, path string, out any) error
	calls int
}

func (f *fakeFetcher) Get(ctx context.Context, cred upstream.Credential, path string, out any) error {
	f.calls++
	return f.getFn(ctx, cred, path, out)
}

func holidayFixture() []calendar.Holiday {
	return []calendar.Holiday{
		{Date: "2024-01-26", Description: "Republic Day", IsWeekend: false},
	}
}

func fetcherReturning(t *testing.T, holidays []calendar.Holiday) *fakeFetcher {
	t.Helper()
	return &fakeFetcher{
		getFn: func(ctx context.Context, cred upstream.Credential, path string, out any) error {
			assert.Equal(t, "/calendar/holidays?year=2024", path)
			payload, _ := json.Marshal(map[string]any{"success": true, "holidays": holidays})
			return json.Unmarshal(payload, out)
		},
	}
}

func TestHolidayService_CacheMissFetchesAndStores(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	fetcher := fetcherReturning(t, holidayFixture())

	expectedPayload, _ := json.Marshal(holidayFixture())
	mock.ExpectGet("holidays:2024").RedisNil()
	mock.ExpectSet("holidays:2024", expectedPayload, 12*time.Hour).SetVal("OK")

	svc := calendar.NewHolidayService(fetcher, rdb)

	holidays, err := svc.ForYear(context.Background(), upstream.TokenCredential("tok"), 2024)

	assert.NoError(t, err)
	assert.Len(t, holidays, 1)
	assert.Equal(t, 1, fetcher.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHolidayService_CacheHitSkipsUpstream(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	fetcher := fetcherReturning(t, holidayFixture())

	cached, _ := json.Marshal(holidayFixture())
	mock.ExpectGet("holidays:2024").SetVal(string(cached))

	svc := calendar.NewHolidayService(fetcher, rdb)

	holidays, err := svc.ForYear(context.Background(), upstream.TokenCredential("tok"), 2024)

	assert.NoError(t, err)
	assert.Len(t, holidays, 1)
	assert.Equal(t, "Republic Day", holidays[0].Description)
	assert.Zero(t, fetcher.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHolidayService_UpstreamRejectionDegradesToEmpty(t *testing.T) {
	fetcher := &fakeFetcher{
		getFn: func(ctx context.Context, cred upstream.Credential, path string, out any) error {
			return json.Unmarshal([]byte(`{"success":false}`), out)
		},
	}

	svc := calendar.NewHolidayService(fetcher, nil)

	holidays, err := svc.ForYear(context.Background(), upstream.SSOCredential("alice", nil), 2024)

	assert.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestHolidayService_CachelessFetch(t *testing.T) {
	fetcher := fetcherReturning(t, holidayFixture())

	svc := calendar.NewHolidayService(fetcher, nil)

	holidays, err := svc.ForYear(context.Background(), upstream.TokenCredential("tok"), 2024)

	assert.NoError(t, err)
	assert.Len(t, holidays, 1)
}
