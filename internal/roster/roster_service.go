package roster

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Misenpai/prweb/internal/shared/apperror"
	"github.com/Misenpai/prweb/internal/shared/contextutil"
	"github.com/Misenpai/prweb/internal/upstream"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fetcher is the slice of the upstream client this service needs.
type Fetcher interface {
	Get(ctx context.Context, cred upstream.Credential, path string, out any) error
}

type Service interface {
	Monthly(ctx context.Context, cred upstream.Credential, month, year int) (MonthlyRoster, error)
}

type service struct {
	client Fetcher
	sf     *singleflight.Group
}

func NewService(client Fetcher) Service {
	return &service{client: client, sf: &singleflight.Group{}}
}

// Monthly fetches the roster for one month. Concurrent fetches for the
// same (credential, month, year) collapse into a single upstream call;
// the dashboard issues overlapping loads when filters change quickly.
func (s *service) Monthly(ctx context.Context, cred upstream.Credential, month, year int) (MonthlyRoster, error) {
	key := fmt.Sprintf("roster:%s:%d-%02d", cred.CacheKey(), year, month)

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		l := contextutil.GetLogger(ctx, nil)

		var out MonthlyRoster
		path := fmt.Sprintf("/pi/users-attendance?month=%d&year=%d", month, year)
		if err := s.client.Get(ctx, cred, path, &out); err != nil {
			l.Error("roster fetch failed", zap.Int("month", month), zap.Int("year", year), zap.Error(err))
			return nil, err
		}
		if !out.Success {
			return nil, apperror.New(apperror.CodeUpstreamError, "Failed to load data", http.StatusBadGateway)
		}

		l.Info("roster loaded",
			zap.Int("month", out.Month),
			zap.Int("year", out.Year),
			zap.Int("total_users", out.TotalUsers),
		)
		return out, nil
	})
	if err != nil {
		return MonthlyRoster{}, err
	}

	return v.(MonthlyRoster), nil
}
