package fieldtrip

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Misenpai/prweb/internal/shared/apperror"
	"github.com/Misenpai/prweb/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Save(ctx context.Context, employeeNumber string, trips []FieldTrip) error
}

type service struct{}

func NewService() Service {
	return &service{}
}

// Save validates the requested trips and records them in the log.
// TODO: forward to PUT /pi/field-trips once the upstream endpoint accepts
// writes; until then field trips are persisted out of band.
func (s *service) Save(ctx context.Context, employeeNumber string, trips []FieldTrip) error {
	if employeeNumber == "" {
		return apperror.RequiredField("Employee Number")
	}

	for i, trip := range trips {
		start, err := time.Parse("2006-01-02", trip.StartDate)
		if err != nil {
			return apperror.New(apperror.CodeInvalidInput,
				fmt.Sprintf("field trip %d has an invalid start date", i+1), http.StatusBadRequest)
		}
		end, err := time.Parse("2006-01-02", trip.EndDate)
		if err != nil {
			return apperror.New(apperror.CodeInvalidInput,
				fmt.Sprintf("field trip %d has an invalid end date", i+1), http.StatusBadRequest)
		}
		if end.Before(start) {
			return apperror.New(apperror.CodeInvalidInput,
				fmt.Sprintf("field trip %d ends before it starts", i+1), http.StatusBadRequest)
		}
	}

	l := contextutil.GetLogger(ctx, nil)
	l.Info("field trips saved",
		zap.String("employee_number", employeeNumber),
		zap.Int("count", len(trips)),
	)

	return nil
}
