package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time logs the duration and outcome of a named operation. Defer the
// returned function with a pointer to the caller's named error:
//
//	defer obs.Time(ctx, "osrm.GetRoute")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Error().Str("req_id", reqID).Str("op", name).Dur("dur", dur).Err(*errp).Msg("operation failed")
			return
		}
		log.Debug().Str("req_id", reqID).Str("op", name).Dur("dur", dur).Msg("operation complete")
	}
}
