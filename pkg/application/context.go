package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sevaops/temple-console/pkg/constants"
)

var ErrAppNotFound = errors.New("application not found in context")

// UseApp returns the application registry bound by the Provide
// middleware.
func UseApp(ctx context.Context) (Application, error) {
	app, ok := ctx.Value(constants.AppKey).(Application)
	if !ok {
		return nil, ErrAppNotFound
	}
	return app, nil
}
