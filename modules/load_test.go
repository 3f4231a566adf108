package modules_test

import (
	"io"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/modules"
	"github.com/sevaops/temple-console/pkg/apiclient"
	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/eventbus"
)

// Locale files are parsed during module registration, so a key that
// go-i18n rejects would abort the whole boot sequence. Loading every
// built-in module here keeps the locale catalogs honest.
func TestLoad_ParsesAllLocaleCatalogs(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	api, err := apiclient.New(apiclient.Options{
		BaseURL:    "http://localhost:8000",
		PathPrefix: "/api/v1",
		Logger:     logger,
	})
	require.NoError(t, err)

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
		Bundle:   application.LoadBundle(),
		API:      api,
	})

	require.NotPanics(t, func() {
		require.NoError(t, modules.Load(app, modules.BuiltInModules...))
	})

	for _, lang := range []string{"en", "hi"} {
		localizer := i18n.NewLocalizer(app.Bundle(), lang)
		for _, key := range []string{
			"Events.Fields.Details",
			"Events.List.Title",
			"Volunteers.Approvals.Title",
		} {
			msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
			require.NoError(t, err, "key %s missing for %s", key, lang)
			require.NotEmpty(t, msg)
		}
	}
}
