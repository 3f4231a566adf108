package events

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/sevaops/temple-console/internal/assets"
	"github.com/sevaops/temple-console/modules/events/presentation/controllers"
	"github.com/sevaops/temple-console/modules/events/services"
	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/spotlight"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&localeFiles)

	app.Features().DeclareStylesheet("events", assets.StylesheetHref("events"))

	app.RegisterServices(
		services.NewEventService(app.API()),
	)

	app.RegisterControllers(
		controllers.NewEventsController(app),
	)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.CalendarBlank(icons.Props{Size: "20"}), "NavigationLinks.Events", "/events"),
		spotlight.NewQuickLink(icons.PlusCircle(icons.Props{Size: "20"}), "Events.List.New", "/events/new"),
	)

	return nil
}

func (m *Module) Name() string {
	return "events"
}
