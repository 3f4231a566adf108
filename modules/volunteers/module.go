package volunteers

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/sevaops/temple-console/internal/assets"
	"github.com/sevaops/temple-console/modules/volunteers/presentation/controllers"
	"github.com/sevaops/temple-console/modules/volunteers/services"
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

	app.Features().DeclareStylesheet("volunteers", assets.StylesheetHref("volunteers"))

	app.RegisterServices(
		services.NewDepartmentService(app.API()),
		services.NewTaskService(app.API()),
		services.NewAssignmentService(app.API()),
		services.NewAttendanceService(app.API()),
		services.NewVolunteerService(app.API()),
		services.NewReportService(app.API()),
	)

	app.RegisterControllers(
		controllers.NewDepartmentsController(app),
		controllers.NewTasksController(app),
		controllers.NewAssignmentsController(app),
		controllers.NewAttendanceController(app),
		controllers.NewApprovalsController(app),
	)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.UsersThree(icons.Props{Size: "20"}), "NavigationLinks.Approvals", "/volunteers/approvals"),
		spotlight.NewQuickLink(nil, "NavigationLinks.Attendance", "/volunteers/attendance"),
		spotlight.NewQuickLink(nil, "NavigationLinks.AttendanceCalendar", "/volunteers/attendance/calendar"),
	)

	return nil
}

func (m *Module) Name() string {
	return "volunteers"
}
