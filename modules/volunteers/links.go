package volunteers

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/sevaops/temple-console/pkg/types"
)

var DepartmentsLink = types.NavigationItem{
	Name:    "NavigationLinks.Departments",
	Href:    "/volunteers/departments",
	Feature: "volunteers",
}

var TasksLink = types.NavigationItem{
	Name:    "NavigationLinks.Tasks",
	Href:    "/volunteers/tasks",
	Feature: "volunteers",
}

var AssignmentsLink = types.NavigationItem{
	Name:    "NavigationLinks.Assignments",
	Href:    "/volunteers/assignments",
	Feature: "volunteers",
}

var AttendanceLink = types.NavigationItem{
	Name:    "NavigationLinks.Attendance",
	Href:    "/volunteers/attendance",
	Feature: "volunteers",
}

var ApprovalsLink = types.NavigationItem{
	Name:    "NavigationLinks.Approvals",
	Href:    "/volunteers/approvals",
	Feature: "volunteers",
}

var CalendarLink = types.NavigationItem{
	Name:    "NavigationLinks.AttendanceCalendar",
	Href:    "/volunteers/attendance/calendar",
	Feature: "volunteers",
}

var VolunteersLink = types.NavigationItem{
	Name:    "NavigationLinks.Volunteers",
	Icon:    icons.UsersThree(icons.Props{Size: "20"}),
	Href:    "/volunteers/approvals",
	Feature: "volunteers",
	Children: []types.NavigationItem{
		ApprovalsLink,
		DepartmentsLink,
		TasksLink,
		AssignmentsLink,
		AttendanceLink,
		CalendarLink,
	},
}

var NavItems = []types.NavigationItem{
	VolunteersLink,
}
