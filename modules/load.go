package modules

import (
	"slices"

	"github.com/sevaops/temple-console/modules/events"
	"github.com/sevaops/temple-console/modules/volunteers"
	"github.com/sevaops/temple-console/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		events.NewModule(),
		volunteers.NewModule(),
	}

	NavLinks = slices.Concat(
		events.NavItems,
		volunteers.NavItems,
	)
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
