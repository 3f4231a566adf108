// Package application is the process-wide registry every feature module
// plugs into: controllers, services, navigation, locale bundles, static
// assets and the shared page-lifecycle machinery.
package application

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/sevaops/temple-console/pkg/apiclient"
	"github.com/sevaops/temple-console/pkg/eventbus"
	"github.com/sevaops/temple-console/pkg/feature"
	"github.com/sevaops/temple-console/pkg/spotlight"
	"github.com/sevaops/temple-console/pkg/types"
	"github.com/sevaops/temple-console/pkg/ui"
)

// Controller is one mountable HTTP surface. Key must be unique across
// the application; re-registering a key replaces the previous
// controller.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module is a self-contained feature (events, volunteers) that wires
// its services, controllers, nav links, locales and assets into the
// registry.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	EventPublisher() eventbus.EventBus
	API() *apiclient.Client
	Logger() *logrus.Logger

	Controllers() []Controller
	RegisterControllers(controllers ...Controller)

	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	Services() map[reflect.Type]interface{}

	Middleware() []mux.MiddlewareFunc
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)

	NavItems() []types.NavigationItem
	RegisterNavItems(items ...types.NavigationItem)

	Assets() []*embed.FS
	RegisterAssets(fs ...*embed.FS)
	HashFsAssets() []*hashfs.FS
	RegisterHashFsAssets(fs ...*hashfs.FS)

	Bundle() *i18n.Bundle
	RegisterLocaleFiles(fs ...*embed.FS)
	GetSupportedLanguages() []string

	Spotlight() spotlight.Spotlight
	QuickLinks() *spotlight.QuickLinks

	// Features returns the lazy per-feature registry set; Stylesheets is
	// the document-head model the layout renders from.
	Features() *feature.Set
	Stylesheets() *feature.StylesheetSet
	Navigator() *ui.Navigator
}

type ApplicationOptions struct {
	EventBus           eventbus.EventBus
	Logger             *logrus.Logger
	Bundle             *i18n.Bundle
	API                *apiclient.Client
	SupportedLanguages []string
}

func LoadBundle() *i18n.Bundle {
	// Fallback language is English.
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func defaultSupportedLanguageCodes() []string {
	return []string{"en", "hi"}
}

func New(opts *ApplicationOptions) Application {
	sl := spotlight.New()
	quickLinks := &spotlight.QuickLinks{}
	sl.Register(quickLinks)

	supportedLanguages := opts.SupportedLanguages
	if len(supportedLanguages) == 0 {
		supportedLanguages = defaultSupportedLanguageCodes()
	}

	stylesheets := feature.NewStylesheetSet()

	return &application{
		eventPublisher:     opts.EventBus,
		logger:             opts.Logger,
		api:                opts.API,
		controllers:        make(map[string]Controller),
		services:           make(map[reflect.Type]interface{}),
		quickLinks:         quickLinks,
		spotlight:          sl,
		bundle:             opts.Bundle,
		supportedLanguages: supportedLanguages,
		stylesheets:        stylesheets,
		features:           feature.NewSet(opts.EventBus, stylesheets, opts.Logger),
		navigator:          ui.NewNavigator(opts.Logger),
	}
}

// application with a dynamically extendable service registry
type application struct {
	eventPublisher     eventbus.EventBus
	logger             *logrus.Logger
	api                *apiclient.Client
	services           map[reflect.Type]interface{}
	controllers        map[string]Controller
	middleware         []mux.MiddlewareFunc
	hashFsAssets       []*hashfs.FS
	assets             []*embed.FS
	bundle             *i18n.Bundle
	spotlight          spotlight.Spotlight
	quickLinks         *spotlight.QuickLinks
	navItems           []types.NavigationItem
	supportedLanguages []string
	stylesheets        *feature.StylesheetSet
	features           *feature.Set
	navigator          *ui.Navigator
}

func (app *application) Spotlight() spotlight.Spotlight {
	return app.spotlight
}

func (app *application) QuickLinks() *spotlight.QuickLinks {
	return app.quickLinks
}

func (app *application) API() *apiclient.Client {
	return app.api
}

func (app *application) Logger() *logrus.Logger {
	return app.logger
}

func (app *application) Features() *feature.Set {
	return app.features
}

func (app *application) Stylesheets() *feature.StylesheetSet {
	return app.stylesheets
}

func (app *application) Navigator() *ui.Navigator {
	return app.navigator
}

func (app *application) NavItems() []types.NavigationItem {
	return app.navItems
}

func (app *application) RegisterNavItems(items ...types.NavigationItem) {
	app.navItems = append(app.navItems, items...)
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventPublisher
}

func (app *application) Controllers() []Controller {
	controllers := make([]Controller, 0, len(app.controllers))
	for _, c := range app.controllers {
		controllers = append(controllers, c)
	}
	return controllers
}

func (app *application) Assets() []*embed.FS {
	return app.assets
}

func (app *application) HashFsAssets() []*hashfs.FS {
	return app.hashFsAssets
}

func (app *application) RegisterControllers(controllers ...Controller) {
	for _, c := range controllers {
		app.controllers[c.Key()] = c
	}
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

func (app *application) RegisterHashFsAssets(fs ...*hashfs.FS) {
	app.hashFsAssets = append(app.hashFsAssets, fs...)
}

func (app *application) RegisterAssets(fs ...*embed.FS) {
	app.assets = append(app.assets, fs...)
}

func (app *application) RegisterLocaleFiles(fs ...*embed.FS) {
	for _, localeFs := range fs {
		files, err := listFiles(localeFs, ".")
		if err != nil {
			panic(err)
		}
		for _, file := range files {
			localeFile, err := localeFs.ReadFile(file)
			if err != nil {
				panic(err)
			}
			app.bundle.MustParseMessageFileBytes(localeFile, filepath.Base(file))
		}
	}
}

// RegisterServices registers a new service in the application by its type
func (app *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		serviceType := reflect.TypeOf(service).Elem()
		app.services[serviceType] = service
	}
}

// Service retrieves a service by its type
func (app *application) Service(service interface{}) interface{} {
	serviceType := reflect.TypeOf(service)
	svc, exists := app.services[serviceType]
	if !exists {
		panic(fmt.Sprintf("service %s not found", serviceType.Name()))
	}
	return svc
}

func (app *application) Services() map[reflect.Type]interface{} {
	return app.services
}

func (app *application) Bundle() *i18n.Bundle {
	return app.bundle
}

func (app *application) GetSupportedLanguages() []string {
	return app.supportedLanguages
}

func listFiles(fsys fs.FS, dir string) ([]string, error) {
	var fileList []string

	err := fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			fileList = append(fileList, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading directory %q: %w", dir, err)
	}

	return fileList, nil
}
