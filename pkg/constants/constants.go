package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	AppKey       ContextKey = "app"
	LoggerKey    ContextKey = "logger"
	ParamsKey    ContextKey = "params"
	PageContext  ContextKey = "pageCtx"
	RequestStart ContextKey = "requestStart"
	SessionIDKey ContextKey = "sessionID"
	NavItemsKey  ContextKey = "navItems"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())
