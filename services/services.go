package services

import (
	"log/slog"

	"github.com/blogem/emma-oauth/authenticator"
	"github.com/blogem/emma-oauth/instrumentation"
	"github.com/blogem/emma-oauth/repositories"
	"github.com/blogem/emma-oauth/security"
)

// Services holds all service instances
type Services struct {
	Login LoginService
}

// Dependencies are the collaborators shared by the services
type Dependencies struct {
	Provider        authenticator.Provider
	Repositories    *repositories.Repositories
	Instrumentation *instrumentation.Instrumentation
	Auditor         *security.Auditor
	Logger          *slog.Logger
}

// NewServices creates and initializes all service instances
func NewServices(deps Dependencies, opts LoginOptions) *Services {
	return &Services{
		Login: NewLoginService(
			deps.Provider,
			deps.Repositories.States,
			deps.Repositories.Exchanges,
			deps.Instrumentation,
			deps.Auditor,
			deps.Logger,
			opts,
		),
	}
}
