package api

import (
	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/auth"
	"github.com/Ashish-Code-01/internshp-project/internal/config"
	"github.com/Ashish-Code-01/internshp-project/internal/service"
	"github.com/Ashish-Code-01/internshp-project/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Config() *config.Config
	InternRepo() storage.InternRepository
	AchievementRepo() storage.AchievementRepository
	Auth() auth.Authority
}

// Application is the production App: repositories plus ambient services.
type Application struct {
	cfg          *config.Config
	logger       internal.Logger
	interns      storage.InternRepository
	achievements storage.AchievementRepository
	authority    auth.Authority
}

func NewApplication(cfg *config.Config, logger internal.Logger, interns storage.InternRepository, achievements storage.AchievementRepository, authority auth.Authority) *Application {
	return &Application{
		cfg:          cfg,
		logger:       logger,
		interns:      interns,
		achievements: achievements,
		authority:    authority,
	}
}

func (a *Application) Logger() internal.Logger                        { return a.logger }
func (a *Application) Config() *config.Config                         { return a.cfg }
func (a *Application) InternRepo() storage.InternRepository           { return a.interns }
func (a *Application) AchievementRepo() storage.AchievementRepository { return a.achievements }
func (a *Application) Auth() auth.Authority                           { return a.authority }

func authDeps(app App) service.AuthDeps {
	cfg := app.Config()
	return service.AuthDeps{
		Interns:         app.InternRepo(),
		Tokens:          app.Auth(),
		Logger:          app.Logger(),
		CurrentInternID: cfg.CurrentInternID,
		Delay:           cfg.AuthDelay,
		ReferralSuffix:  cfg.ReferralSuffix,
	}
}
