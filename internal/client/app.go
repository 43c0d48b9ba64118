package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MKhiriev/climate-scenarios/internal/adapter"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/models"
	"github.com/goccy/go-json"
)

// TokenEnv names the variable from which a previously issued token is read
// for authenticated commands.
const TokenEnv = "CLIMATE_API_TOKEN"

const usage = `usage: climate-client [-addr URL] <command> [flags]

commands:
  health                               server liveness and version
  scenarios [-publisher N] [-region N] [-stakeholder N] [-sector N]
            [-type NAME] [-temperature T] [-from YEAR] [-to YEAR]
  scenario <id>                        one scenario with its associations
  options                              values accepted by the listing filters
  register -username U -email E -password P
  login -username U -password P        prints the token and the user
  me                                   identity of $CLIMATE_API_TOKEN
`

type command func(ctx context.Context, args []string) (any, error)

// App dispatches subcommands to the API client.
type App struct {
	api    adapter.APIClient
	out    io.Writer
	logger *logger.Logger

	commands map[string]command
}

func NewApp(api adapter.APIClient, out io.Writer, logger *logger.Logger) *App {
	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]command{
		"health":    a.health,
		"scenarios": a.scenarios,
		"scenario":  a.scenario,
		"options":   a.options,
		"register":  a.register,
		"login":     a.login,
		"me":        a.me,
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	if token := os.Getenv(TokenEnv); token != "" && a.api.Token() == "" {
		a.api.SetToken(token)
	}

	result, err := cmd(ctx, args[1:])
	if err != nil {
		return err
	}

	return a.print(result)
}

func (a *App) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func (a *App) health(ctx context.Context, _ []string) (any, error) {
	return a.api.Health(ctx)
}

func (a *App) scenarios(ctx context.Context, args []string) (any, error) {
	fs := flag.NewFlagSet("scenarios", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var (
		publisher, region, stakeholder, sector int64
		from, to                               int
		typeName, temperature                  string
	)
	fs.Int64Var(&publisher, "publisher", 0, "publisher id")
	fs.Int64Var(&region, "region", 0, "region id")
	fs.Int64Var(&stakeholder, "stakeholder", 0, "stakeholder id")
	fs.Int64Var(&sector, "sector", 0, "sector id")
	fs.StringVar(&typeName, "type", "", "scenario type")
	fs.StringVar(&temperature, "temperature", "", "temperature target")
	fs.IntVar(&from, "from", 0, "earliest target year")
	fs.IntVar(&to, "to", 0, "latest target year")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var f models.ScenarioFilters
	if publisher != 0 {
		f.PublisherID = &publisher
	}
	if region != 0 {
		f.RegionID = &region
	}
	if stakeholder != 0 {
		f.StakeholderID = &stakeholder
	}
	if sector != 0 {
		f.SectorID = &sector
	}
	if typeName != "" {
		f.TypeName = &typeName
	}
	if temperature != "" {
		f.TemperatureTarget = &temperature
	}
	if from != 0 {
		y := int32(from)
		f.YearFrom = &y
	}
	if to != 0 {
		y := int32(to)
		f.YearTo = &y
	}

	return a.api.ListScenarios(ctx, f)
}

func (a *App) scenario(ctx context.Context, args []string) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: scenario id", ErrMissingArg)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario id %q: %w", args[0], err)
	}
	return a.api.GetScenario(ctx, id)
}

func (a *App) options(ctx context.Context, _ []string) (any, error) {
	return a.api.FilterOptions(ctx)
}

func (a *App) register(ctx context.Context, args []string) (any, error) {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var req models.RegisterRequest
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return a.api.Register(ctx, req)
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var req models.LoginRequest
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	resp, err := a.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Int64("id", resp.User.ID).Msg("logged in")

	return resp, nil
}

func (a *App) me(ctx context.Context, _ []string) (any, error) {
	return a.api.Me(ctx)
}
