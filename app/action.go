package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/apperr"
	"github.com/ayoisaiah/tally/internal/auth"
	"github.com/ayoisaiah/tally/internal/config"
	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/internal/osutil"
	"github.com/ayoisaiah/tally/internal/pathutil"
	"github.com/ayoisaiah/tally/internal/stopwatch"
	"github.com/ayoisaiah/tally/internal/ui"
	"github.com/ayoisaiah/tally/report"
	"github.com/ayoisaiah/tally/store"
	"github.com/ayoisaiah/tally/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envTallyNoColor = "TALLY_NO_COLOR"

	noSessionsMsg = "No sessions found for the specified filters"
)

var (
	errUsernameRequired = &apperr.Error{
		Message: "a username is required to log in",
	}

	errPasswordMismatch = &apperr.Error{
		Message: "the passwords do not match",
	}

	errCategoryArg = &apperr.Error{
		Message: "provide the name of the category to add",
	}

	errUserArg = &apperr.Error{
		Message: "provide the id of the user to add",
	}
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

func openStore(cfg *config.Config) (store.DB, error) {
	path := firstNonEmptyString(
		cfg.Storage.Path,
		pathutil.DBFilePath(cfg.Storage.Driver),
	)

	return store.Open(
		cfg.Storage.Driver,
		path,
		store.WithUsers(cfg.UserIDs()...),
	)
}

func newAuthenticator(cfg *config.Config) *auth.Authenticator {
	return auth.New(cfg.Credentials.Users, cfg.Cookie, pathutil.AuthFilePath())
}

// authenticate returns the remembered identity when it matches the requested
// user, and asks for credentials otherwise.
func authenticate(cfg *config.Config) (auth.Identity, error) {
	a := newAuthenticator(cfg)

	if !a.HasUsers() {
		return auth.Identity{Status: auth.Unknown}, auth.ErrNoUsers
	}

	current := a.Current()
	if current.Status == auth.Authenticated &&
		(cfg.CLI.User == "" || cfg.CLI.User == current.UserID) {
		return current, nil
	}

	return login(a, cfg.CLI.User)
}

func login(a *auth.Authenticator, userID string) (auth.Identity, error) {
	username, password, err := auth.Prompt(userID)
	if err != nil {
		return auth.Identity{Status: auth.Unknown}, err
	}

	id, err := a.Login(username, password)
	if err != nil {
		slog.Warn("login failed", slog.String("user", username))
		return id, err
	}

	if id.Status != auth.Authenticated {
		return id, errUsernameRequired
	}

	slog.Info("login succeeded", slog.String("user", id.UserID))

	return id, nil
}

// withSession loads the config, authenticates the user and opens the store
// before running fn. The store is closed afterwards.
func withSession(
	ctx *cli.Context,
	fn func(cfg *config.Config, id auth.Identity, db store.DB) error,
) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	id, err := authenticate(cfg)
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Error("closing store failed", slog.Any("error", cerr))
		}
	}()

	return fn(cfg, id, db)
}

// defaultAction opens the interactive timer.
func defaultAction(ctx *cli.Context) error {
	return withSession(ctx, func(cfg *config.Config, id auth.Identity, db store.DB) error {
		sw := stopwatch.New(stopwatch.WithTarget(cfg.Timer.SessionLength))

		t, err := timer.New(
			db,
			sw,
			id.UserID,
			timer.WithDisplayName(id.DisplayName),
			timer.WithDarkTheme(cfg.Display.DarkTheme),
			timer.WithTwentyFourHourClock(cfg.Display.TwentyFourHour),
			timer.WithAlerter(timer.DesktopAlert{
				Notify: cfg.Timer.Notify,
				Sound:  cfg.Timer.Sound,
			}),
		)
		if err != nil {
			return err
		}

		slog.Info("timer started", slog.String("user", id.UserID))

		return t.Run()
	})
}

// loginAction asks for credentials and remembers the login.
func loginAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	a := newAuthenticator(cfg)
	if !a.HasUsers() {
		return auth.ErrNoUsers
	}

	id, err := login(a, cfg.CLI.User)
	if err != nil {
		return err
	}

	report.Success("Logged in as %s", id.DisplayName)

	return nil
}

// logoutAction forgets the remembered login.
func logoutAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	err = newAuthenticator(cfg).Logout()
	if err != nil {
		return err
	}

	report.Success("Logged out")

	return nil
}

// userAddAction creates or replaces an account in the config file.
func userAddAction(ctx *cli.Context) error {
	id := strings.TrimSpace(ctx.Args().First())
	if id == "" {
		return errUserArg
	}

	// ensures the config file exists
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	var password, confirm string

	name := ctx.String("name")

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Display name").
			Value(&name),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password),
		huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Value(&confirm),
	)).Run()
	if err != nil {
		return err
	}

	if password != confirm {
		return errPasswordMismatch
	}

	err = config.AddUser(pathutil.ConfigFilePath(), id, name, password)
	if err != nil {
		return err
	}

	report.Success("User %s saved", strings.ToLower(id))

	return nil
}

// categoryAddAction adds a category shared by all users.
func categoryAddAction(ctx *cli.Context) error {
	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		return errCategoryArg
	}

	return withSession(ctx, func(_ *config.Config, _ auth.Identity, db store.DB) error {
		if _, err := db.AddCategory(name); err != nil {
			return err
		}

		report.Success("Category %s added", name)

		return nil
	})
}

// categoryListAction prints all categories.
func categoryListAction(ctx *cli.Context) error {
	return withSession(ctx, func(_ *config.Config, _ auth.Identity, db store.DB) error {
		categories, err := db.ListCategories()
		if err != nil {
			return err
		}

		if len(categories) == 0 {
			report.Info("No categories yet. Add one with 'tally category add NAME'")
			return nil
		}

		for _, c := range categories {
			pterm.Println(ui.Cyan(c))
		}

		return nil
	})
}

// historyAction prints the sessions of the logged in user.
func historyAction(ctx *cli.Context) error {
	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	return withSession(ctx, func(_ *config.Config, id auth.Identity, db store.DB) error {
		sessions, err := db.LoadUserSessions(id.UserID)
		if err != nil {
			return err
		}

		sessions = filter.Apply(sessions)

		if ctx.Bool("json") {
			b, err := ui.SessionsJSON(sessions)
			if err != nil {
				return err
			}

			fmt.Fprintln(config.Stdout, string(b))

			return nil
		}

		return printHistory(sessions, ctx.Bool("chart"))
	})
}

func printHistory(sessions []models.Session, chart bool) error {
	if len(sessions) == 0 {
		report.Info(noSessionsMsg)
		return nil
	}

	rows := ui.SessionRows(sessions)

	// efficiency is the last column; the header row is skipped
	for i := 1; i < len(rows); i++ {
		rows[i][len(rows[i])-1] = ui.Efficiency(sessions[i-1].Efficiency)
	}

	ui.PrintTable(rows, config.Stdout)

	if chart {
		ui.PrintChart(sessions, config.Stdout)
	}

	return nil
}

// totalsAction prints the time logged per category by the logged in user.
func totalsAction(ctx *cli.Context) error {
	return withSession(ctx, func(_ *config.Config, id auth.Identity, db store.DB) error {
		categories, err := db.ListCategories()
		if err != nil {
			return err
		}

		totals, err := db.LoadUserTotals(id.UserID)
		if err != nil {
			return err
		}

		if ctx.Bool("json") {
			b, err := ui.TotalsJSON(categories, totals)
			if err != nil {
				return err
			}

			fmt.Fprintln(config.Stdout, string(b))

			return nil
		}

		ui.PrintTable(ui.TotalRows(categories, totals), config.Stdout)

		return nil
	})
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	args, err := shellquote.Split(editor)
	if err != nil {
		return fmt.Errorf("unable to parse editor command: %w", err)
	}

	if len(args) == 0 {
		args = []string{defaultEditor}
	}

	args = append(args, pathutil.ConfigFilePath())

	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func beforeAction(ctx *cli.Context) error {
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envTallyNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	setupLogging(pathutil.LogFilePath(), ctx.Bool("debug"))

	slog.Debug("starting tally", slog.String("version", config.Version))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tally")

	return closeLogging()
}
