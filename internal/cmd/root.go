package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-blog-client/categories"
	"github.com/jrsteele09/go-blog-client/client"
	"github.com/jrsteele09/go-blog-client/internal/config"
	"github.com/jrsteele09/go-blog-client/posts"
	"github.com/jrsteele09/go-blog-client/sessions"
	"github.com/jrsteele09/go-blog-client/tags"
)

var rootCmd = &cobra.Command{
	Use:   "blogcli",
	Short: "Command-line client for the blog platform",
	Long: `blogcli is a command-line client for the blog platform backend.

It keeps a login session on disk, lists and filters posts, manages
categories and tags, and edits the posts you own.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		displayAppName()
		_ = cmd.Help()
	},
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func configureLogging() {
	level, err := zerolog.ParseLevel(config.New().GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

func displayAppName() {
	appFigure := figure.NewFigure(config.New().GetAppName(), "cybermedium", true)
	appFigure.Print()
	fmt.Println()
}

// authAPI is the credential-exchange slice of the REST client.
type authAPI interface {
	Login(email, password string) (token string, lifetime time.Duration, err error)
	Register(name, email, password, matchingPassword string) error
}

// runtime wires the session manager and the backend repos for one command
// run. Each CLI invocation is a fresh process, so the manager's startup
// check is also the per-run session validity checkpoint. Commands depend on
// the repo interfaces, not on the REST client directly.
type runtime struct {
	cfg        config.Config
	manager    *sessions.Manager
	auth       authAPI
	posts      posts.Repo
	categories categories.Repo
	tags       tags.Repo
}

// buildRuntime is swapped out in tests to run commands against fakes.
var buildRuntime = newRuntime

func newRuntime() *runtime {
	cfg := config.New()
	manager := sessions.NewManager(sessions.NewFileRepo(cfg.GetDataFolder()))
	manager.Subscribe(func(authenticated bool) {
		log.Debug().Bool("authenticated", authenticated).Msg("session state changed")
	})

	api := client.New(cfg, manager.TokenSource())
	return &runtime{
		cfg:        cfg,
		manager:    manager,
		auth:       api,
		posts:      api.Posts(),
		categories: api.Categories(),
		tags:       api.Tags(),
	}
}
