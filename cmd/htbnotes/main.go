package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"text/tabwriter"

	"htbnotes/internal"
	"htbnotes/internal/di"
	"htbnotes/internal/htb"
	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/structures"
	"htbnotes/internal/vault"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debugMode  bool

	loginToken   string
	importFolder string
	noOpen       bool

	app *internal.App
)

var rootCmd = &cobra.Command{
	Use:   "htbnotes",
	Short: "Import HackTheBox machines, challenges and sherlocks as markdown notes",
	Long: `htbnotes pulls machine, challenge and sherlock records from the
HackTheBox API and turns them into markdown notes in a local vault,
filling user-configurable {{field}} templates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = di.InitApp(&structures.CliFlags{ConfigPath: configPath, DebugMode: debugMode})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.Close()
		}
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Validate an API token and store it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginToken == "" {
			return errors.New("--token is required")
		}
		user, err := app.Auth.Login(cmd.Context(), loginToken)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s, %d points)\n", user.Name, user.Rank, user.Points)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Auth.Logout(); err != nil {
			return err
		}
		fmt.Println("Token cleared")
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import {machine|challenge|sherlock} <id-or-name>",
	Short: "Import a record as a markdown note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}
		return runImport(cmd.Context(), kind, args[1])
	},
}

var searchCmd = &cobra.Command{
	Use:   "search {machine|challenge|sherlock} <query>",
	Short: "Search records by name, id or category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}
		items, err := searchItems(cmd.Context(), kind, args[1])
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Printf("No matches; try `htbnotes refresh %s` to update the cache\n", kind)
			return nil
		}
		printItems(items)
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh {machine|challenge|sherlock}",
	Short: "Replace the cached record list from the API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}
		var count int
		switch kind {
		case models.KindMachine:
			count, err = app.Machines.RefreshCache(cmd.Context())
		case models.KindChallenge:
			count, err = app.Challenges.RefreshCache(cmd.Context())
		case models.KindSherlock:
			count, err = app.Sherlocks.RefreshCache(cmd.Context())
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s cache refreshed: %d entries\n", kind.Title(), count)
		return nil
	},
}

func runImport(ctx context.Context, kind models.Kind, input string) error {
	var (
		fileVars map[string]string
		content  func(targetPath string) string
	)
	switch kind {
	case models.KindMachine:
		m, err := app.Machines.Load(ctx, input)
		if err != nil {
			return err
		}
		fileVars = vault.MachineFileVars(&m)
		content = func(p string) string { return app.Machines.GenerateContent(&m, p) }
	case models.KindChallenge:
		c, err := app.Challenges.Load(ctx, input)
		if err != nil {
			return err
		}
		fileVars = vault.ChallengeFileVars(&c)
		content = func(p string) string { return app.Challenges.GenerateContent(&c, p) }
	case models.KindSherlock:
		s, err := app.Sherlocks.Load(ctx, input)
		if err != nil {
			return err
		}
		fileVars = vault.SherlockFileVars(&s)
		content = func(p string) string { return app.Sherlocks.GenerateContent(&s, p) }
	}

	cfg := app.Store.TemplateConfigFor(kind)
	folder := importFolder
	if folder == "" {
		folder = cfg.DefaultDataFilePath
	}
	if folder == "" {
		folder = "HTB/" + kind.Title() + "s"
	}
	relPath := path.Join(folder, vault.FileName(cfg.DefaultFileNameTemplate, fileVars)+".md")

	created, err := app.Notes.CreateNote(relPath, content(relPath))
	if err != nil {
		return err
	}
	fmt.Printf("Created note: %s\n", created)
	if !noOpen && (app.Conf.Vault.OpenAfterCreate || app.Store.Get().OpenAfterCreate) {
		// No editor integration; the bare path on its own line is
		// enough for `$EDITOR $(htbnotes import ... | tail -1)`.
		fmt.Println(created)
	}
	return nil
}

func searchItems(ctx context.Context, kind models.Kind, query string) ([]models.SearchItem, error) {
	switch kind {
	case models.KindChallenge:
		return app.Challenges.Search(ctx, query)
	case models.KindSherlock:
		return app.Sherlocks.Search(ctx, query)
	default:
		return app.Machines.Search(ctx, query)
	}
}

func printItems(items []models.SearchItem) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDIFFICULTY\tCATEGORY\tSTATE")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", it.ID, it.Name, it.Difficulty, it.Category, it.State)
	}
	w.Flush()
}

func parseKind(arg string) (models.Kind, error) {
	switch arg {
	case "machine", "machines":
		return models.KindMachine, nil
	case "challenge", "challenges":
		return models.KindChallenge, nil
	case "sherlock", "sherlocks":
		return models.KindSherlock, nil
	default:
		return "", fmt.Errorf("unknown record type %q (want machine, challenge or sherlock)", arg)
	}
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "htbnotes.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	loginCmd.Flags().StringVar(&loginToken, "token", "", "HackTheBox API bearer token")

	importCmd.Flags().StringVar(&importFolder, "folder", "", "vault folder for the note (overrides settings)")
	importCmd.Flags().BoolVar(&noOpen, "no-open", false, "do not print the bare note path after creation")

	rootCmd.AddCommand(loginCmd, logoutCmd, importCmd, searchCmd, refreshCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, htb.ErrNoToken) || errors.Is(err, providers.ErrAuthFailed) {
			fmt.Fprintln(os.Stderr, "Run `htbnotes login --token <token>` first.")
		}
		os.Exit(1)
	}
}
