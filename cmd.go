package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/turkosaurus/multiverse/internal/config"
	"github.com/turkosaurus/multiverse/internal/rickmorty"
	"github.com/turkosaurus/multiverse/internal/types"
	"github.com/turkosaurus/multiverse/internal/ui"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	baseURL    string
	timeout    int

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "multiverse",
		Short:         "Browse Rick and Morty characters",
		Long:          "Browse the Rick and Morty character catalogue page by page in the terminal.",
		Version:       ui.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/multiverse/config.yml)")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "API base URL (overrides config)")
	root.PersistentFlags().IntVar(&opts.timeout, "timeout", 0, "request timeout in seconds, 0 for none (overrides config)")

	root.AddCommand(newPageCmd(opts), newCharacterCmd(opts))
	return root
}

// setup loads the config, applies flag overrides and installs the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = o.baseURL
	}
	if flags.Changed("timeout") {
		if o.timeout < 0 {
			return fmt.Errorf("invalid timeout %d: must not be negative", o.timeout)
		}
		cfg.Timeout = o.timeout
	}

	logger, err := newFileLogger()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	slog.SetDefault(logger)
	logger.Debug("loaded config",
		"base_url", cfg.BaseURL,
		"start_page", cfg.StartPage,
		"timeout", cfg.RequestTimeout(),
	)

	o.cfg = cfg
	o.logger = logger
	return nil
}

func (o *rootOptions) client() *rickmorty.Client {
	return rickmorty.NewClient(o.cfg.BaseURL, rickmorty.WithTimeout(o.cfg.RequestTimeout()))
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app := ui.NewApp(ctx, opts.cfg, opts.client(), opts.logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func newPageCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "page [n]",
		Short: "Print one page of characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := opts.cfg.StartPage
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parse page %q: %w", args[0], err)
				}
				page = n
			}

			resp, err := opts.client().FetchPage(contextOf(cmd), page)
			if err != nil {
				opts.logger.Error("load characters", "page", page, "error", err)
				return fmt.Errorf("fetch page %d: %w", page, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), characterTable(resp.Results))
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d\n", page, resp.Info.Pages)
			return nil
		},
	}
}

func newCharacterCmd(opts *rootOptions) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "character <id>",
		Short: "Print a single character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse id %q: %w", args[0], err)
			}

			c, err := opts.client().FetchByID(contextOf(cmd), id)
			if rickmorty.IsNotFound(err) {
				return fmt.Errorf("character %d not found", id)
			}
			if err != nil {
				opts.logger.Error("load character", "id", id, "error", err)
				return fmt.Errorf("fetch character %d: %w", id, err)
			}

			out, err := ui.RenderCharacter(*c, 80, style)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style (auto, dark, light, notty)")
	return cmd
}

// characterTable lays out a page of characters as a bordered table.
func characterTable(chars []types.Character) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "STATUS", "SPECIES", "LOCATION")
	for _, c := range chars {
		t.Row(strconv.Itoa(c.ID), c.Name, c.Status, c.Species, c.Location.Name)
	}
	return t.String()
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
