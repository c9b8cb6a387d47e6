package cmd

import (
	"fmt"
	"strings"

	"github.com/pizzarten/pizzarten/internal/app"
	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/config"
	"github.com/pizzarten/pizzarten/internal/logging"
	"github.com/pizzarten/pizzarten/internal/store"
	"github.com/pizzarten/pizzarten/internal/tui"
	"github.com/pizzarten/pizzarten/internal/tui/view"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagPage string
	flagType string
	flagID   int64
)

var rootCmd = &cobra.Command{
	Use:   "pizzarten",
	Short: "Terminal storefront for the Pizzarten pizzeria",
	Long: `Pizzarten is a terminal storefront: browse the pizza catalog and
combos, manage a cart, and try out the visitor, customer and admin
profiles. Catalog and cart survive restarts; the chosen profile lasts
for one run.`,
	RunE: runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/pizzarten/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the persisted catalog and cart")
	_ = viper.BindPFlag("paths.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	// Deep-link flags: open a specific page, optionally pointing at one item
	rootCmd.Flags().StringVar(&flagPage, "page", view.PageHome, "initial page: home, details or cart")
	rootCmd.Flags().StringVar(&flagType, "type", string(catalog.KindProduct), "item kind for --page details: menu or combo")
	rootCmd.Flags().Int64Var(&flagID, "id", 0, "item id for --page details")
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/pizzarten")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PIZZARTEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch flagPage {
	case view.PageHome, view.PageDetails, view.PageCart:
	default:
		return fmt.Errorf("unknown page %q (expected home, details or cart)", flagPage)
	}

	kind, ok := catalog.ParseKind(flagType)
	if !ok {
		return fmt.Errorf("unknown item type %q (expected menu or combo)", flagType)
	}

	dataDir := cfg.Paths.ResolveDataDir()

	log := logging.NopLogger()
	if cfg.Logging.Enabled {
		log, err = logging.NewLogger(dataDir, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		defer func() { _ = log.Close() }()
	}
	log.Info("pizzarten starting", "data_dir", dataDir, "page", flagPage)

	durable, err := store.NewFileStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}

	state := app.NewState(durable, store.NewMemStore(), log)

	model := tui.NewModel(state, cfg, log, tui.Options{
		Page: flagPage,
		Kind: kind,
		ID:   flagID,
	})

	return tui.New(model).Run()
}
