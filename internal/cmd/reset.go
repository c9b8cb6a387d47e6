package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pizzarten/pizzarten/internal/config"
	"github.com/pizzarten/pizzarten/internal/store"
	"github.com/spf13/cobra"
)

var (
	resetForce bool
	resetCart  bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the factory catalog",
	Long: `Reset deletes the persisted catalog so the next run starts from the
factory data again. Admin-created pizzas are lost.

The cart is kept unless --cart is given.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
	resetCmd.Flags().BoolVar(&resetCart, "cart", false, "Also empty the cart")
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dataDir := cfg.Paths.ResolveDataDir()

	if !resetForce {
		fmt.Printf("Restore the factory catalog in %s? [y/N] ", dataDir)
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	durable, err := store.NewFileStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}

	if err := durable.Remove(store.CatalogKey); err != nil {
		return fmt.Errorf("failed to remove catalog: %w", err)
	}
	fmt.Println("Catalog restored to factory data.")

	if resetCart {
		if err := durable.Remove(store.CartKey); err != nil {
			return fmt.Errorf("failed to remove cart: %w", err)
		}
		fmt.Println("Cart emptied.")
	}

	return nil
}
