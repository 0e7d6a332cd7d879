package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/adapters/driven/catalog/tomlfile"
	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/logger"
)

var (
	catalogCategory string
	catalogTag      string
	catalogJSON     bool
	catalogOut      string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the food catalog",
	Long: `The catalog holds every food a menu can use, with macros per 100 g.
Foods are matched by name, ignoring case, so importing a food that already
exists updates it.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog foods",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file.toml>",
	Short: "Import foods from a TOML file",
	Long: `Import foods from a TOML file of [[food]] tables:

  [[food]]
  name = "Chicken Breast"
  category = "protein"
  calories_per_100g = 165
  protein_per_100g = 31
  carbs_per_100g = 0
  fat_per_100g = 3.6
  tags = ["gluten-free", "halal"]

Nothing is written if any food is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in starter catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalogSeed,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as TOML",
	Args:  cobra.NoArgs,
	RunE:  runCatalogExport,
}

var catalogWatchCmd = &cobra.Command{
	Use:   "watch <file.toml>",
	Short: "Import a TOML file and re-import it whenever it changes",
	Long: `Import a TOML catalog file, then keep watching it and re-import on every
save. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogWatch,
}

func init() {
	catalogListCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "only foods of this category")
	catalogListCmd.Flags().StringVarP(&catalogTag, "tag", "t", "", "only foods with this tag")
	catalogListCmd.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")
	catalogExportCmd.Flags().StringVarP(&catalogOut, "out", "o", "", "write to this file instead of stdout")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogSeedCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogWatchCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	category := domain.FoodCategory(domain.NormalizeName(catalogCategory))
	if category != "" && !category.IsValid() {
		return fmt.Errorf("unknown category %q", catalogCategory)
	}

	foods, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list foods: %w", err)
	}

	filtered := make([]domain.Food, 0, len(foods))
	for i := range foods {
		if category != "" && foods[i].Category != category {
			continue
		}
		if catalogTag != "" && !foods[i].HasTag(catalogTag) {
			continue
		}
		filtered = append(filtered, foods[i])
	}

	if wantJSON(catalogJSON) {
		return printJSON(cmd, filtered)
	}
	if len(filtered) == 0 {
		cmd.Println("No foods found. Run 'menugen catalog seed' to load the starter catalog.")
		return nil
	}

	rows := make([][]string, 0, len(filtered))
	for i := range filtered {
		f := &filtered[i]
		rows = append(rows, []string{
			f.Name,
			f.Category.String(),
			fmt.Sprintf("%.0f", f.CaloriesPer100g),
			fmt.Sprintf("%.1f", f.ProteinPer100g),
			fmt.Sprintf("%.1f", f.CarbsPer100g),
			fmt.Sprintf("%.1f", f.FatPer100g),
			strings.Join(f.Tags, ", "),
		})
	}
	renderTable(cmd, []string{"Food", "Category", "kcal", "Protein", "Carbs", "Fat", "Tags"}, rows, 2, 3, 4, 5)
	cmd.Printf("%d foods\n", len(filtered))
	return nil
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	result, err := importCatalogFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printImportResult(cmd, result)
	return nil
}

func runCatalogSeed(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	result, err := catalogService.Seed(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	printImportResult(cmd, result)
	return nil
}

func runCatalogExport(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	foods, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list foods: %w", err)
	}
	data, err := tomlfile.Encode(foods)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if catalogOut == "" {
		cmd.Print(string(data))
		return nil
	}
	if err := os.WriteFile(catalogOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", catalogOut, err)
	}
	cmd.Printf("Exported %d foods to %s\n", len(foods), catalogOut)
	return nil
}

func runCatalogWatch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := tomlfile.NewWatcher(args[0])
	result, err := importCatalogFile(ctx, watcher.Path())
	if err != nil {
		return err
	}
	printImportResult(cmd, result)
	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", watcher.Path())

	return watcher.Watch(ctx, func() {
		result, err := importCatalogFile(ctx, watcher.Path())
		if err != nil {
			// Keep watching; the next save may fix it.
			logger.Error("re-import %s: %v", watcher.Path(), err)
			cmd.Printf("Import failed: %v\n", err)
			return
		}
		printImportResult(cmd, result)
	})
}

func importCatalogFile(ctx context.Context, path string) (*domain.ImportResult, error) {
	source := tomlfile.NewFileSource(path)
	foods, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	result, err := catalogService.Import(ctx, foods)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", source.Name(), err)
	}
	result.Source = source.Name()
	return result, nil
}

func printImportResult(cmd *cobra.Command, r *domain.ImportResult) {
	cmd.Printf("Imported %d foods from %s (%d new, %d updated)\n", r.Total(), r.Source, r.Created, r.Updated)
}
