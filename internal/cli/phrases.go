package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gracobjo/sentencias/internal/catalog"
)

// phrasesCmd represents the phrases command group
var phrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "Gestionar el catálogo de frases clave",
	Long: `Phrases manages the editable phrase catalog that drives extraction,
scoring and aggregation. Mutating commands require --catalog (or the
catalog_path config key); the built-in catalog is read-only.

Changes take effect on the next analysis. Cached corpus reports keep
serving the old catalog until their TTL expires or --fresh recomputes.

Example:
  sentencias phrases list
  sentencias phrases create lesiones_rodilla "lesión de rodilla" --catalog frases.yaml
  sentencias phrases rename-category inss entidad_gestora --catalog frases.yaml
  sentencias phrases add lesiones_hombro "rotura del manguito" --catalog frases.yaml`,
}

var phrasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar las categorías y sus variantes",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, err := loadCatalog(false)
		if err != nil {
			return err
		}
		snapshot := manager.Snapshot()
		for _, category := range snapshot.Categories() {
			fmt.Printf("%s (%d)\n", category.Name, len(category.Variants))
			for _, variant := range category.Variants {
				fmt.Printf("  - %s\n", variant)
			}
		}
		return nil
	},
}

var phrasesCreateCmd = &cobra.Command{
	Use:   "create <category> <phrase> [phrase...]",
	Short: "Crear una categoría con sus variantes iniciales",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateCatalog(func(m *catalog.Manager) error {
			return m.CreateCategory(args[0], args[1:])
		})
	},
}

var phrasesRenameCategoryCmd = &cobra.Command{
	Use:   "rename-category <old> <new>",
	Short: "Renombrar una categoría conservando sus variantes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateCatalog(func(m *catalog.Manager) error {
			return m.RenameCategory(args[0], args[1])
		})
	},
}

var phrasesDeleteCategoryCmd = &cobra.Command{
	Use:   "delete-category <category>",
	Short: "Eliminar una categoría completa",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateCatalog(func(m *catalog.Manager) error {
			return m.DeleteCategory(args[0])
		})
	},
}

var phrasesAddCmd = &cobra.Command{
	Use:   "add <category> <phrase>",
	Short: "Añadir una variante a una categoría",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateCatalog(func(m *catalog.Manager) error {
			return m.AddPhrase(args[0], args[1])
		})
	},
}

var phrasesRemoveCmd = &cobra.Command{
	Use:   "remove <category> <phrase>",
	Short: "Eliminar una variante de una categoría",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateCatalog(func(m *catalog.Manager) error {
			return m.RemovePhrase(args[0], args[1])
		})
	},
}

var phrasesRenameCmd = &cobra.Command{
	Use:   "rename <category> <old-phrase> <new-phrase>",
	Short: "Renombrar una variante dentro de una categoría",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateCatalog(func(m *catalog.Manager) error {
			return m.RenamePhrase(args[0], args[1], args[2])
		})
	},
}

func init() {
	rootCmd.AddCommand(phrasesCmd)

	phrasesCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "phrase catalog YAML file")

	phrasesCmd.AddCommand(phrasesListCmd)
	phrasesCmd.AddCommand(phrasesCreateCmd)
	phrasesCmd.AddCommand(phrasesRenameCategoryCmd)
	phrasesCmd.AddCommand(phrasesDeleteCategoryCmd)
	phrasesCmd.AddCommand(phrasesAddCmd)
	phrasesCmd.AddCommand(phrasesRemoveCmd)
	phrasesCmd.AddCommand(phrasesRenameCmd)
}

// loadCatalog resolves the catalog file from --catalog or config. The
// built-in catalog is only allowed for read-only use.
func loadCatalog(requireFile bool) (*catalog.Manager, string, error) {
	path := catalogPath
	if path == "" {
		path = viper.GetString("catalog_path")
	}
	if path == "" {
		if requireFile {
			return nil, "", fmt.Errorf("the built-in catalog is read-only; pass --catalog to edit a catalog file")
		}
		manager, err := catalog.NewManager(catalog.DefaultCategories())
		return manager, "", err
	}
	if requireFile {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			// Seed a new catalog file from the built-ins
			manager, err := catalog.NewManager(catalog.DefaultCategories())
			if err != nil {
				return nil, "", err
			}
			return manager, path, nil
		}
	}
	manager, err := catalog.Load(path)
	if err != nil {
		return nil, "", err
	}
	return manager, path, nil
}

// mutateCatalog applies one edit and writes the catalog back to disk
func mutateCatalog(edit func(*catalog.Manager) error) error {
	manager, path, err := loadCatalog(true)
	if err != nil {
		return err
	}
	if err := edit(manager); err != nil {
		return err
	}
	if err := manager.Save(path); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Catalog saved: %s\n", path)
	}
	return nil
}
