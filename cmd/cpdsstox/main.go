package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	cpdsstox "github.com/A1-D0/CP-DSSTox"
	"github.com/A1-D0/CP-DSSTox/internal/load"
)

var (
	dbPath     string
	schemaPath string
	dataDir    string
	testMode   string

	schemaDialect string
	schemaOutput  string
)

var rootCmd = &cobra.Command{
	Use:   "cpdsstox",
	Short: "Load CP_DSSTox chemical and product data into a relational database",
	Long: `cpdsstox creates the CP_DSSTox schema and populates it from CSV and
Excel source files. Rows violating a constraint are skipped with a
warning; the load continues with the remaining rows and files.`,
	RunE: run,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the CP_DSSTox schema DDL",
	RunE:  runSchema,
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Path or URL of the destination database")
	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "Path to the SQL schema file")
	rootCmd.Flags().StringVar(&dataDir, "data", "", "Directory holding the CSV and Excel data files")
	rootCmd.Flags().StringVar(&testMode, "TEST", "no", "Load the smaller sample data files (yes/no)")
	_ = rootCmd.MarkFlagRequired("db")
	_ = rootCmd.MarkFlagRequired("schema")
	_ = rootCmd.MarkFlagRequired("data")

	schemaCmd.Flags().StringVarP(&schemaDialect, "dialect", "d", "sqlite", "Target dialect: sqlite, postgres, or mysql")
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(schemaCmd)
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Structural preconditions are fatal before any insertion begins
	if err := load.ValidatePreconditions(schemaPath, dataDir); err != nil {
		return err
	}

	if err := cpdsstox.CreateDatabase(ctx, dbPath, schemaPath); err != nil {
		return err
	}
	fmt.Printf("Database created successfully at %s\n", dbPath)

	if parseTestMode(testMode) {
		fmt.Println("Testing...")
	}

	report, err := cpdsstox.Load(ctx, dbPath, dataDir, &cpdsstox.Options{
		TestMode:   parseTestMode(testMode),
		WarnWriter: os.Stderr,
	})
	if err != nil {
		return err
	}

	printSummary(report)
	fmt.Println("Data import process completed successfully.")
	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	script, err := cpdsstox.SchemaScript(schemaDialect)
	if err != nil {
		return err
	}

	if schemaOutput == "" {
		fmt.Print(script)
		return nil
	}
	if err := os.WriteFile(schemaOutput, []byte(script), 0644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

// parseTestMode reads the --TEST flag; anything other than "yes"
// means a full load.
func parseTestMode(s string) bool {
	return s == "yes"
}

func printSummary(report *load.Report) {
	tables := make([]string, 0, len(report.Inserted))
	for t := range report.Inserted {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		fmt.Printf("Data for table '%s' has been imported successfully. (%d rows", t, report.Inserted[t])
		if skipped := report.Skipped[t]; skipped > 0 {
			fmt.Printf(", %d skipped", skipped)
		}
		fmt.Println(")")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
