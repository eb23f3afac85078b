package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/app"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/services"
)

var errEmptyCatalog = errors.New("catalog file has no domains")

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed --file catalog.yaml",
		Short: "Load a YAML catalog of domains, topics and content items",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readCatalogFile(file)
			if err != nil {
				return err
			}
			a, err := app.New(app.Options{AutoMigrate: true})
			if err != nil {
				return err
			}
			defer a.Close()

			sum, err := a.Services.Catalog.Import(dbctx.Context{Ctx: cmdContext(cmd)}, doc)
			if err != nil {
				return fmt.Errorf("seed %s: %w", file, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d domains, %d topics, %d items\n", sum.Domains, sum.Topics, sum.Items)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the catalog YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readCatalogFile(path string) (services.CatalogDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return services.CatalogDocument{}, fmt.Errorf("read catalog: %w", err)
	}
	return parseCatalog(raw)
}

// parseCatalog rejects unknown keys.
func parseCatalog(raw []byte) (services.CatalogDocument, error) {
	var doc services.CatalogDocument
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, errEmptyCatalog
		}
		return doc, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Domains) == 0 {
		return doc, errEmptyCatalog
	}
	return doc, nil
}
