package main

import (
	"fmt"

	"github.com/rmera/gosimm/ff"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCatalogCmd(a *app) *cobra.Command {
	var write string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Summarize a force field catalog, and optionally write a copy of it",
		Long: `Reads a catalog (the embedded GAFF2 subset if --ff is not given) and prints
the number of records per section. With --write, the catalog, with #ifdef
blocks and #include directives resolved, is written to a new file. Files
ending in .zst or .gz are compressed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), summary(cat))
			if write == "" {
				return nil
			}
			if err := ff.WriteCatalogFile(cat, write); err != nil {
				return err
			}
			a.log.Info("catalog written", zap.String("file", write))
			return nil
		},
	}
	f := cmd.Flags()
	f.String("ff", "", "force field catalog, the embedded GAFF2 subset if empty")
	f.StringSliceP("define", "D", nil, "names defined for #ifdef blocks in the catalog")
	f.StringVarP(&write, "write", "w", "", "write the catalog to this file")
	a.bind(cmd, "forcefield.catalog", "ff")
	a.bind(cmd, "forcefield.defines", "define")
	return cmd
}

func summary(cat *ff.Catalog) string {
	return fmt.Sprintf("catalog %s\n  particle types  %d\n  bond types      %d\n  angle types     %d\n  dihedral types  %d\n  improper types  %d\n",
		cat.Name, len(cat.ParticleTypes()), len(cat.BondTypes()), len(cat.AngleTypes()), len(cat.AllDihedralTypes()), len(cat.ImproperTypes()))
}
