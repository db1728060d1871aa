package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rmera/gosimm/charge"
	"github.com/rmera/gosimm/chemyaml"
	"github.com/rmera/gosimm/gaff2"
	"github.com/rmera/gosimm/typer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTypeCmd(a *app) *cobra.Command {
	var topology, output string
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Assign force field types and partial charges to a topology",
		Long: `Reads a YAML topology, assigns particle, bond, angle, dihedral and
improper types from the force field catalog and computes partial charges.
A YAML report is written even if typing fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runType(cmd, topology, output)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&topology, "topology", "t", "", "YAML topology to type")
	f.StringVarP(&output, "output", "o", "-", "report file, - for stdout")
	f.String("ff", "", "force field catalog (.ff, .ff.gz or .ff.zst), the embedded GAFF2 subset if empty")
	f.StringSliceP("define", "D", nil, "names defined for #ifdef blocks in the catalog")
	f.String("charges", "", "charge method: "+strings.Join(charge.Methods(), ", "))
	f.Int("workers", 0, "goroutines per typing phase")
	f.Bool("linker-types", false, "give linker particles their own HL@, TL@ and L@ types")
	_ = cmd.MarkFlagRequired("topology")
	a.bind(cmd, "forcefield.catalog", "ff")
	a.bind(cmd, "forcefield.defines", "define")
	a.bind(cmd, "charges.method", "charges")
	a.bind(cmd, "typing.workers", "workers")
	a.bind(cmd, "typing.linker_types", "linker-types")
	return cmd
}

func (a *app) runType(cmd *cobra.Command, topology, output string) error {
	ctx := cmd.Context()
	cat, err := a.catalog()
	if err != nil {
		return err
	}
	S, err := chemyaml.ReadSystemFile(topology)
	if err != nil {
		return err
	}
	T := typer.New(cat, gaff2.New(),
		typer.WithLogger(a.log),
		typer.WithWorkers(a.cfg.Typing.Workers),
		typer.WithLinkerTypes(a.cfg.Typing.LinkerTypes))
	rep, runErr := T.Run(ctx, S)
	method := ""
	if runErr == nil {
		method = a.cfg.Charges.Method
		runErr = charge.Assign(ctx, S, method,
			charge.WithMaxIter(a.cfg.Charges.MaxIter),
			charge.WithDamping(a.cfg.Charges.Damping),
			charge.WithTolerance(a.cfg.Charges.Tolerance),
			charge.WithLogger(a.log))
	}
	if runErr != nil {
		a.log.Error("typing failed", zap.String("system", S.Name), zap.Error(runErr))
	} else {
		a.log.Info("typed", zap.String("system", S.Name), zap.Int("particles", S.Len()), zap.Float64("net_charge", charge.Net(S)))
	}
	if err := writeReport(cmd.OutOrStdout(), output, chemyaml.NewReport(S, rep, runErr, method)); err != nil {
		return err
	}
	return runErr
}

func writeReport(stdout io.Writer, output string, R *chemyaml.Report) error {
	if output == "" || output == "-" {
		return chemyaml.WriteReport(stdout, R)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := chemyaml.WriteReport(f, R); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}
	return nil
}
