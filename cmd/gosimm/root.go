/*
 * root.go, part of gosimm.
 *
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"github.com/rmera/gosimm/config"
	"github.com/rmera/gosimm/ff"
	"github.com/rmera/gosimm/gaff2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what the subcommands share.
type app struct {
	loader     *config.Loader
	configPath string
	cfg        *config.Config
	log        *zap.Logger
	binds      map[*cobra.Command][][2]string
}

func newRootCmd() *cobra.Command {
	a := &app{loader: config.NewLoader(), log: zap.NewNop(), binds: make(map[*cobra.Command][][2]string)}
	cmd := &cobra.Command{
		Use:           "gosimm",
		Short:         "Force field typing and partial charges for molecular topologies",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (console, json)")
	a.bind(cmd, "log.level", "log-level")
	a.bind(cmd, "log.format", "log-format")
	cmd.AddCommand(newTypeCmd(a), newCatalogCmd(a))
	return cmd
}

// bind ties a flag of cmd to a configuration key. Bindings are only
// applied for the command that runs, as several subcommands have flags for
// the same key.
func (a *app) bind(cmd *cobra.Command, key, flag string) {
	a.binds[cmd] = append(a.binds[cmd], [2]string{key, flag})
}

func (a *app) init(cmd *cobra.Command) error {
	for c := cmd; c != nil; c = c.Parent() {
		for _, b := range a.binds[c] {
			f := c.Flags().Lookup(b[1])
			if f == nil {
				f = c.PersistentFlags().Lookup(b[1])
			}
			if err := a.loader.BindFlag(b[0], f); err != nil {
				return err
			}
		}
	}
	cfg, err := a.loader.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	l, err := cfg.Log.Logger()
	if err != nil {
		return err
	}
	a.log = l
	return nil
}

// catalog returns the reference catalog named in the configuration, or the
// embedded GAFF2 one.
func (a *app) catalog() (*ff.Catalog, error) {
	c := a.cfg.ForceField
	if c.Catalog == "" {
		return gaff2.Catalog()
	}
	cat, err := ff.ReadCatalogFile(c.Catalog, c.FollowIncludes, c.Defines...)
	if err != nil {
		return nil, err
	}
	a.log.Info("read catalog", zap.String("file", c.Catalog), zap.Int("particle_types", len(cat.ParticleTypes())))
	return cat, nil
}
