package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvms/annotated"
	"github.com/katalvlaran/lvms/fragment"
	"github.com/katalvlaran/lvms/internal/report"
	"github.com/katalvlaran/lvms/mass"
	"github.com/katalvlaran/lvms/peptide"
	"github.com/katalvlaran/lvms/sites"
)

// codecFlags are the parser overrides shared by parse and fragments.
type codecFlags struct {
	convention string
	strict     bool
}

func (f *codecFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.convention, "convention", "", "Slot convention (unshifted, reference); overrides codec.convention")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject letters that are not amino acid codes")
}

func (f *codecFlags) options(cmd *cobra.Command, a *app) ([]annotated.Option, error) {
	opts, err := a.cfg.AnnotatedOptions()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("convention") {
		conv, err := annotated.ParseConvention(f.convention)
		if err != nil {
			return nil, err
		}
		opts = append(opts, annotated.WithConvention(conv))
	}
	if f.strict {
		opts = append(opts, annotated.WithStrictResidues())
	}
	return opts, nil
}

func parseCmd(a *app) *cobra.Command {
	var codec codecFlags

	cmd := &cobra.Command{
		Use:   "parse SEQ...",
		Short: "Split annotated sequences into residues and modification slots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := codec.options(cmd, a)
			if err != nil {
				return err
			}

			recs := make([]report.ParseRecord, 0, len(args))
			for _, s := range args {
				p, err := annotated.Parse(s, opts...)
				if err != nil {
					return fmt.Errorf("parse %q: %w", s, err)
				}
				a.logger.Debug("Parsed sequence", slog.String("input", s), slog.Int("tokens", len(p.Mods)))
				recs = append(recs, report.NewParseRecord(s, p))
			}

			return a.writer(cmd).WriteParse(recs)
		},
	}
	codec.register(cmd)

	return cmd
}

func fragmentsCmd(a *app) *cobra.Command {
	var (
		codec   codecFlags
		ions    string
		charge  int
		match   float64
		against string
	)

	cmd := &cobra.Command{
		Use:   "fragments SEQ",
		Short: "List the fragment ions of an annotated peptide",
		Long: `List every fragment of the chosen ion series, shortest first, with its
plain and annotated sequence, neutral monoisotopic mass and m/z.

Modification tokens are resolved by name against the built-in and
configured modifications; signed numbers such as [+15.9949] are taken as
mass deltas. With --match only fragments whose m/z falls within
mass.tolerance of the given value are listed. With --against every fragment
that also occurs in the second peptide, same ion and number with a mass
equal within mass.epsilon, is marked as shared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := codec.options(cmd, a)
			if err != nil {
				return err
			}
			set, err := a.cfg.ModificationSet()
			if err != nil {
				return err
			}

			types, err := a.cfg.IonTypes()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("ions") {
				if types, err = fragment.ParseIonTypes(ions); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("charge") {
				charge = a.cfg.Fragments.Charge
			}

			p, err := peptide.Parse(args[0], set, opts...)
			if err != nil {
				return err
			}
			frags := p.FragmentList(types...)

			if cmd.Flags().Changed("match") {
				tol, err := a.cfg.Tolerance()
				if err != nil {
					return err
				}
				frags, err = matchMZ(frags, match, charge, tol)
				if err != nil {
					return err
				}
				a.logger.Debug("Matched fragments",
					slog.Float64("mz", match),
					slog.String("tolerance", tol.String()),
					slog.Int("hits", len(frags)))
			}

			rep, err := report.NewFragmentReport(p, frags, charge)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("against") {
				other, err := peptide.Parse(against, set, opts...)
				if err != nil {
					return fmt.Errorf("against: %w", err)
				}
				shared := fragment.NewSet(a.cfg.Mass.Epsilon, other.FragmentList(types...)...)
				rep.MarkShared(other, frags, shared)
				a.logger.Debug("Compared fragments",
					slog.String("against", other.AnnotatedSequence()),
					slog.Float64("epsilon", a.cfg.Mass.Epsilon))
			}
			return a.writer(cmd).WriteFragments(rep)
		},
	}
	codec.register(cmd)
	cmd.Flags().StringVar(&ions, "ions", "", "Comma separated ion series (a,b,c,x,y,z and *dot variants)")
	cmd.Flags().IntVarP(&charge, "charge", "z", 1, "Charge state for m/z")
	cmd.Flags().Float64Var(&match, "match", 0, "Keep fragments whose m/z is within tolerance of this value")
	cmd.Flags().StringVar(&against, "against", "", "Mark fragments shared with this annotated peptide")

	return cmd
}

func matchMZ(frags []*fragment.Fragment, target float64, charge int, tol mass.Tolerance) ([]*fragment.Fragment, error) {
	var out []*fragment.Fragment
	for _, f := range frags {
		mz, err := f.MZ(charge)
		if err != nil {
			return nil, err
		}
		if tol.Within(target, mz) {
			out = append(out, f)
		}
	}
	return out, nil
}

func sitesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sites EXPR...",
		Short: "Decode site expressions such as S|T|Y or NPep,K",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs := make([]report.SiteRecord, 0, len(args))
			for _, expr := range args {
				m, err := sites.Parse(expr)
				if err != nil {
					return err
				}
				recs = append(recs, report.NewSiteRecord(expr, m))
			}
			return a.writer(cmd).WriteSites(recs)
		},
	}
}

func configCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default user config if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.loader.EnsureUserConfig()
			if err != nil {
				return err
			}
			state := "exists"
			if created {
				state = "created"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, a.loader.UserConfigPath())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	})

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}
