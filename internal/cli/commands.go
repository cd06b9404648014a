package cli

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"famtree/internal/domain"
	"famtree/internal/dto"
	"famtree/internal/snapshot"
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, closeFn, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()
			green.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print family statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, closeFn, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			st, err := uc.Statistics(cmd.Context())
			if err != nil {
				return err
			}
			printStats(cmd, dto.NewStatisticsResponse(*st))
			return nil
		},
	}
}

func printStats(cmd *cobra.Command, st dto.StatisticsResponse) {
	out := cmd.OutOrStdout()
	green.Fprintln(out, "Family statistics")
	fmt.Fprintf(out, "  members            %d\n", st.MemberCount)
	fmt.Fprintf(out, "  with birth date    %d\n", st.MembersWithBirthDate)
	fmt.Fprintf(out, "  average age        %s\n", st.AverageAgeLabel)
	fmt.Fprintf(out, "  generations        %d\n", st.Generations)
	fmt.Fprintf(out, "  marriages          %d (active %d, divorced %d)\n", st.TotalMarriages, st.ActiveMarriages, st.Divorced)
	fmt.Fprintf(out, "  parent-child links %d\n", st.ParentChildLinks)

	keys := make([]string, 0, len(st.GenderDistribution))
	for k := range st.GenderDistribution {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cyan.Fprintln(out, "  gender")
	for _, k := range keys {
		fmt.Fprintf(out, "    %-8s %d\n", k, st.GenderDistribution[k])
	}
}

func newLayoutCmd(opts *options) *cobra.Command {
	c := domain.DefaultCanvas
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print node coordinates of the network view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.Width <= 0 || c.Height <= 0 {
				return fmt.Errorf("canvas size must be positive")
			}
			uc, closeFn, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			l, err := uc.Network(cmd.Context(), c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			green.Fprintf(out, "canvas %gx%g, %d nodes, %d edges\n", l.Canvas.Width, l.Canvas.Height, len(l.Nodes), len(l.Edges))
			for _, n := range l.Nodes {
				fmt.Fprintf(out, "  node %-5d x=%8.2f y=%8.2f\n", n.ID, n.X, n.Y)
			}
			for _, e := range l.Edges {
				fmt.Fprintf(out, "  edge %-12s %d -> %d\n", e.Kind, e.From, e.To)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&c.Width, "width", c.Width, "canvas width")
	cmd.Flags().Float64Var(&c.Height, "height", c.Height, "canvas height")
	return cmd
}

func newSeedCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML family file into the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			n, err := snapshot.LoadYAML(f)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return importNetwork(cmd, opts, *n)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole family as a JSON backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, closeFn, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := uc.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				output = fmt.Sprintf("famtree_%s.json", time.Now().Format("20060102_150405"))
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := snapshot.WriteJSON(f, *n, time.Now()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			green.Fprintf(cmd.OutOrStdout(), "exported %d members, %d marriages, %d parent-child links to %s\n",
				len(n.Members), len(n.Marriages), len(n.ParentChild), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default famtree_YYYYMMDD_HHMMSS.json)")
	return cmd
}

func newImportCmd(opts *options) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Add the records of a JSON backup to the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(input)
			if err != nil {
				return err
			}
			defer f.Close()

			b, err := snapshot.ReadJSON(f)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			yellow.Fprintf(cmd.OutOrStdout(), "backup exported at %s\n", b.ExportedAt.Format(time.RFC3339))
			return importNetwork(cmd, opts, b.FamilyNetwork)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON backup file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func importNetwork(cmd *cobra.Command, opts *options, n domain.FamilyNetwork) error {
	uc, closeFn, err := opts.open(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	created, err := uc.Import(cmd.Context(), n)
	if err != nil {
		return err
	}
	green.Fprintf(cmd.OutOrStdout(), "imported %d members, %d marriages, %d parent-child links\n",
		len(created.Members), len(created.Marriages), len(created.ParentChild))
	return nil
}
