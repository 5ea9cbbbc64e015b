package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longhorn/session"
)

func newCasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "List the built-in test cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := session.Cases()
			if jsonOutput(cmd) {
				return writeJSON(cmd, map[string]interface{}{"testCases": cases})
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, c := range cases {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
			}

			return tw.Flush()
		},
	}
}

func newStudentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List every student of the loaded population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			all, err := a.sess.Students()
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd, map[string]interface{}{"students": all})
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tAGE\tYEAR\tMAJOR\tGPA\tROOMMATE")
			for _, s := range all {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.2f\t%s\n", s.Name, s.Age, s.Year, s.Major, s.GPA, orNone(s.Roommate))
			}

			return tw.Flush()
		},
	}
}

func newStudentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "student NAME",
		Short: "Show one student with friends and chat history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			s, err := a.sess.Student(args[0])
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd, s)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", s.Name)
			fmt.Fprintf(out, "  age %d, %s, year %d, %s, GPA %.2f\n", s.Age, s.Gender, s.Year, s.Major, s.GPA)
			fmt.Fprintf(out, "  preferences: %s\n", joinOrNone(s.RoommatePreferences))
			fmt.Fprintf(out, "  internships: %s\n", joinOrNone(s.PreviousInternships))
			fmt.Fprintf(out, "  roommate:    %s\n", orNone(s.Roommate))
			fmt.Fprintf(out, "  friends:     %s\n", joinOrNone(s.Friends))
			fmt.Fprintln(out, "  chat:")
			if len(s.ChatHistory) == 0 {
				fmt.Fprintln(out, "    (none)")
			}
			for _, line := range s.ChatHistory {
				fmt.Fprintf(out, "    %s\n", line)
			}

			return nil
		},
	}
}

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the connection graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			g, err := a.sess.Graph()
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd, g)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d students, %d connections, %d groups\n", len(g.Nodes), len(g.Edges), len(g.Groups))
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, e := range g.Edges {
				fmt.Fprintf(tw, "%s -- %s\t%d\n", e.From, e.To, e.Weight)
			}

			return tw.Flush()
		},
	}
}

func newRoommatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roommates",
		Short: "Show roommate assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			rm, err := a.sess.Roommates()
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd, map[string]interface{}{"roommates": rm})
			}
			for _, r := range rm {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", r.Student, orNone(r.Roommate))
			}

			return nil
		},
	}
}

func newReferralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referral",
		Short: "Find the strongest referral chain to a company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			company, _ := cmd.Flags().GetString("company")

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			r, err := a.sess.Referral(start, company)
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd, r)
			}
			if !r.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "no referral path from %s to %s\n", r.Start, r.Company)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(r.Path, " -> "))

			return nil
		},
	}
	cmd.Flags().String("start", "", "student to start from")
	cmd.Flags().String("company", "", "company the referral should reach")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newPodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pods",
		Short: "Group students into pods of strongly connected peers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			size := a.cfg.PodSize
			if cmd.Flags().Changed("size") {
				size, _ = cmd.Flags().GetInt("size")
			}
			pp, err := a.sess.Pods(size)
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd, map[string]interface{}{"size": size, "pods": pp})
			}
			for i, p := range pp {
				fmt.Fprintf(cmd.OutOrStdout(), "pod %d (strength %d): %s\n", i+1, p.Strength, strings.Join(p.Members, ", "))
			}

			return nil
		},
	}
	cmd.Flags().Int("size", 0, "maximum pod size (default from config)")

	return cmd
}

func orNone(name *string) string {
	if name == nil {
		return "(none)"
	}

	return *name
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}

	return strings.Join(items, ", ")
}
