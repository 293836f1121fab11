package main

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iostrovok/trimothy/internal/op"
)

type opEntry struct {
	Name     string `json:"name"`
	Matching bool   `json:"matching"`
	Short    string `json:"short"`
}

func newOpsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List the operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := make([]opEntry, 0, len(op.All))
			for _, o := range op.All {
				entries = append(entries, opEntry{Name: o.String(), Matching: o.IsMatching(), Short: opShort[o]})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.ConfigCompatibleWithStandardLibrary.MarshalIndent(entries, "", "  ")
				if err != nil {
					return errors.Wrap(err, "encode ops")
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}

			for _, e := range entries {
				name := e.Name
				if e.Matching {
					name += " --cutset"
				}
				if _, err := fmt.Fprintf(out, "%-30s %s\n", name, e.Short); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
