package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, results []documentResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return enc.Close()
}

// writeText prints one table per document with ids indented by depth.
func writeText(w io.Writer, results []documentResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, doc := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "# %s (%s)\n", doc.Name, doc.Path)
		fmt.Fprintln(tw, "node\tx\ty\twidth\theight\t")
		for _, n := range doc.Nodes {
			fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\t\n",
				strings.Repeat("  ", n.Depth), n.ID,
				num(n.X), num(n.Y), num(n.Width), num(n.Height))
		}
	}
	return tw.Flush()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
