package dltableau

import (
	"fmt"
	"io"
	"sort"
)

// Render writes a human-readable dump of every world, the formulas
// satisfied there, and the role edges between worlds, in the
// interpretation's world creation order. It is meant for debugging and
// demoing the library, not for machine consumption.
func (in *Interpretation) Render(w io.Writer) error {
	for _, world := range in.order {
		if _, err := fmt.Fprintf(w, "world %s:\n", world.Name()); err != nil {
			return err
		}
		formulas := world.AllFormulas().Slice()
		strs := make([]string, len(formulas))
		for i, f := range formulas {
			strs[i] = f.String()
		}
		sort.Strings(strs)
		for _, s := range strs {
			if _, err := fmt.Fprintf(w, "  %s\n", s); err != nil {
				return err
			}
		}

		var edgeLines []string
		for v, roles := range in.outgoing[world] {
			for role := range roles {
				edgeLines = append(edgeLines, fmt.Sprintf("  --%s--> %s", role, v.Name()))
			}
		}
		sort.Strings(edgeLines)
		for _, line := range edgeLines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
