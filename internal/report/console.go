package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/akrivova/ionflow/internal/cascade"
	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/internal/radial"
)

// Console renders aligned tables to a writer. Energies appear in both
// Hartree and electron-volts. Write errors are ignored; a broken console
// must not abort a computation.
type Console struct {
	w io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

var _ Reporter = (*Console)(nil)

// Multiplet prints the level table of one solved block.
func (c *Console) Multiplet(m *ci.Multiplet) {
	name := m.Name
	if name == "" {
		name = "multiplet"
	}
	fmt.Fprintf(c.w, "\nLevels of %s\n\n", name)
	fmt.Fprintf(c.w, "%5s  %4s  %6s  %16s  %16s\n",
		"Index", "2J", "Parity", "Energy [Ha]", "Energy [eV]")
	fmt.Fprintln(c.w, strings.Repeat("─", 55))
	for i := range m.Levels {
		l := &m.Levels[i]
		fmt.Fprintf(c.w, "%5d  %4d  %6s  %16.8f  %16.6f\n",
			l.Index, l.TwoJ, l.Parity, l.Energy, l.EnergyEV())
	}
}

// Blocks prints the electronic states of a cascade graph. Initial states
// carry a star in the first column.
func (c *Console) Blocks(blocks []*cascade.Block) {
	fmt.Fprintf(c.w, "\nCascade blocks (%d)\n\n", len(blocks))
	fmt.Fprintf(c.w, "%2s %4s %10s %14s %14s  %s\n",
		"", "Gen", "Electrons", "Binding [Ha]", "Binding [eV]", "Configurations")
	fmt.Fprintln(c.w, strings.Repeat("─", 78))
	for _, b := range blocks {
		mark := ""
		if b.Initial {
			mark = "*"
		}
		fmt.Fprintf(c.w, "%2s %4d %10d %14.4f %14.2f  %s\n",
			mark, b.Generation, b.ElectronCount,
			b.MeanBinding, b.MeanBinding*radial.HartreeEV, b.Key())
	}
}

// Steps prints the transitions of a cascade graph with their computed
// lines and pathways, one section per step.
func (c *Console) Steps(steps []*cascade.Step) {
	fmt.Fprintf(c.w, "\nCascade steps (%d)\n", len(steps))
	for _, st := range steps {
		fmt.Fprintf(c.w, "\n%s\n", st)
		for _, ln := range st.Lines {
			if ln.CrossSection > 0 || ln.PhotonEnergy > 0 {
				fmt.Fprintf(c.w, "  %3d -> %-3d  %14.6f Ha %14.4f eV  sigma %.4e at %.4f Ha\n",
					ln.InitialIndex, ln.FinalIndex,
					ln.Energy, ln.Energy*radial.HartreeEV,
					ln.CrossSection, ln.PhotonEnergy)
				continue
			}
			fmt.Fprintf(c.w, "  %3d -> %-3d  %14.6f Ha %14.4f eV  rate %.4e\n",
				ln.InitialIndex, ln.FinalIndex,
				ln.Energy, ln.Energy*radial.HartreeEV, ln.Rate)
		}
		for _, pw := range st.Pathways {
			fmt.Fprintf(c.w, "  %3d -> %d -> %-3d  excite %14.6f Ha  decay %14.6f Ha\n",
				pw.InitialIndex, pw.IntermediateIndex, pw.FinalIndex,
				pw.ExcitationEnergy, pw.SecondaryEnergy)
			for _, g := range sortedGauges(pw.CrossSection) {
				fmt.Fprintf(c.w, "%17s sigma[%s] %.4e\n", "", g, pw.CrossSection[g])
			}
		}
	}
}

// Distribution prints the ion distribution over remaining electron counts
// and, when present, the per-level populations of each block.
func (c *Console) Distribution(o *cascade.Outcome) {
	if o.Ion != nil {
		counts := make([]int, 0, len(o.Ion))
		for n := range o.Ion {
			counts = append(counts, n)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(counts)))

		fmt.Fprintf(c.w, "\nIon distribution\n\n")
		fmt.Fprintf(c.w, "%9s  %12s\n", "Electrons", "Population")
		fmt.Fprintln(c.w, strings.Repeat("─", 23))
		for _, n := range counts {
			fmt.Fprintf(c.w, "%9d  %12.6f\n", n, o.Ion[n])
		}
	}

	if o.Levels != nil {
		keys := make([]string, 0, len(o.Levels))
		for k := range o.Levels {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(c.w, "\nLevel populations\n")
		for _, k := range keys {
			fmt.Fprintf(c.w, "\n%s\n", k)
			for i, p := range o.Levels[k] {
				fmt.Fprintf(c.w, "  %3d  %12.6f\n", i, p)
			}
		}
	}
}

func sortedGauges(cs map[process.Gauge]float64) []process.Gauge {
	gauges := make([]process.Gauge, 0, len(cs))
	for g := range cs {
		gauges = append(gauges, g)
	}
	sort.Slice(gauges, func(i, j int) bool { return gauges[i] < gauges[j] })
	return gauges
}
