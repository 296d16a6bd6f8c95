package engine

import (
	"context"

	"github.com/akrivova/ionflow/internal/cascade"
	"github.com/akrivova/ionflow/internal/ci"
)

// Snapshot records are the JSON shapes stored per run. They carry the
// summaries a later inspection needs, not the full numerical state.

type levelRecord struct {
	Index    int     `json:"index"`
	TwoJ     int     `json:"two_j"`
	Parity   string  `json:"parity"`
	EnergyHa float64 `json:"energy_ha"`
	EnergyEV float64 `json:"energy_ev"`
}

type blockRecord struct {
	Key        string `json:"key"`
	Electrons  int    `json:"electrons"`
	Generation int    `json:"generation"`
	Initial    bool   `json:"initial"`
	Levels     int    `json:"levels"`
}

type stepRecord struct {
	Process      string `json:"process"`
	Initial      string `json:"initial"`
	Intermediate string `json:"intermediate,omitempty"`
	Final        string `json:"final"`
	Lines        int    `json:"lines"`
	Pathways     int    `json:"pathways"`
}

func levelRecords(m *ci.Multiplet) []levelRecord {
	out := make([]levelRecord, m.Size())
	for i := range m.Levels {
		l := &m.Levels[i]
		out[i] = levelRecord{
			Index:    l.Index,
			TwoJ:     l.TwoJ,
			Parity:   l.Parity.String(),
			EnergyHa: l.Energy,
			EnergyEV: l.EnergyEV(),
		}
	}
	return out
}

// blockRecords resolves every block through the cascade's own cache, so
// blocks already computed by the step executor cost nothing extra.
func blockRecords(ctx context.Context, g *cascade.Graph, r *cascade.Resolver) ([]blockRecord, error) {
	out := make([]blockRecord, 0, len(g.Blocks))
	for _, b := range g.Blocks {
		m, err := r.Resolve(ctx, b)
		if err != nil {
			return nil, err
		}
		out = append(out, blockRecord{
			Key:        b.Key(),
			Electrons:  b.ElectronCount,
			Generation: b.Generation,
			Initial:    b.Initial,
			Levels:     m.Size(),
		})
	}
	return out, nil
}

func stepRecords(g *cascade.Graph) []stepRecord {
	out := make([]stepRecord, 0, len(g.Steps))
	for _, st := range g.Steps {
		rec := stepRecord{
			Process:  st.Process,
			Initial:  st.Initial.Key(),
			Final:    st.Final.Key(),
			Lines:    len(st.Lines),
			Pathways: len(st.Pathways),
		}
		if st.Intermediate != nil {
			rec.Intermediate = st.Intermediate.Key()
		}
		out = append(out, rec)
	}
	return out
}
