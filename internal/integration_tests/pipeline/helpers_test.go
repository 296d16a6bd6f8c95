package integration_tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akrivova/ionflow/internal/persist"
)

// writeRequestFiles lays out a two-file request set: the nuclear
// description in one file, the requests in another, exercising the
// loader's merge path the way real request directories do.
//
// The cascade runs a screened mean field so the photoionization
// channels at 12 Hartree are open. The structure keeps bare-nuclear
// orbitals, which are cheap and still split fluorine-like neon into
// two levels.
func writeRequestFiles(t *testing.T) (dir, dbPath string) {
	t.Helper()
	dir = t.TempDir()

	atomHCL := `
		nuclear {
			charge = 10
		}
	`
	requestsHCL := `
		structure "f-like" {
			configurations = ["1s^2 2s^2 2p^5"]

			field {
				method = "pure-nuclear"
			}
		}

		cascade "neon-valence" {
			configurations    = ["1s^2 2s^2 2p^5"]
			max_electron_loss = 1
			shells            = ["2s", "2p"]

			process "photo" {
				lost_electrons = 1
			}

			field {
				method         = "meanfield-dfs"
				max_iterations = 80
				accuracy       = 1.0e-5
			}

			lines {
				photon_energies = [12.0]
			}
		}

		simulation "neon-valence" {
			initial        = [0.7, 0.3]
			photon_fluence = 2.0
			outputs        = ["ion-distribution", "level-distribution"]
		}
	`

	require.NoError(t, os.WriteFile(filepath.Join(dir, "atom.hcl"), []byte(atomHCL), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requests.hcl"), []byte(requestsHCL), 0o600))
	return dir, filepath.Join(dir, "runs.db")
}

// writeExtraRequest drops one more file into an existing request
// directory.
func writeExtraRequest(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

// openSnapshots reopens the snapshot database the way the runs command
// does, closing it with the test.
func openSnapshots(t *testing.T, path string) *persist.SQLite {
	t.Helper()
	store, err := persist.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}
