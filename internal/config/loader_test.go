package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/radial"
)

func writeRequest(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMergesFiles(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "atom.hcl", `
		nuclear {
			charge = 10
			mass   = 20.18
		}

		grid {
			points = 300
		}
	`)
	writeRequest(t, dir, "requests.hcl", `
		structure "neon-ground" {
			configurations = ["1s^2 2s^2 2p^6"]

			field {
				start          = "hydrogenic"
				max_iterations = 24
				accuracy       = 1.0e-8
			}

			interaction {
				breit = true
			}
		}

		cascade "neon-k" {
			configurations    = ["1s^1 2s^2 2p^6"]
			max_electron_loss = 2
			shells            = ["1s", "2s", "2p"]

			process "radiative" {}

			process "auger" {
				lost_electrons = 1
			}

			lines {
				multipoles      = ["E1"]
				photon_energies = [870 * eV]
			}
		}

		simulation "neon-k" {
			initial        = [1.0]
			photon_fluence = 1.0e11
			outputs        = ["ion-distribution"]
		}
	`)

	doc, err := Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 10.0, doc.Nuclear.Charge)
	assert.Equal(t, 20.18, doc.Nuclear.Mass)
	require.NotNil(t, doc.Grid)
	assert.Equal(t, 300, doc.Grid.Points)

	st := doc.Structure("neon-ground")
	require.NotNil(t, st)
	assert.Equal(t, []string{"1s^2 2s^2 2p^6"}, st.Configurations)
	require.NotNil(t, st.Field)
	assert.Equal(t, "hydrogenic", st.Field.Start)
	assert.Equal(t, 24, st.Field.MaxIterations)
	require.NotNil(t, st.Interaction)
	assert.True(t, st.Interaction.Breit)
	assert.Nil(t, st.Interaction.Coulomb)

	ca := doc.Cascade("neon-k")
	require.NotNil(t, ca)
	assert.Equal(t, 2, ca.MaxElectronLoss)
	assert.Equal(t, []string{"1s", "2s", "2p"}, ca.Shells)
	require.Len(t, ca.Processes, 2)
	assert.Equal(t, "radiative", ca.Processes[0].Tag)
	assert.Equal(t, "auger", ca.Processes[1].Tag)
	assert.Equal(t, 1, ca.Processes[1].LostElectrons)
	require.NotNil(t, ca.Lines)
	require.Len(t, ca.Lines.PhotonEnergies, 1)
	assert.InDelta(t, 870/radial.HartreeEV, ca.Lines.PhotonEnergies[0], 1e-12)

	sim := doc.Simulation("neon-k")
	require.NotNil(t, sim)
	assert.Equal(t, "neon-k", sim.Cascade, "cascade reference defaults to the simulation name")
	assert.Equal(t, []float64{1}, sim.Initial)
	assert.Equal(t, 1.0e11, sim.PhotonFluence)
}

func TestLoadSingleFilePath(t *testing.T) {
	dir := t.TempDir()
	path := writeRequest(t, dir, "only.hcl", `
		nuclear {
			charge = 26
		}

		structure "iron" {
			configurations = ["1s^2 2s^2 2p^6 3s^2 3p^6 3d^6 4s^2"]
		}
	`)

	doc, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 26.0, doc.Nuclear.Charge)
	assert.Equal(t, "point", doc.Nuclear.Model, "model defaults to a point nucleus")
	require.Len(t, doc.Structures, 1)
	assert.Nil(t, doc.Grid)
}

func TestLoadRejectsSyntaxError(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "broken.hcl", `
		nuclear {
			charge = 10
	`)

	_, err := Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.hcl")
}

func TestLoadRejectsUnknownAttribute(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "typo.hcl", `
		nuclear {
			charge  = 10
			chargee = 11
		}
	`)

	_, err := Load(context.Background(), dir)
	require.Error(t, err)
}

func TestLoadRejectsDuplicateNuclear(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "a.hcl", `
		nuclear { charge = 10 }
	`)
	writeRequest(t, dir, "b.hcl", `
		nuclear { charge = 12 }
	`)

	_, err := Load(context.Background(), dir)
	require.ErrorIs(t, err, atom.ErrInvalidConfiguration)
}

func TestLoadRequiresNuclear(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "a.hcl", `
		structure "bare" {
			configurations = ["1s^2"]
		}
	`)

	_, err := Load(context.Background(), dir)
	require.ErrorIs(t, err, atom.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "nuclear")
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "a.hcl", `
		nuclear { charge = 10 }

		structure "twin" {
			configurations = ["1s^2 2s^2 2p^6"]
		}

		structure "twin" {
			configurations = ["1s^2 2s^2 2p^5"]
		}
	`)

	_, err := Load(context.Background(), dir)
	require.ErrorIs(t, err, atom.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "twin")
}

func TestLoadRejectsDanglingSimulation(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "a.hcl", `
		nuclear { charge = 10 }

		simulation "watch" {
			cascade = "nowhere"
			initial = [1.0]
			outputs = ["ion-distribution"]
		}
	`)

	_, err := Load(context.Background(), dir)
	require.ErrorIs(t, err, atom.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestLoadRejectsMissingPath(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

func TestLoadIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "notes.txt", "not a request")
	_, err := Load(context.Background(), dir)
	require.ErrorIs(t, err, atom.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "no .hcl files")
}
