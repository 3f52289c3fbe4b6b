package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvms/annotated"
	"github.com/katalvlaran/lvms/internal/config"
	"github.com/katalvlaran/lvms/internal/report"
	"github.com/katalvlaran/lvms/peptide"
)

// execute runs the command tree in an isolated home and working directory.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	dir := t.TempDir()
	cmd := newRootCmd(config.WithHomeDir(dir), config.WithWorkDir(dir))

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvms version 0.1.0 (build: dev)\n", out)
}

func TestParse_Text(t *testing.T) {
	out, _, err := execute(t, "parse", "PEPT[Phospho]IDE", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"PEPTIDE", "PEPT[Phospho]IDE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"slot", "4", "[Phospho]"}, strings.Fields(lines[1]))
}

func TestParse_JSON(t *testing.T) {
	out, _, err := execute(t, "parse", "-o", "json", "[Acetyl]-PEPT[Phospho]IDE", "ACDK")
	require.NoError(t, err)

	var recs []report.ParseRecord
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "PEPTIDE", recs[0].Sequence)
	assert.Equal(t, []report.SlotRecord{{Slot: 0, Token: "[Acetyl]"}, {Slot: 4, Token: "[Phospho]"}}, recs[0].Modifications)
	assert.Empty(t, recs[1].Modifications)
}

func TestParse_Convention(t *testing.T) {
	out, _, err := execute(t, "parse", "-o", "json", "--convention", "reference", "[Acetyl]-PEPT[Phospho]IDE")
	require.NoError(t, err)

	var recs []report.ParseRecord
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, 5, recs[0].Modifications[1].Slot)
}

func TestParse_Errors(t *testing.T) {
	_, _, err := execute(t, "parse", "PEP[Phospho")
	assert.ErrorIs(t, err, annotated.ErrMalformedAnnotation)

	_, _, err = execute(t, "parse", "--strict", "PEPXIDE")
	assert.ErrorIs(t, err, annotated.ErrMalformedAnnotation)

	_, _, err = execute(t, "parse", "--convention", "sideways", "PEPTIDE")
	assert.Error(t, err)

	_, _, err = execute(t, "parse")
	assert.Error(t, err, "at least one sequence is required")

	_, _, err = execute(t, "parse", "-o", "csv", "PEPTIDE")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestFragments_JSON(t *testing.T) {
	out, _, err := execute(t, "fragments", "-o", "json", "--ions", "y", "PEPTIDE")
	require.NoError(t, err)

	var rep report.FragmentReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Fragments, 6)
	assert.Equal(t, "y", rep.Fragments[1].Ion)
	assert.Equal(t, "DE", rep.Fragments[1].Sequence)
	assert.InDelta(t, 262.080101, rep.Fragments[1].Mass, 1e-5)
	assert.InDelta(t, 263.087377, rep.Fragments[1].MZ, 1e-5)
}

func TestFragments_DefaultsAndCharge(t *testing.T) {
	out, _, err := execute(t, "fragments", "-o", "yaml", "-z", "2", "[Acetyl]-PEPT[Phospho]IDE")
	require.NoError(t, err)

	var rep report.FragmentReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Fragments, 12, "b and y by default")
	assert.Equal(t, 2, rep.Charge)
	assert.InDelta(t, (rep.Fragments[0].Mass+2*1.007276)/2, rep.Fragments[0].MZ, 1e-5)
}

func TestFragments_Match(t *testing.T) {
	out, _, err := execute(t, "fragments", "-o", "json", "--match", "263.0874", "PEPTIDE")
	require.NoError(t, err)

	var rep report.FragmentReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Fragments, 1)
	assert.Equal(t, "y", rep.Fragments[0].Ion)
	assert.Equal(t, 2, rep.Fragments[0].Number)
}

func TestFragments_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fragments:
  ions: c
modifications:
  - name: Succinyl
    mass: 100.016044
    sites: K
`), 0o644))

	out, _, err := execute(t, "--config", path, "fragments", "-o", "json", "PEK[Succinyl]")
	require.NoError(t, err)

	var rep report.FragmentReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "PEK[Succinyl]", rep.Peptide)
	require.Len(t, rep.Fragments, 2)
	assert.Equal(t, "c", rep.Fragments[0].Ion)
}

func TestFragments_Errors(t *testing.T) {
	_, _, err := execute(t, "fragments", "PEPT[Glyco]IDE")
	assert.ErrorIs(t, err, peptide.ErrUnknownModification)

	_, _, err = execute(t, "fragments", "P[Phospho]EPTIDE")
	assert.ErrorIs(t, err, peptide.ErrSiteNotAllowed)

	_, _, err = execute(t, "fragments", "--charge", "0", "PEPTIDE")
	assert.Error(t, err)

	_, _, err = execute(t, "fragments", "--ions", "q", "PEPTIDE")
	assert.Error(t, err)

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "fragments", "PEPTIDE")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSites(t *testing.T) {
	out, _, err := execute(t, "sites", "-o", "json", "S|T|Y", "NPep,K")
	require.NoError(t, err)

	var recs []report.SiteRecord
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"S", "T", "Y"}, recs[0].Sites)
	assert.Equal(t, []string{"K", "NPep"}, recs[1].Sites)

	_, _, err = execute(t, "sites", "Q|Zz")
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "parse", "PEPTIDE")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Parsed sequence")

	_, stderr, err = execute(t, "parse", "PEPTIDE")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func sharedFlags(t *testing.T, out string) []bool {
	t.Helper()
	var rep report.FragmentReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	var shared []bool
	for _, f := range rep.Fragments {
		shared = append(shared, f.Shared)
	}
	return shared
}

func TestFragments_Against(t *testing.T) {
	out, _, err := execute(t, "fragments", "-o", "json", "--ions", "b", "--against", "PEPTIDE", "PEPT[Phospho]IDE")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false, false, false}, sharedFlags(t, out))

	_, _, err = execute(t, "fragments", "--against", "PEP[", "PEPTIDE")
	assert.ErrorIs(t, err, annotated.ErrMalformedAnnotation)
}

func TestFragments_AgainstUsesConfiguredEpsilon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mass:\n  epsilon: 100\n"), 0o644))

	out, _, err := execute(t, "--config", path, "fragments", "-o", "json", "--ions", "b", "--against", "PEPTIDE", "PEPT[Phospho]IDE")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true, true, true}, sharedFlags(t, out),
		"an epsilon wider than the phosphate mass makes every b ion shared")
}

func TestConfigInitAndShow(t *testing.T) {
	home := t.TempDir()
	run := func(args ...string) string {
		cmd := newRootCmd(config.WithHomeDir(home), config.WithWorkDir(home))
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	path := filepath.Join(home, config.UserConfigDir, config.UserConfigFile)
	assert.Equal(t, "created "+path+"\n", run("config", "init"))
	assert.FileExists(t, path)
	assert.Equal(t, "exists "+path+"\n", run("config", "init"))

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(run("config", "show")), &cfg))
	assert.Equal(t, config.DefaultConfig().Fragments, cfg.Fragments)
	assert.Equal(t, config.DefaultConfig().Mass.Epsilon, cfg.Mass.Epsilon)
}
