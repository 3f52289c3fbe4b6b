package peptide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvms/annotated"
	"github.com/katalvlaran/lvms/fragment"
	"github.com/katalvlaran/lvms/mass"
	"github.com/katalvlaran/lvms/peptide"
	"github.com/katalvlaran/lvms/sites"
)

const peptideMass = 799.359964 // PEPTIDE, neutral monoisotopic

func mustMod(t *testing.T, set *peptide.ModificationSet, name string) *peptide.Modification {
	t.Helper()
	m, ok := set.Lookup(name)
	require.True(t, ok, "modification %s", name)
	return m
}

func TestNew(t *testing.T) {
	p, err := peptide.New("peptide")
	require.NoError(t, err)
	assert.Equal(t, "PEPTIDE", p.Sequence())
	assert.Equal(t, 7, p.Len())
	assert.Equal(t, "PEPTIDE", p.AnnotatedSequence())
	assert.Zero(t, p.ModificationCount())

	_, err = peptide.New("")
	assert.ErrorIs(t, err, peptide.ErrEmptySequence)

	_, err = peptide.New("PEPXIDE")
	assert.ErrorIs(t, err, peptide.ErrInvalidResidue)
}

func TestPeptide_MonoisotopicMass(t *testing.T) {
	p, err := peptide.New("PEPTIDE")
	require.NoError(t, err)
	assert.InDelta(t, peptideMass, p.MonoisotopicMass(), 1e-5)

	set := peptide.DefaultModifications()
	require.NoError(t, p.SetModification(4, mustMod(t, set, "Phospho")))
	assert.InDelta(t, peptideMass+79.966331, p.MonoisotopicMass(), 1e-5)
}

func TestPeptide_SetModification(t *testing.T) {
	set := peptide.DefaultModifications()
	phospho := mustMod(t, set, "Phospho")
	acetyl := mustMod(t, set, "Acetyl")
	amidated := mustMod(t, set, "Amidated")

	p, err := peptide.New("PEPTIDE")
	require.NoError(t, err)

	require.NoError(t, p.SetModification(4, phospho), "T accepts Phospho")
	require.NoError(t, p.SetModification(0, acetyl), "N-terminus accepts Acetyl")
	require.NoError(t, p.SetModification(8, amidated), "C-terminus accepts Amidated")

	assert.ErrorIs(t, p.SetModification(1, phospho), peptide.ErrSiteNotAllowed, "P rejects Phospho")
	assert.ErrorIs(t, p.SetModification(8, acetyl), peptide.ErrSiteNotAllowed)
	assert.ErrorIs(t, p.SetModification(9, phospho), peptide.ErrSlotOutOfRange)
	assert.ErrorIs(t, p.SetModification(-1, phospho), peptide.ErrSlotOutOfRange)

	assert.Equal(t, "[Acetyl]-PEPT[Phospho]IDE", p.AnnotatedSequence())
	assert.Equal(t, 3, p.ModificationCount())

	m, ok := p.ModificationAt(8)
	require.True(t, ok)
	assert.Equal(t, "Amidated", m.Token())

	_, ok = p.ModificationAt(2)
	assert.False(t, ok)
	_, ok = p.ModificationAt(42)
	assert.False(t, ok)

	require.NoError(t, p.SetModification(4, nil))
	assert.Nil(t, p.Modification(4))

	p.ClearModifications()
	assert.Zero(t, p.ModificationCount())
	assert.Equal(t, "PEPTIDE", p.String())
}

func TestPeptide_SiteAt(t *testing.T) {
	p, err := peptide.New("SK")
	require.NoError(t, err)

	assert.Equal(t, sites.NPep|sites.NProt, p.SiteAt(0))
	assert.Equal(t, sites.S, p.SiteAt(1))
	assert.Equal(t, sites.K, p.SiteAt(2))
	assert.Equal(t, sites.PepC|sites.ProtC, p.SiteAt(3))
	assert.Equal(t, sites.None, p.SiteAt(4))
}

func TestPeptide_ApplyModification(t *testing.T) {
	set := peptide.DefaultModifications()
	p, err := peptide.New("STYKS")
	require.NoError(t, err)

	n := p.ApplyModification(mustMod(t, set, "Phospho"), sites.All)
	assert.Equal(t, 4, n)
	assert.Equal(t, "S[Phospho]T[Phospho]Y[Phospho]KS[Phospho]", p.AnnotatedSequence())

	p.ClearModifications()
	n = p.ApplyModification(mustMod(t, set, "Phospho"), sites.S)
	assert.Equal(t, 2, n)

	n = p.ApplyModification(mustMod(t, set, "Acetyl"), sites.NPep)
	assert.Equal(t, 1, n, "only the peptide N-terminus, not K")
	assert.Equal(t, "[Acetyl]-S[Phospho]TYKS[Phospho]", p.AnnotatedSequence())

	assert.Zero(t, p.ApplyModification(nil, sites.All))
}

func TestParse(t *testing.T) {
	set := peptide.DefaultModifications()

	p, err := peptide.Parse("[Acetyl]-PEPT[Phospho]IDE", set)
	require.NoError(t, err)
	assert.Equal(t, "PEPTIDE", p.Sequence())
	assert.Equal(t, "Acetyl", p.Modification(0).Name)
	assert.Equal(t, "Phospho", p.Modification(4).Name)
	assert.Equal(t, "[Acetyl]-PEPT[Phospho]IDE", p.AnnotatedSequence())

	p, err = peptide.Parse("PEPT[+79.966331]IDE", nil)
	require.NoError(t, err)
	assert.InDelta(t, 79.966331, p.Modification(4).Mass, 1e-12)
	assert.Equal(t, sites.All, p.Modification(4).Sites)

	_, err = peptide.Parse("PEPT[Glyco]IDE", set)
	assert.ErrorIs(t, err, peptide.ErrUnknownModification)

	_, err = peptide.Parse("P[Phospho]EPTIDE", set)
	assert.ErrorIs(t, err, peptide.ErrSiteNotAllowed)

	_, err = peptide.Parse("PE[Phospho", set)
	assert.ErrorIs(t, err, annotated.ErrMalformedAnnotation)

	_, err = peptide.Parse("PEPT[Phospho]IDEX", set)
	assert.ErrorIs(t, err, peptide.ErrInvalidResidue)

	// The legacy convention shifts the Phospho onto I, which rejects it.
	_, err = peptide.Parse("[Acetyl]-PEPT[Phospho]IDE", set, annotated.WithConvention(annotated.Reference))
	assert.ErrorIs(t, err, peptide.ErrSiteNotAllowed)
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { peptide.MustParse("PEPTIDE", nil) })
	assert.Panics(t, func() { peptide.MustParse("PEP[", nil) })
}

func TestModificationSet(t *testing.T) {
	set := peptide.DefaultModifications()
	assert.Equal(t, 7, set.Len())
	assert.Equal(t, "Acetyl", set.Names()[0])

	custom := &peptide.Modification{Name: "Phospho", Mass: 80, Sites: sites.H}
	set.Add(custom)
	got, ok := set.Lookup("Phospho")
	require.True(t, ok)
	assert.Same(t, custom, got, "last registration wins")
	assert.Equal(t, 7, set.Len())

	m, err := set.Resolve("-18.010565")
	require.NoError(t, err)
	assert.InDelta(t, -18.010565, m.Mass, 1e-12)

	_, err = set.Resolve("18.01")
	assert.ErrorIs(t, err, peptide.ErrUnknownModification, "unsigned numbers are names")

	var nilSet *peptide.ModificationSet
	assert.Zero(t, nilSet.Len())
	assert.Nil(t, nilSet.Names())

	assert.Equal(t, "Phospho(+80.000000 @ H)", custom.String())
}

func TestResidueMass(t *testing.T) {
	m, ok := peptide.ResidueMass('G')
	require.True(t, ok)
	assert.InDelta(t, 57.02146, m, 1e-5)

	_, ok = peptide.ResidueMass('g')
	assert.False(t, ok, "table is upper-case")
	_, ok = peptide.ResidueMass('B')
	assert.False(t, ok)
}

func TestPeptide_IsPolymer(t *testing.T) {
	var p fragment.Polymer = peptide.MustParse("PEPTIDE", nil)
	assert.Equal(t, 7, p.Len())
	assert.InDelta(t, peptideMass+mass.Proton, mustMZ(t, peptide.MustParse("PEPTIDE", nil).MonoisotopicMass()), 1e-5)
}

func mustMZ(t *testing.T, m float64) float64 {
	t.Helper()
	mz, err := mass.ToMZ(m, 1)
	require.NoError(t, err)
	return mz
}
