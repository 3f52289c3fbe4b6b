package report

import (
	"github.com/katalvlaran/lvms/annotated"
	"github.com/katalvlaran/lvms/fragment"
	"github.com/katalvlaran/lvms/peptide"
	"github.com/katalvlaran/lvms/sites"
)

// SlotRecord is one modification token and the slot it occupies.
type SlotRecord struct {
	Slot  int    `json:"slot" yaml:"slot"`
	Token string `json:"token" yaml:"token"`
}

// ParseRecord is the result of parsing one annotated sequence.
type ParseRecord struct {
	Input         string       `json:"input" yaml:"input"`
	Sequence      string       `json:"sequence" yaml:"sequence"`
	Annotated     string       `json:"annotated" yaml:"annotated"`
	Modifications []SlotRecord `json:"modifications" yaml:"modifications"`
}

// NewParseRecord flattens p in ascending slot order.
func NewParseRecord(input string, p annotated.Parsed) ParseRecord {
	rec := ParseRecord{
		Input:         input,
		Sequence:      p.Sequence,
		Annotated:     p.Annotated(),
		Modifications: make([]SlotRecord, 0, len(p.Mods)),
	}
	for _, slot := range p.Mods.Slots() {
		rec.Modifications = append(rec.Modifications, SlotRecord{Slot: slot, Token: p.Mods[slot]})
	}

	return rec
}

// FragmentRecord is one row of a fragment table.
type FragmentRecord struct {
	Ion       string  `json:"ion" yaml:"ion"`
	Number    int     `json:"number" yaml:"number"`
	Sequence  string  `json:"sequence" yaml:"sequence"`
	Annotated string  `json:"annotated" yaml:"annotated"`
	Mass      float64 `json:"mass" yaml:"mass"`
	MZ        float64 `json:"mz" yaml:"mz"`
	// Shared is set when FragmentReport.Against holds an equal fragment.
	Shared bool `json:"shared,omitempty" yaml:"shared,omitempty"`
}

// FragmentReport is a peptide with its fragment ladder.
type FragmentReport struct {
	Peptide   string           `json:"peptide" yaml:"peptide"`
	Mass      float64          `json:"mass" yaml:"mass"`
	Charge    int              `json:"charge" yaml:"charge"`
	Against   string           `json:"against,omitempty" yaml:"against,omitempty"`
	Fragments []FragmentRecord `json:"fragments" yaml:"fragments"`
}

// NewFragmentReport computes m/z values at charge for every fragment.
func NewFragmentReport(p *peptide.Peptide, frags []*fragment.Fragment, charge int) (FragmentReport, error) {
	rep := FragmentReport{
		Peptide:   p.AnnotatedSequence(),
		Mass:      p.MonoisotopicMass(),
		Charge:    charge,
		Fragments: make([]FragmentRecord, 0, len(frags)),
	}
	for _, f := range frags {
		mz, err := f.MZ(charge)
		if err != nil {
			return FragmentReport{}, err
		}
		rep.Fragments = append(rep.Fragments, FragmentRecord{
			Ion:       f.Type().String(),
			Number:    f.Number(),
			Sequence:  f.Sequence(),
			Annotated: f.AnnotatedSequence(),
			Mass:      f.MonoisotopicMass(),
			MZ:        mz,
		})
	}

	return rep, nil
}

// MarkShared records other as the comparison peptide and flags every
// fragment of frags found in shared. frags must be the slice the report was
// built from.
func (r *FragmentReport) MarkShared(other *peptide.Peptide, frags []*fragment.Fragment, shared *fragment.Set) {
	r.Against = other.AnnotatedSequence()
	for i, f := range frags {
		if i < len(r.Fragments) {
			r.Fragments[i].Shared = shared.Contains(f)
		}
	}
}

// SiteRecord is a decoded site expression.
type SiteRecord struct {
	Expr  string   `json:"expr" yaml:"expr"`
	Mask  uint32   `json:"mask" yaml:"mask"`
	Sites []string `json:"sites" yaml:"sites"`
}

// NewSiteRecord lists the member sites of m.
func NewSiteRecord(expr string, m sites.Mask) SiteRecord {
	members := m.Sites()
	rec := SiteRecord{Expr: expr, Mask: uint32(m), Sites: make([]string, 0, len(members))}
	for _, s := range members {
		rec.Sites = append(rec.Sites, s.String())
	}
	return rec
}
