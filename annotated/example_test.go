package annotated_test

import (
	"fmt"

	"github.com/katalvlaran/lvms/annotated"
)

func ExampleParse() {
	p, err := annotated.Parse("[Acetyl]-PEP[Phospho]TIDE")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Sequence)
	for _, slot := range p.Mods.Slots() {
		fmt.Println(slot, p.Mods[slot])
	}

	// Output:
	// PEPTIDE
	// 0 [Acetyl]
	// 3 [Phospho]
}

func ExampleRender() {
	p, _ := annotated.Parse("[Acetyl]-PEP[Phospho]TIDE")
	l := len(p.Sequence)

	fmt.Println(annotated.Render(p.Sequence, p.Mods, annotated.NTerminal(4)))
	fmt.Println(annotated.Render(p.Sequence, p.Mods, annotated.CTerminal(l, 5)))

	// Output:
	// [Acetyl]-PEP[Phospho]T
	// P[Phospho]TIDE
}

func ExampleParse_malformed() {
	_, err := annotated.Parse("PE[Phospho")
	fmt.Println(err)

	// Output:
	// annotated: malformed annotation at end of input: unterminated modification token
}
