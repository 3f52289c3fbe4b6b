package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Writer encodes records to an output stream.
type Writer struct {
	out    io.Writer
	format Format
	color  bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithColor forces token colouring on or off in text mode.
func WithColor(on bool) Option {
	return func(w *Writer) { w.color = on }
}

// NewWriter returns a Writer for format. Colour defaults to on when out is
// a terminal.
func NewWriter(out io.Writer, format Format, opts ...Option) *Writer {
	w := &Writer{out: out, format: format, color: isTerminal(out)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteParse writes parse results. Text mode prints the input, the plain
// sequence and one indented line per modification.
func (w *Writer) WriteParse(recs []ParseRecord) error {
	if w.format != FormatText {
		return w.encode(recs)
	}

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\n", r.Sequence, w.tokens(r.Annotated))
		for _, m := range r.Modifications {
			fmt.Fprintf(tw, "  slot %d\t%s\n", m.Slot, w.tokens(m.Token))
		}
	}
	return tw.Flush()
}

// WriteFragments writes a fragment table.
func (w *Writer) WriteFragments(rep FragmentReport) error {
	if w.format != FormatText {
		return w.encode(rep)
	}

	fmt.Fprintf(w.out, "%s  M=%.6f  z=%d\n", w.tokens(rep.Peptide), rep.Mass, rep.Charge)
	if rep.Against != "" {
		fmt.Fprintf(w.out, "against %s\n", w.tokens(rep.Against))
	}
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "ion\tmass\tm/z\t\n")
	for _, f := range rep.Fragments {
		mark := ""
		if f.Shared {
			mark = "  ="
		}
		fmt.Fprintf(tw, "%s%d\t%.6f\t%.6f\t  %s%s\n", f.Ion, f.Number, f.Mass, f.MZ, w.tokens(f.Annotated), mark)
	}
	return tw.Flush()
}

// WriteSites writes decoded site expressions.
func (w *Writer) WriteSites(recs []SiteRecord) error {
	if w.format != FormatText {
		return w.encode(recs)
	}

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Expr, "0x"+strconv.FormatUint(uint64(r.Mask), 16), strings.Join(r.Sites, " "))
	}
	return tw.Flush()
}

func (w *Writer) encode(v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(w.format))
}

// tokens colours every bracketed token in s.
func (w *Writer) tokens(s string) string {
	if !w.color || !strings.Contains(s, "[") {
		return s
	}
	c := color.New(color.FgCyan)
	c.EnableColor()

	var b strings.Builder
	for {
		open := strings.IndexByte(s, '[')
		if open < 0 {
			break
		}
		end := strings.IndexByte(s[open:], ']')
		if end < 0 {
			break
		}
		end += open + 1
		b.WriteString(s[:open])
		b.WriteString(c.Sprint(s[open:end]))
		s = s[end:]
	}
	b.WriteString(s)

	return b.String()
}
