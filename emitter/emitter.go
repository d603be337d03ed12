// Package emitter renders an encoding set as a SystemVerilog snippet: a
// reproducibility header, the pairwise distance histogram, the state enum and
// an FSM skeleton with one case arm per state.
package emitter

import (
	"fmt"
	"github.com/fernandosanchezjr/sparsefsm/analytics"
	"github.com/fernandosanchezjr/sparsefsm/encoder"
	"io"
	"strconv"
	"strings"
	"text/template"
)

const (
	DefaultTool = "sparse-fsm-encode"
	BarWidth    = 20
)

const sourceTemplate = `// Encoding generated with {{.Tool}} {{.Params}}
// Hamming distance histogram:
//
{{range .Buckets}}// {{.Distance}}: {{.Pad}}{{.Bar}}
{{end}}//
// Minimum Hamming distance: {{.Min}}
// Maximum Hamming distance: {{.Max}}
//
localparam int StateWidth = {{.Width}};
typedef enum logic [StateWidth-1:0] {
{{range .States}}  State{{.Index}}{{.Pad}} = {{.Literal}}{{.Comma}}
{{end}}} state_e;

state_e state_d, state_q;
always_comb begin : p_fsm
  // Default assignments
  state_d = state_q;

  unique case (state_q)
{{range .States}}    State{{.Index}}: ;
{{end}}    default: ; // Consider triggering an error or alert in this case.
  endcase
end

// This primitive is used to place a size-only constraint on the
// flops in order to prevent FSM state encoding optimizations.
prim_flop #(
  .Width(StateWidth),
  .ResetValue(StateWidth'(State0))
) u_state_regs (
  .clk_i,
  .rst_ni,
  .d_i ( state_d ),
  .q_o ( state_q )
);

`

var source = template.Must(template.New("source").Parse(sourceTemplate))

type Artifact struct {
	// Tool names the generator in the reproducibility header; DefaultTool when empty.
	Tool       string
	Params     encoder.Params
	Encodings  encoder.EncodingSet
	Statistics *analytics.Statistics
}

type bucket struct {
	Distance int
	Pad      string
	Bar      string
}

type state struct {
	Index   int
	Pad     string
	Literal string
	Comma   string
}

type view struct {
	Tool    string
	Params  encoder.Params
	Width   int
	Min     string
	Max     string
	Buckets []bucket
	States  []state
}

// pad right-aligns index labels to the digit count of the number of states.
func pad(states, index int) string {
	var n = len(strconv.Itoa(states)) - len(strconv.Itoa(index))
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func newView(a *Artifact) *view {
	var stats = a.Statistics
	if stats == nil {
		stats = analytics.Collect(a.Encodings, a.Params.Width)
	}
	var v = &view{
		Tool:   a.Tool,
		Params: a.Params,
		Width:  a.Params.Width,
		Min:    "n/a",
		Max:    "n/a",
	}
	if v.Tool == "" {
		v.Tool = DefaultTool
	}
	if stats.Pairs > 0 {
		v.Min = strconv.Itoa(stats.Min)
		v.Max = strconv.Itoa(stats.Max)
	}
	var peak = stats.Histogram.Peak()
	for distance, count := range stats.Histogram {
		var bar = "--"
		if count > 0 {
			bar = fmt.Sprintf("%s (%.2f%%)", strings.Repeat("|", count*BarWidth/peak), stats.Histogram.Share(distance))
		}
		v.Buckets = append(v.Buckets, bucket{
			Distance: distance,
			Pad:      pad(a.Params.States, distance),
			Bar:      bar,
		})
	}
	for index, encoding := range a.Encodings {
		var comma = ","
		if index == len(a.Encodings)-1 {
			comma = ""
		}
		v.States = append(v.States, state{
			Index:   index,
			Pad:     pad(a.Params.States, index),
			Literal: encoding.Literal(a.Params.Width),
			Comma:   comma,
		})
	}
	return v
}

// Render writes the artifact. Statistics are collected from the encodings when
// the artifact does not carry them.
func Render(w io.Writer, a *Artifact) error {
	return source.Execute(w, newView(a))
}

func RenderString(a *Artifact) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, a); err != nil {
		return "", err
	}
	return sb.String(), nil
}
