package driver

import (
	"encoding/json"
	"fmt"

	"tagattr/internal/diag"
	"tagattr/internal/observ"
	"tagattr/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// TimingNote builds the info diagnostic that carries a timing report.
// The JSON payload sits in the first note so that --format json keeps it.
func TimingNote(kind, path string, report observ.Report) (diag.Diagnostic, bool) {
	return timingDiagnostic(timingPayload{Kind: kind, Path: path, TotalMS: report.TotalMS, Phases: report.Phases})
}

func timingDiagnostic(payload timingPayload) (diag.Diagnostic, bool) {
	if payload.Kind == "" {
		payload.Kind = "pipeline"
	}
	msg := fmt.Sprintf("timings (%s): total %.3f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg = fmt.Sprintf("%s, %s", msg, payload.Path)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return diag.Diagnostic{}, false
	}
	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, msg).
		WithNote(source.Span{}, string(data))
	return d, true
}

func appendTimingDiagnostic(bag *diag.Bag, payload timingPayload) {
	if bag == nil {
		return
	}
	d, ok := timingDiagnostic(payload)
	if !ok {
		return
	}
	if bag.Add(d) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(d)
	bag.Merge(overflow)
}
