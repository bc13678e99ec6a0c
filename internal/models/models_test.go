package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMetricKindMapping(t *testing.T) {
	want := map[MetricKind][2]string{
		MetricCPU:      {"CPU", "cpu"},
		MetricMemory:   {"Memory", "memory"},
		MetricDisk:     {"Disk", "disk"},
		MetricUpload:   {"Upload", "upload"},
		MetricDownload: {"Download", "download"},
	}
	for kind, names := range want {
		if kind.Name() != names[0] || kind.LabelID() != names[1] {
			t.Errorf("%d: got %q/%q, want %q/%q", kind, kind.Name(), kind.LabelID(), names[0], names[1])
		}
	}
	if len(MetricKinds) != len(want) {
		t.Errorf("MetricKinds has %d entries, want %d", len(MetricKinds), len(want))
	}
}

func TestSnapshotAvailability(t *testing.T) {
	var snap MetricSnapshot
	if !snap.Available(MetricDisk) {
		t.Error("a snapshot without errors is fully available")
	}

	snap.SetError(MetricDisk, nil)
	if snap.Errors != nil {
		t.Error("SetError(nil) must not record anything")
	}

	snap.SetError(MetricUpload, errors.New("down"))
	if snap.Available(MetricDownload) {
		t.Error("download shares the upload reading")
	}
	if _, ok := snap.Percent(MetricUpload); ok {
		t.Error("upload has no percentage")
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeDark.Toggled() != ThemeLight || ThemeLight.Toggled() != ThemeDark {
		t.Error("Toggled should swap themes")
	}
	if ThemeDark.ToggleCaption() != " Day " || ThemeLight.ToggleCaption() != " Night " {
		t.Error("unexpected toggle captions")
	}
	if ThemeDark.Palette().Background == ThemeLight.Palette().Background {
		t.Error("themes should differ in background")
	}
}

func TestFrameJSON(t *testing.T) {
	tier := TierCritical
	frame := Frame{
		Header: "System Usage",
		Theme:  ThemeLight,
		Labels: []Label{{ID: "disk", Name: "Disk", Text: "95.0%", Tier: &tier}},
	}

	data, err := json.Marshal(frame)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Frame
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Theme != ThemeLight {
		t.Errorf("theme: got %v", decoded.Theme)
	}
	if decoded.Labels[0].Tier == nil || *decoded.Labels[0].Tier != TierCritical {
		t.Errorf("tier: got %v", decoded.Labels[0].Tier)
	}
}
