package fileconv

import (
	"slices"
	"testing"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		ext  string
		want Category
	}{
		{"mp4", CategoryVideo},
		{"mkv", CategoryVideo},
		{"flac", CategoryAudio},
		{"wma", CategoryAudio},
		{"avif", CategoryImage},
		{"md", CategoryDocument},
		{"exe", CategoryUnknown},
		{"", CategoryUnknown},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.ext); got != tt.want {
			t.Errorf("CategoryOf(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestRegistryOutputsExcludesSelf(t *testing.T) {
	for _, entry := range Capabilities() {
		for _, in := range entry.Inputs {
			outs := RegistryOutputs(in)
			if slices.Contains(outs, in) {
				t.Errorf("RegistryOutputs(%q) contains the input itself: %v", in, outs)
			}
			if len(outs) == 0 {
				t.Errorf("RegistryOutputs(%q) is empty for a known input", in)
			}
		}
	}
}

func TestRegistryOutputsUnknown(t *testing.T) {
	if outs := RegistryOutputs("exe"); len(outs) != 0 {
		t.Errorf("RegistryOutputs(\"exe\") = %v, want empty", outs)
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		input  string
		output string
		want   bool
	}{
		{"mp4", "gif", true},
		{"mp4", "mp3", true},
		{"mp4", "mp4", false},
		{"mp3", "gif", false},
		{"png", "pdf", true},
		{"pdf", "docx", true},
		{"exe", "pdf", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.input, tt.output); got != tt.want {
			t.Errorf("Supported(%q, %q) = %v, want %v", tt.input, tt.output, got, tt.want)
		}
	}
}

func TestSupportedOutputsBridges(t *testing.T) {
	pdfOuts := SupportedOutputs("pdf")
	for _, want := range []string{"jpg", "png", "txt", "docx"} {
		if !slices.Contains(pdfOuts, want) {
			t.Errorf("SupportedOutputs(\"pdf\") missing %q: %v", want, pdfOuts)
		}
	}

	txtOuts := SupportedOutputs("txt")
	for _, want := range []string{"pdf", "docx", "png", "jpeg", "webp", "avif"} {
		if !slices.Contains(txtOuts, want) {
			t.Errorf("SupportedOutputs(\"txt\") missing %q: %v", want, txtOuts)
		}
	}
	if slices.Contains(txtOuts, "txt") {
		t.Errorf("SupportedOutputs(\"txt\") contains the input itself")
	}
}

func TestCapabilitiesIsACopy(t *testing.T) {
	a := Capabilities()
	a[0].Category = "mutated"
	if Capabilities()[0].Category == "mutated" {
		t.Error("Capabilities exposes the internal table")
	}
}
