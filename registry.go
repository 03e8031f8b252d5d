package fileconv

// Category groups extensions the registry knows about.
type Category string

const (
	CategoryVideo    Category = "video"
	CategoryAudio    Category = "audio"
	CategoryImage    Category = "image"
	CategoryDocument Category = "document"
	CategoryUnknown  Category = "unknown"
)

// CapabilityEntry declares which outputs a category's inputs can reach.
// The table is advisory for clients (format pickers) and authoritative for
// strategy validation; it performs no conversions itself.
type CapabilityEntry struct {
	Category Category `json:"category"`
	Inputs   []string `json:"inputs"`
	Outputs  []string `json:"outputs"`
}

// capabilityTable is loaded once and never mutated, so concurrent lookups
// need no locking.
var capabilityTable = []CapabilityEntry{
	{
		Category: CategoryVideo,
		Inputs:   []string{"mp4", "webm", "avi", "mov", "mkv", "flv", "wmv", "m4v"},
		Outputs:  []string{"mp4", "webm", "gif", "mp3", "wav", "aac"},
	},
	{
		Category: CategoryAudio,
		Inputs:   []string{"mp3", "wav", "ogg", "aac", "flac", "m4a", "wma"},
		Outputs:  []string{"mp3", "wav", "ogg", "aac", "flac"},
	},
	{
		Category: CategoryImage,
		Inputs:   []string{"jpg", "jpeg", "png", "gif", "webp", "bmp", "tiff", "avif"},
		Outputs:  []string{"webp", "png", "jpg", "avif", "pdf"},
	},
	{
		Category: CategoryDocument,
		Inputs:   []string{"pdf", "txt", "md"},
		Outputs:  []string{"pdf", "txt", "jpg", "png", "docx"},
	},
}

// Capabilities returns a copy of the static capability table.
func Capabilities() []CapabilityEntry {
	out := make([]CapabilityEntry, len(capabilityTable))
	copy(out, capabilityTable)
	return out
}

// CategoryOf returns the first category whose inputs contain ext, or
// CategoryUnknown. Pure lookup, no errors.
func CategoryOf(ext string) Category {
	for _, e := range capabilityTable {
		for _, in := range e.Inputs {
			if in == ext {
				return e.Category
			}
		}
	}
	return CategoryUnknown
}

// RegistryOutputs returns the output extensions declared for ext across all
// categories whose inputs contain it, never including ext itself. Unknown
// inputs yield an empty slice.
func RegistryOutputs(ext string) []string {
	var outputs []string
	seen := map[string]bool{}
	for _, e := range capabilityTable {
		matched := false
		for _, in := range e.Inputs {
			if in == ext {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, out := range e.Outputs {
			if out == ext || seen[out] {
				continue
			}
			seen[out] = true
			outputs = append(outputs, out)
		}
	}
	return outputs
}

// Supported reports whether the registry declares the pair convertible.
func Supported(inputExt, outputExt string) bool {
	if inputExt == outputExt {
		return false
	}
	for _, out := range RegistryOutputs(inputExt) {
		if out == outputExt {
			return true
		}
	}
	return false
}

// bridgeOutputs lists the dispatcher-level cross-category conversions that a
// single category row cannot express: pdf pages rasterized to images, and
// text rendered onto an image canvas.
func bridgeOutputs(ext string) []string {
	switch {
	case ext == "pdf":
		return []string{"jpg", "png"}
	case isTextExt(ext):
		return []string{"jpg", "jpeg", "png", "webp", "avif"}
	}
	return nil
}

// SupportedOutputs returns every output the dispatcher will accept for ext:
// the registry row plus the cross-category bridges. Used to populate client
// format pickers.
func SupportedOutputs(ext string) []string {
	outputs := RegistryOutputs(ext)
	seen := map[string]bool{}
	for _, out := range outputs {
		seen[out] = true
	}
	for _, out := range bridgeOutputs(ext) {
		if out == ext || seen[out] {
			continue
		}
		seen[out] = true
		outputs = append(outputs, out)
	}
	return outputs
}
