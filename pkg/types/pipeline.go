package types

// RestMarker is the reserved pipeline entry that splices in the next
// matching pipeline during flattening.
const RestMarker = "..."

// Entry is a single element of a Pipeline: either a concrete plugin name
// or the rest marker. Representing the marker as a variant instead of a
// magic string keeps marker detection out of the algorithm proper.
type Entry struct {
	Name string
	Rest bool
}

// Name creates a concrete plugin-name entry
func Name(name string) Entry {
	return Entry{Name: name}
}

// Rest creates a rest-marker entry
func Rest() Entry {
	return Entry{Rest: true}
}

// Pipeline is an ordered list of plugin entries. Order determines the
// order in which the plugins are applied.
type Pipeline []Entry

// ParsePipeline converts a list of raw config strings into a Pipeline,
// recognizing the rest marker. This is the only place the marker string
// is compared.
func ParsePipeline(raw []string) Pipeline {
	pipeline := make(Pipeline, 0, len(raw))
	for _, entry := range raw {
		if entry == RestMarker {
			pipeline = append(pipeline, Rest())
		} else {
			pipeline = append(pipeline, Name(entry))
		}
	}
	return pipeline
}

// HasRest reports whether the pipeline contains a rest marker
func (p Pipeline) HasRest() bool {
	return p.RestIndex() >= 0
}

// RestIndex returns the index of the first rest marker, or -1 if none
func (p Pipeline) RestIndex() int {
	for i, entry := range p {
		if entry.Rest {
			return i
		}
	}
	return -1
}

// CountRest returns the number of rest markers in the pipeline
func (p Pipeline) CountRest() int {
	count := 0
	for _, entry := range p {
		if entry.Rest {
			count++
		}
	}
	return count
}

// Names returns the plugin names of a flattened pipeline. Rest markers
// are skipped; callers that must reject markers check HasRest first.
func (p Pipeline) Names() []string {
	names := make([]string, 0, len(p))
	for _, entry := range p {
		if !entry.Rest {
			names = append(names, entry.Name)
		}
	}
	return names
}

// Strings renders the pipeline back to its config representation,
// including the rest marker
func (p Pipeline) Strings() []string {
	out := make([]string, len(p))
	for i, entry := range p {
		if entry.Rest {
			out[i] = RestMarker
		} else {
			out[i] = entry.Name
		}
	}
	return out
}
