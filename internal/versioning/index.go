package versioning

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BuildIndex lays out the version picker entries: the stable alias, every
// tag newest first, then the development build. Without tags the newest
// version is the development build.
func BuildIndex(versions []Version) Index {
	idx := Index{
		Versions: make([]string, 0, len(versions)+2),
		Stable:   StableSegment,
		Newest:   DevSegment,
	}
	if newest, err := Newest(versions); err == nil {
		idx.Newest = newest.Tag
		idx.Versions = append(idx.Versions, StableSegment)
	}
	for _, v := range versions {
		idx.Versions = append(idx.Versions, v.Tag)
	}
	idx.Versions = append(idx.Versions, DevSegment)
	return idx
}

// Script renders the shared versions.js asset loaded by every deployed version.
func (idx Index) Script() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("var DOC_VERSIONS = [\n")
	for _, v := range idx.Versions {
		quoted, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "  %s,\n", quoted)
	}
	buf.WriteString("];\n")

	newest, err := json.Marshal(idx.Newest)
	if err != nil {
		return nil, err
	}
	stable, err := json.Marshal(idx.Stable)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "var DOCUMENTER_NEWEST = %s;\n", newest)
	fmt.Fprintf(&buf, "var DOCUMENTER_STABLE = %s;\n", stable)
	return buf.Bytes(), nil
}

// JSON renders the index as indented JSON.
func (idx Index) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
