package domain

import "encoding/json"

// Tag is one entry in a Zotero item's tag list, matching the wire shape.
// Type 0 (manual) is omitted on the wire, as Zotero itself does.
type Tag struct {
	Tag  string `json:"tag"`
	Type int    `json:"type,omitempty"`
}

// Item is a Zotero item as returned by the Web API: the envelope key and
// version plus the editable data payload.
type Item struct {
	Key     string   `json:"key"`
	Version int      `json:"version"`
	Data    ItemData `json:"data"`
}

// ItemData is the editable portion of an item. Only the tag list is modeled;
// every other field is carried opaquely in Fields so that a read-modify-write
// round-trips bytes this tool does not understand.
type ItemData struct {
	Key     string
	Version int
	Tags    []Tag
	Fields  map[string]json.RawMessage
}

// Title returns the item's title field, or "Untitled" when the item has none
// (notes and attachments carry no title).
func (d ItemData) Title() string {
	raw, ok := d.Fields["title"]
	if !ok {
		return "Untitled"
	}
	var title string
	if err := json.Unmarshal(raw, &title); err != nil || title == "" {
		return "Untitled"
	}
	return title
}

// HasTag reports whether the tag list contains name. Comparison is
// case-sensitive, matching Zotero's treatment of distinct tags.
func (d ItemData) HasTag(name string) bool {
	for _, t := range d.Tags {
		if t.Tag == name {
			return true
		}
	}
	return false
}

// AddTag appends a manual tag with the given name. The caller is expected to
// check HasTag first; AddTag does not deduplicate.
func (d *ItemData) AddTag(name string) {
	d.Tags = append(d.Tags, Tag{Tag: name})
}

// UnmarshalJSON splits the payload into the modeled fields and the opaque
// remainder.
func (d *ItemData) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	if raw, ok := fields["key"]; ok {
		if err := json.Unmarshal(raw, &d.Key); err != nil {
			return err
		}
		delete(fields, "key")
	}
	if raw, ok := fields["version"]; ok {
		if err := json.Unmarshal(raw, &d.Version); err != nil {
			return err
		}
		delete(fields, "version")
	}
	if raw, ok := fields["tags"]; ok {
		if err := json.Unmarshal(raw, &d.Tags); err != nil {
			return err
		}
		delete(fields, "tags")
	}

	d.Fields = fields
	return nil
}

// MarshalJSON reassembles the full payload, unmodeled fields included.
func (d ItemData) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(d.Fields)+3)
	for k, v := range d.Fields {
		fields[k] = v
	}

	key, err := json.Marshal(d.Key)
	if err != nil {
		return nil, err
	}
	fields["key"] = key

	version, err := json.Marshal(d.Version)
	if err != nil {
		return nil, err
	}
	fields["version"] = version

	tags := d.Tags
	if tags == nil {
		tags = []Tag{}
	}
	rawTags, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	fields["tags"] = rawTags

	return json.Marshal(fields)
}
