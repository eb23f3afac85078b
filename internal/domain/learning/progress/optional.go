package progress

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes an omitted field from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func SomeString(v string) OptionalString { return OptionalString{Set: true, Value: &v} }

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// OptionalVideos distinguishes an omitted video list from an explicit one.
// An explicit null clears the stored list.
type OptionalVideos struct {
	Set   bool
	Value []Video
}

func SomeVideos(v []Video) OptionalVideos { return OptionalVideos{Set: true, Value: v} }

func (o *OptionalVideos) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}
	var v []Video
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = v
	return nil
}
