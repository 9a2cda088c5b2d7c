package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat decodes a coordinate submitted either as a JSON number or as a
// numeric string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = FlexFloat(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("models: not a number: %q", s)
		}
		*f = FlexFloat(v)
		return nil
	}
	return fmt.Errorf("models: not a number: %s", string(data))
}

// VideoList decodes the video field of a request, which may arrive as a
// single URL or as a list of URLs. Both forms normalize to the same list.
type VideoList []string

func (v *VideoList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*v = []string{}
		} else {
			*v = []string{single}
		}
		return nil
	}
	return fmt.Errorf("models: video must be a URL or a list of URLs")
}

// FlexID decodes a record id submitted either as a string or, in legacy
// clients, as a bare number.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = FlexID(n.String())
		return nil
	}
	return fmt.Errorf("models: invalid id: %s", string(data))
}

// CreateLocationRequest is the Create payload. Lat and Lng are required;
// everything else is optional.
type CreateLocationRequest struct {
	Lat         *FlexFloat `json:"lat"`
	Lng         *FlexFloat `json:"lng"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Video       VideoList  `json:"video"`
	Audio       string     `json:"audio"`
}

// UpdateLocationRequest is the Update payload: an id plus any subset of the
// mutable fields. Pointer fields distinguish "omitted" from "set to empty",
// giving merge semantics rather than replace semantics.
type UpdateLocationRequest struct {
	ID          FlexID     `json:"id"`
	Lat         *FlexFloat `json:"lat"`
	Lng         *FlexFloat `json:"lng"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Video       *VideoList `json:"video"`
	Audio       *string    `json:"audio"`
}
