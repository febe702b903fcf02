// Package resolve turns a link into a media record through the external metadata API.
package resolve

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// envelope is the metadata API's response body.
type envelope struct {
	Code int      `json:"code"`
	Msg  string   `json:"msg"`
	Data *payload `json:"data"`
}

type payload struct {
	ID     flexString `json:"id"`
	Title  string     `json:"title"`
	Cover  string     `json:"cover"`
	Play   string     `json:"play"`
	Author *struct {
		Nickname string `json:"nickname"`
		UniqueID string `json:"unique_id"`
	} `json:"author"`
}

// flexString accepts both JSON strings and numbers; the API has returned ids as either.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
