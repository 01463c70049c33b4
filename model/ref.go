package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IDRef is an identifier reference as it appears in client payloads. Clients
// historically sent either a bare id string, null, or a wrapped object such
// as {"$oid": "..."}. IDRef accepts all three shapes at the JSON boundary so
// handlers never shape-sniff inline.
type IDRef struct {
	ID string
}

func (r *IDRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		r.ID = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.ID = strings.TrimSpace(s)
		return nil
	}

	var wrapped struct {
		OID string `json:"$oid"`
		ID  string `json:"id"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.OID != "" {
			r.ID = strings.TrimSpace(wrapped.OID)
		} else {
			r.ID = strings.TrimSpace(wrapped.ID)
		}
		return nil
	}

	return fmt.Errorf("invalid id reference: %s", string(data))
}

func (r IDRef) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

func (r IDRef) String() string {
	return r.ID
}
