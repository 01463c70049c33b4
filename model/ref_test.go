package model

import (
	"encoding/json"
	"testing"
)

func TestIDRefUnmarshal(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"bare string":       {input: `"abc123"`, want: "abc123"},
		"null":              {input: `null`, want: ""},
		"empty string":      {input: `""`, want: ""},
		"oid wrapper":       {input: `{"$oid": "abc123"}`, want: "abc123"},
		"id wrapper":        {input: `{"id": "abc123"}`, want: "abc123"},
		"oid wins over id":  {input: `{"$oid": "first", "id": "second"}`, want: "first"},
		"empty object":      {input: `{}`, want: ""},
		"whitespace string": {input: `"  abc123  "`, want: "abc123"},
		"number":            {input: `42`, wantErr: true},
		"array":             {input: `["abc123"]`, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var ref IDRef
			err := json.Unmarshal([]byte(tc.input), &ref)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %s, got %q", tc.input, ref.ID)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ref.ID != tc.want {
				t.Errorf("wanted %q, got %q", tc.want, ref.ID)
			}
		})
	}
}

func TestIDRefMarshal(t *testing.T) {
	tests := map[string]struct {
		ref  IDRef
		want string
	}{
		"with id": {ref: IDRef{ID: "abc123"}, want: `"abc123"`},
		"empty":   {ref: IDRef{}, want: `null`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := json.Marshal(tc.ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("wanted %s, got %s", tc.want, got)
			}
		})
	}
}
