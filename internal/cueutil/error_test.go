// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestCheckFileSize(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		max     int64
		wantErr bool
	}{
		{name: "under limit", data: []byte("small"), max: 100, wantErr: false},
		{name: "at limit", data: []byte("12345"), max: 5, wantErr: false},
		{name: "over limit", data: []byte("123456"), max: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFileSize(tt.data, tt.max, "test.cue")
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckFileSize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatErrorNil(t *testing.T) {
	if err := FormatError(nil, "config.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}
}

func TestFormatErrorIncludesPath(t *testing.T) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(`#Config: { ui: { verbose: bool } }`)
	if schema.Err() != nil {
		t.Fatalf("failed to compile schema: %v", schema.Err())
	}

	user := ctx.CompileString(`ui: { verbose: "yes" }`, cue.Filename("config.cue"))
	if user.Err() != nil {
		t.Fatalf("failed to compile user value: %v", user.Err())
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(user)
	err := unified.Validate(cue.Concrete(false))
	if err == nil {
		t.Fatal("expected validation error for bool/string mismatch")
	}

	formatted := FormatError(err, "config.cue")
	if !strings.Contains(formatted.Error(), "config.cue") {
		t.Errorf("formatted error %q does not mention the file path", formatted.Error())
	}
	if !strings.Contains(formatted.Error(), "verbose") {
		t.Errorf("formatted error %q does not mention the offending field", formatted.Error())
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "single field", path: []string{"ui"}, want: "ui"},
		{name: "nested field", path: []string{"ui", "verbose"}, want: "ui.verbose"},
		{name: "array index", path: []string{"includes", "0", "path"}, want: "includes[0].path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
