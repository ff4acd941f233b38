// SPDX-License-Identifier: MPL-2.0

package cueutil_test

import (
	"strings"
	"testing"

	"github.com/specbot/specbot/pkg/cueutil"
)

const testSchema = `
#Widget: {
	name:  string & !=""
	count: int & >=0
}
`

type widget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	data := []byte(`{name: "gear", count: 3}`)

	res, err := cueutil.ParseAndDecode[widget]([]byte(testSchema), data, "#Widget")
	if err != nil {
		t.Fatalf("ParseAndDecode: %v", err)
	}
	if res.Value.Name != "gear" || res.Value.Count != 3 {
		t.Errorf("Value = %+v, want gear/3", res.Value)
	}
}

func TestParseAndDecode_ValidationError(t *testing.T) {
	t.Parallel()

	data := []byte(`{name: "gear", count: -1}`)

	_, err := cueutil.ParseAndDecode[widget]([]byte(testSchema), data, "#Widget",
		cueutil.WithFilename("widget.cue"))
	if err == nil {
		t.Fatal("ParseAndDecode: expected error, got nil")
	}
	if !strings.Contains(err.Error(), "widget.cue") {
		t.Errorf("error %q does not name the file", err)
	}
	if !strings.Contains(err.Error(), "count") {
		t.Errorf("error %q does not name the offending field", err)
	}
}

func TestParseAndDecode_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := cueutil.ParseAndDecode[widget]([]byte(testSchema), []byte(`{name:`), "#Widget")
	if err == nil {
		t.Fatal("ParseAndDecode: expected error, got nil")
	}
}

func TestParseAndDecode_SizeCap(t *testing.T) {
	t.Parallel()

	data := []byte(`{name: "gear", count: 3}`)

	_, err := cueutil.ParseAndDecode[widget]([]byte(testSchema), data, "#Widget",
		cueutil.WithMaxFileSize(4))
	if err == nil {
		t.Fatal("ParseAndDecode: expected size error, got nil")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("error %q is not the size cap", err)
	}
}
