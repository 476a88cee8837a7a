package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Component", KeyComponent, "picker", Component("picker")},
		{"Event", KeyEvent, "blur", Event("blur")},
		{"Frame", KeyFrame, "2019-07-25", Frame("2019-07-25")},
		{"Date", KeyDate, "2019-07-18", Date("2019-07-18")},
		{"Text", KeyText, "31-12-2019", Text("31-12-2019")},
		{"Lang", KeyLang, "FR", Lang("FR")},
		{"Pattern", KeyPattern, "DD-MM-YYYY", Pattern("DD-MM-YYYY")},
		{"Path", KeyPath, "/tmp/x.yaml", Path("/tmp/x.yaml")},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}
	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}
