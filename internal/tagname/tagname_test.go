package tagname

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		wantBase string
		wantTags []string
		wantExt  string
	}{
		// Untagged names
		{"myfile.txt", "myfile", nil, ".txt"},
		{"myfile", "myfile", nil, ""},
		{".profile", ".profile", nil, ""},

		// Tagged names
		{"myfile{my-tag}.txt", "myfile", []string{"my-tag"}, ".txt"},
		{"myfile{a}{b}.txt", "myfile", []string{"a", "b"}, ".txt"},
		{"My Title Case File {My-Tag-1}{My-Tag-2}.txt", "My Title Case File ", []string{"My-Tag-1", "My-Tag-2"}, ".txt"},
		{"doc{alpha}{beta}", "doc", []string{"alpha", "beta"}, ""},

		// Multiple dots: only the final suffix is the extension
		{"archive.tar{old}.gz", "archive.tar", []string{"old"}, ".gz"},

		// Malformed blocks stay in the base
		{"data{a b}.txt", "data{a b}", nil, ".txt"},
		{"data{}.txt", "data{}", nil, ".txt"},
		{"data{ok}{a b}.txt", "data{ok}{a b}", nil, ".txt"},
		{"no-close{tag.txt", "no-close{tag", nil, ".txt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			base, tags, ext := Parse(tt.input)
			if base != tt.wantBase {
				t.Errorf("Parse(%q) base = %q, want %q", tt.input, base, tt.wantBase)
			}
			if !reflect.DeepEqual(tags, tt.wantTags) {
				t.Errorf("Parse(%q) tags = %v, want %v", tt.input, tags, tt.wantTags)
			}
			if ext != tt.wantExt {
				t.Errorf("Parse(%q) ext = %q, want %q", tt.input, ext, tt.wantExt)
			}
		})
	}
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		base string
		tags []string
		ext  string
		want string
	}{
		{"myfile", nil, ".txt", "myfile.txt"},
		{"myfile", []string{"a"}, ".txt", "myfile{a}.txt"},
		{"myfile", []string{"b", "a"}, ".txt", "myfile{b}{a}.txt"},
		{"doc", []string{"x"}, "", "doc{x}"},
	}

	for _, tt := range tests {
		got := Serialize(tt.base, tt.tags, tt.ext)
		if got != tt.want {
			t.Errorf("Serialize(%q, %v, %q) = %q, want %q", tt.base, tt.tags, tt.ext, got, tt.want)
		}
	}
}

func TestParseSerializeRoundTrip(t *testing.T) {
	names := []string{
		"myfile.txt",
		"myfile{a}.txt",
		"myfile{a}{b-c}{D2}.txt",
		"archive.tar{old}.gz",
		"doc{alpha}",
	}
	for _, name := range names {
		base, tags, ext := Parse(name)
		if got := Serialize(base, tags, ext); got != name {
			t.Errorf("round trip %q = %q", name, got)
		}
	}
}

func TestValid(t *testing.T) {
	valid := []string{"a", "my-tag", "Tag-2", "0", "ABC-123"}
	invalid := []string{"", "a b", "a,b", "a{b", "a}b", "tag:1", "ü"}

	for _, tag := range valid {
		if !Valid(tag) {
			t.Errorf("Valid(%q) = false, want true", tag)
		}
	}
	for _, tag := range invalid {
		if Valid(tag) {
			t.Errorf("Valid(%q) = true, want false", tag)
		}
	}
}

func TestParseList(t *testing.T) {
	tags, err := ParseList("b,a,c-1")
	if err != nil {
		t.Fatalf("ParseList() error = %v", err)
	}
	if !reflect.DeepEqual(tags, []string{"b", "a", "c-1"}) {
		t.Errorf("ParseList() = %v", tags)
	}

	if _, err := ParseList("ok,not ok"); err == nil {
		t.Error("ParseList(invalid) error = nil, want ErrInvalidTag")
	}
	if _, err := ParseList(""); err == nil {
		t.Error("ParseList(empty) error = nil, want ErrInvalidTag")
	}
}

func TestSet(t *testing.T) {
	s := NewSet("b", "a")
	s.Add("c", "a")
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if !reflect.DeepEqual(s.Sorted(), []string{"a", "b", "c"}) {
		t.Errorf("Sorted() = %v", s.Sorted())
	}

	s.Remove("b", "missing")
	if s.Has("b") {
		t.Error("Has(b) = true after Remove")
	}
	if !s.Has("a") {
		t.Error("Has(a) = false, want true")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", s.Len())
	}
}
