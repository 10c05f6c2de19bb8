package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var got sample
	if err := Unmarshal([]byte("name: demo\ncount: 3\n"), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Name != "demo" || got.Count != 3 {
		t.Errorf("Unmarshal() = %+v, want {demo 3}", got)
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	var got sample
	if err := Unmarshal([]byte("name: demo\nextra: true\n"), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Name != "demo" {
		t.Errorf("Name = %q, want %q", got.Name, "demo")
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var got sample
	if err := UnmarshalStrict([]byte("name: demo\nextra: true\n"), &got); err == nil {
		t.Error("UnmarshalStrict() error = nil, want unknown field error")
	}
}

func TestUnmarshalValidation(t *testing.T) {
	t.Parallel()

	var got sample

	if err := Unmarshal(nil, &got); !errors.Is(err, ErrNilData) {
		t.Errorf("Unmarshal(nil) error = %v, want %v", err, ErrNilData)
	}
	if err := Unmarshal([]byte{}, &got); !errors.Is(err, ErrNilData) {
		t.Errorf("Unmarshal(empty) error = %v, want %v", err, ErrNilData)
	}
	if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("Unmarshal(_, nil) error = %v, want %v", err, ErrNilDestination)
	}

	big := bytes.Repeat([]byte("a"), MaxInputSize+1)
	if err := Unmarshal(big, &got); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Unmarshal(oversized) error = %v, want %v", err, ErrInputTooLarge)
	}
}

func TestUnmarshalInvalidYAML(t *testing.T) {
	t.Parallel()

	var got sample
	if err := Unmarshal([]byte("name: [unclosed"), &got); err == nil {
		t.Error("Unmarshal() error = nil, want parse error")
	}
}
