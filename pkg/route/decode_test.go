// pkg/route/decode_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import "testing"

func TestDecodeHappyPath(t *testing.T) {
	pre, err := Decode("29020KT N0107 A0250 EDDH DHN2 DHN1 EDHF")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if pre.Wind == nil || pre.Wind.Direction.Degrees() != 290 || pre.Wind.Speed.Knots() != 20 {
		t.Errorf("wind = %+v, want 290/20", pre.Wind)
	}
	if pre.TAS == nil || pre.TAS.Knots() != 107 {
		t.Errorf("tas = %+v, want 107kt", pre.TAS)
	}
	if pre.Level == nil || pre.Level.Feet() != 2500 {
		t.Errorf("level = %+v, want 2500ft", pre.Level)
	}
	want := []string{"EDDH", "DHN2", "DHN1", "EDHF"}
	if len(pre.Idents) != len(want) {
		t.Fatalf("idents = %v, want %v", pre.Idents, want)
	}
	for i, id := range want {
		if pre.Idents[i] != id {
			t.Errorf("idents[%d] = %q, want %q", i, pre.Idents[i], id)
		}
	}
}

func TestDecodeFlightLevel(t *testing.T) {
	pre, err := Decode("F350 EDDH EDHF")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if pre.Level == nil || pre.Level.Feet() != 35000 {
		t.Errorf("level = %+v, want FL350", pre.Level)
	}
	if pre.Wind != nil || pre.TAS != nil {
		t.Errorf("wind/tas should be absent, got %+v %+v", pre.Wind, pre.TAS)
	}
}

func TestDecodeOptionalPrefixesAbsent(t *testing.T) {
	pre, err := Decode("EDDH EDHF")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if pre.Wind != nil || pre.TAS != nil || pre.Level != nil {
		t.Errorf("expected no prefix tokens, got %+v", pre)
	}
	if len(pre.Idents) != 2 {
		t.Fatalf("idents = %v", pre.Idents)
	}
}

func TestDecodeCaseInsensitiveKT(t *testing.T) {
	pre, err := Decode("290/20kt EDDH EDHF")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if pre.Wind == nil || pre.Wind.Speed.Knots() != 20 {
		t.Errorf("wind = %+v", pre.Wind)
	}
}

func TestDecodeTooFewFixes(t *testing.T) {
	if _, err := Decode("29020KT EDDH"); err == nil {
		t.Fatal("expected error for a single fix")
	}
}

func TestDecodeDuplicateWind(t *testing.T) {
	if _, err := Decode("29020KT 29020KT EDDH EDHF"); err == nil {
		t.Fatal("expected error for duplicate wind token")
	}
}

func TestDecodeMalformedToken(t *testing.T) {
	_, err := Decode("X EDDH EDHF")
	if err == nil {
		t.Fatal("expected a ParseError")
	}
	var pe *ParseError
	if pe, _ = err.(*ParseError); pe == nil {
		t.Fatalf("err = %v (%T), want *ParseError", err, err)
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Decode("29020KT N0107 A0250 EDDH DHN2 DHN1 EDHF")
	}
}
