package audio

import "testing"

// TestSoundTypeNames verifies names round-trip through ParseSoundType
func TestSoundTypeNames(t *testing.T) {
	for st := SoundPop; st < soundTypeCount; st++ {
		got, err := ParseSoundType(st.String())
		if err != nil || got != st {
			t.Errorf("ParseSoundType(%q) = %v, %v", st.String(), got, err)
		}
	}

	if _, err := ParseSoundType("kazoo"); err == nil {
		t.Error("Expected error for unknown sound")
	}
	if got, err := ParseSoundType(" WIN "); err != nil || got != SoundWin {
		t.Errorf("Expected case-insensitive match, got %v %v", got, err)
	}
	if SoundType(99).String() != "SoundType(99)" {
		t.Errorf("Unexpected name %q", SoundType(99).String())
	}
}
