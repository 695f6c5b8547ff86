package util

import "testing"

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"demo@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"", false},
		{"no-at-sign.example.com", false},
		{"missing@tld", false},
		{"@example.com", false},
	}
	for _, tc := range cases {
		if got := ValidateEmail(tc.email); got != tc.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	if !ValidateName("A") {
		t.Error("single character name should be valid")
	}
	if ValidateName("") {
		t.Error("empty name should be invalid")
	}
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	if ValidateName(string(long)) {
		t.Error("51 character name should be invalid")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Passw0rd", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
	}
	for _, tc := range cases {
		if got := ValidatePassword(tc.password); got != tc.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}
