package database

import (
	"testing"
)

func TestSetAndCheckPassword(t *testing.T) {
	user := &User{Email: "user@example.com"}

	if err := user.SetPassword("secret"); err != nil {
		t.Fatal(err)
	}

	if user.PasswordHash == "" {
		t.Fatal("Expected password hash to be set")
	}
	if user.PasswordHash == "secret" {
		t.Error("Password must not be stored in plain text")
	}

	if !user.CheckPassword("secret") {
		t.Error("Correct password should verify")
	}
	if user.CheckPassword("wrong") {
		t.Error("Wrong password should not verify")
	}
}

func TestInterestList(t *testing.T) {
	tests := []struct {
		name      string
		interests string
		want      []string
	}{
		{"default tags", "Technology,Economy", []string{"Technology", "Economy"}},
		{"single tag", "Sports", []string{"Sports"}},
		{"empty", "", []string{}},
		{"whitespace and empties", " Technology , ,Economy ", []string{"Technology", "Economy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{Interests: tt.interests}
			got := user.InterestList()

			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}
