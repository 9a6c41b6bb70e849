package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/momentum/internal/constants"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	testConnStr := "postgres://momentum@localhost:5432/momentum?sslmode=disable"

	if err := SetConnectionString(testConnStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	retrieved, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if retrieved != testConnStr {
		t.Errorf("GetConnectionString() = %q, want %q", retrieved, testConnStr)
	}
}

func TestSetConnectionStringBlank(t *testing.T) {
	gokeyring.MockInit()

	for _, in := range []string{"", "   "} {
		if err := SetConnectionString(in); err == nil {
			t.Errorf("SetConnectionString(%q) should return an error", in)
		}
	}
}

func TestGetConnectionStringNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteConnectionString()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("postgres://momentum@localhost/momentum"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete, GetConnectionString() error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestResolveConnectionStringPrefersEnv(t *testing.T) {
	gokeyring.MockInit()
	if err := SetConnectionString("postgres://from-keyring@localhost/momentum"); err != nil {
		t.Fatal(err)
	}

	t.Setenv(constants.EnvDBConnection, "postgres://from-env@localhost/momentum")
	got, err := ResolveConnectionString()
	if err != nil {
		t.Fatal(err)
	}
	if got != "postgres://from-env@localhost/momentum" {
		t.Errorf("ResolveConnectionString() = %q, want env value", got)
	}

	t.Setenv(constants.EnvDBConnection, "")
	got, err = ResolveConnectionString()
	if err != nil {
		t.Fatal(err)
	}
	if got != "postgres://from-keyring@localhost/momentum" {
		t.Errorf("ResolveConnectionString() = %q, want keyring value", got)
	}
}

func TestIsAvailableWithMock(t *testing.T) {
	gokeyring.MockInit()
	if !IsAvailable() {
		t.Error("mock keyring should be available")
	}
}
