package clock

import (
	"testing"
	"time"

	"github.com/julianstephens/momentum/internal/models"
)

func TestFixedToday(t *testing.T) {
	c := Fixed{Day: time.Date(2024, 5, 6, 23, 59, 0, 0, time.UTC)}
	got := c.Today()
	if got.Hour() != 0 || got.Day() != 6 {
		t.Errorf("Today() = %v, want midnight on the 6th", got)
	}
	if c.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", c.Location())
	}
}

func TestFixedNowUsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Pacific/Honolulu")
	if err != nil {
		t.Fatal(err)
	}
	c := Fixed{Day: time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), Loc: loc}
	now := c.Now()
	if now.Location() != loc {
		t.Errorf("Now().Location() = %v, want %v", now.Location(), loc)
	}
	if y, m, d := now.Date(); y != 2024 || m != time.March || d != 13 || now.Hour() != 12 {
		t.Errorf("Now() = %v, want noon on 2024-03-13 in Honolulu", now)
	}
}

func TestFromSettings(t *testing.T) {
	if _, err := FromSettings(models.Settings{Timezone: "Local"}); err != nil {
		t.Fatalf("FromSettings(Local) error = %v", err)
	}
	if _, err := FromSettings(models.Settings{Timezone: "Nowhere/Land"}); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestSystemTodayIsCivil(t *testing.T) {
	got := System{Loc: time.UTC}.Today()
	if got.Location() != time.UTC || got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("Today() = %v, want UTC midnight", got)
	}
}

func TestMustParsePanicsOnGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("not-a-date")
}
