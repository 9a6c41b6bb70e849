package sqlstore

import "testing"

func TestDollarRebind(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SELECT 1", "SELECT 1"},
		{"SELECT * FROM habits WHERE id = ?", "SELECT * FROM habits WHERE id = $1"},
		{
			"SELECT 1 FROM completions WHERE habit_id = ? AND day >= ? AND day <= ?",
			"SELECT 1 FROM completions WHERE habit_id = $1 AND day >= $2 AND day <= $3",
		},
	}
	for _, tt := range tests {
		if got := DollarRebind(tt.in); got != tt.want {
			t.Errorf("DollarRebind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuestionRebindIsIdentity(t *testing.T) {
	q := "INSERT INTO badges (id) VALUES (?)"
	if got := QuestionRebind(q); got != q {
		t.Errorf("QuestionRebind changed the query: %q", got)
	}
}
