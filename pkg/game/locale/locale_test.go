package locale

import "testing"

func TestGet(t *testing.T) {
	if err := Load(""); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	tests := []struct {
		key  string
		want string
	}{
		{"QUEST_VICTORY", "Thou art victorious!"},
		{"PLAYER_DIED", "Alas, thou hast perished."},
		{"QUEST_REWARD", "Thy reward: %d gold."},
		{"NO_SUCH_KEY", "NO_SUCH_KEY"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Get(tt.key); got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestGetf(t *testing.T) {
	tests := []struct {
		key  string
		args []interface{}
		want string
	}{
		{"QUEST_REWARD", []interface{}{75}, "Thy reward: 75 gold."},
		{"LOOT_ITEM", []interface{}{"a key"}, "Thou findest a key."},
	}
	for _, tt := range tests {
		if got := Getf(tt.key, tt.args...); got != tt.want {
			t.Errorf("Getf(%q, %v) = %q, want %q", tt.key, tt.args, got, tt.want)
		}
	}
}

func TestLoad_UnknownLanguage(t *testing.T) {
	if err := Load("xx"); err == nil {
		t.Error("Load(xx) succeeded")
	}
}
