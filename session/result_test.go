package session

import "testing"

func TestResultStates(t *testing.T) {
	tests := []struct {
		name        string
		result      Result[int]
		wantState   State
		wantLoading bool
		wantValue   int
		wantOK      bool
	}{
		{
			name:      "absent",
			result:    AbsentResult[int](),
			wantState: Absent,
		},
		{
			name:        "loading",
			result:      LoadingResult[int](),
			wantState:   Loading,
			wantLoading: true,
		},
		{
			name:      "present",
			result:    PresentResult(42),
			wantState: Present,
			wantValue: 42,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.State(); got != tt.wantState {
				t.Errorf("State() = %v, want %v", got, tt.wantState)
			}
			if got := tt.result.IsLoading(); got != tt.wantLoading {
				t.Errorf("IsLoading() = %v, want %v", got, tt.wantLoading)
			}
			value, ok := tt.result.Value()
			if ok != tt.wantOK {
				t.Errorf("Value() ok = %v, want %v", ok, tt.wantOK)
			}
			if value != tt.wantValue {
				t.Errorf("Value() = %d, want %d", value, tt.wantValue)
			}
		})
	}
}
