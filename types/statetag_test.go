package types

import (
	"testing"
)

func TestEncodeStateTag(t *testing.T) {
	type args struct {
		branch      string
		forceBounce string
		state       DesiredState
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "start",
			args: args{
				branch:      "clusterA.main",
				forceBounce: "20160308T053933",
				state:       StateStart,
			},
			want:    "refs/tags/paasta-clusterA.main-20160308T053933-start",
			wantErr: false,
		}, {
			name: "stop",
			args: args{
				branch:      "clusterB.main",
				forceBounce: "123",
				state:       StateStop,
			},
			want:    "refs/tags/paasta-clusterB.main-123-stop",
			wantErr: false,
		}, {
			name: "empty force bounce",
			args: args{
				branch:      "clusterA.main",
				forceBounce: "",
				state:       StateStart,
			},
			want:    "",
			wantErr: true,
		}, {
			name: "hyphenated force bounce",
			args: args{
				branch:      "clusterA.main",
				forceBounce: "2016-03-08",
				state:       StateStart,
			},
			want:    "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeStateTag(tt.args.branch, tt.args.forceBounce, tt.args.state)
			if (err != nil) != tt.wantErr {
				t.Errorf("EncodeStateTag() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("EncodeStateTag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeStateTag(t *testing.T) {
	type args struct {
		ref    string
		branch string
	}
	tests := []struct {
		name            string
		args            args
		wantState       DesiredState
		wantForceBounce string
		wantOk          bool
	}{
		{
			name: "stop tag",
			args: args{
				ref:    "refs/tags/paasta-clusterB.main-123-stop",
				branch: "clusterB.main",
			},
			wantState:       StateStop,
			wantForceBounce: "123",
			wantOk:          true,
		}, {
			name: "state with hyphens",
			args: args{
				ref:    "refs/tags/paasta-clusterA.main-123-some-state",
				branch: "clusterA.main",
			},
			wantState:       DesiredState("some-state"),
			wantForceBounce: "123",
			wantOk:          true,
		}, {
			name: "empty state",
			args: args{
				ref:    "refs/tags/paasta-clusterA.main-123-",
				branch: "clusterA.main",
			},
			wantState:       DesiredState(""),
			wantForceBounce: "123",
			wantOk:          true,
		}, {
			name: "wrong branch",
			args: args{
				ref:    "refs/tags/paasta-clusterB.main-123-stop",
				branch: "clusterA.main",
			},
			wantOk: false,
		}, {
			name: "no force bounce separator",
			args: args{
				ref:    "refs/tags/paasta-clusterA.main-123",
				branch: "clusterA.main",
			},
			wantOk: false,
		}, {
			name: "empty force bounce",
			args: args{
				ref:    "refs/tags/paasta-clusterA.main--stop",
				branch: "clusterA.main",
			},
			wantOk: false,
		}, {
			name: "not a state tag",
			args: args{
				ref:    "refs/heads/clusterA.main",
				branch: "clusterA.main",
			},
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, forceBounce, ok := DecodeStateTag(tt.args.ref, tt.args.branch)
			if ok != tt.wantOk {
				t.Errorf("DecodeStateTag() ok = %v, wantOk %v", ok, tt.wantOk)
				return
			}
			if !ok {
				return
			}
			if state != tt.wantState {
				t.Errorf("DecodeStateTag() state = %v, want %v", state, tt.wantState)
			}
			if forceBounce != tt.wantForceBounce {
				t.Errorf("DecodeStateTag() forceBounce = %v, want %v", forceBounce, tt.wantForceBounce)
			}
		})
	}
}

func TestStateTagRoundTrip(t *testing.T) {
	branches := []string{"clusterA.main", "cluster-with-hyphens.canary", "b"}
	bounces := []string{"0", "5", "42", "20160308T053933", "deadbeef"}
	states := []DesiredState{StateStart, StateStop, DesiredState("some-state")}

	for _, branch := range branches {
		for _, fb := range bounces {
			for _, state := range states {
				ref, err := EncodeStateTag(branch, fb, state)
				if err != nil {
					t.Fatalf("EncodeStateTag(%v, %v, %v) unexpected error: %v", branch, fb, state, err)
				}
				gotState, gotFb, ok := DecodeStateTag(ref, branch)
				if !ok {
					t.Errorf("DecodeStateTag(%v, %v) did not match its own encoding", ref, branch)
					continue
				}
				if gotState != state || gotFb != fb {
					t.Errorf("round trip of (%v, %v, %v) = (%v, %v)", branch, fb, state, gotState, gotFb)
				}
			}
		}
	}
}
