package types

import (
	"testing"
)

func TestBuildDockerImage(t *testing.T) {
	got := BuildDockerImage("paasta_test", "591ae8a7b3224e3b3322370b858377dd6ef335b6")
	want := "services-paasta_test:paasta-591ae8a7b3224e3b3322370b858377dd6ef335b6"
	if got != want {
		t.Errorf("BuildDockerImage() = %v, want %v", got, want)
	}
}

func TestServiceFromDockerImage(t *testing.T) {
	type args struct {
		image string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "with registry",
			args: args{
				image: "registry/services-foo:paasta-abc123",
			},
			want:    "foo",
			wantErr: false,
		}, {
			name: "registry with port",
			args: args{
				image: "docker-paasta.we.com:443/services-example_service:paasta-591ae8a7b3224e3b3322370b858377dd6ef335b6",
			},
			want:    "example_service",
			wantErr: false,
		}, {
			name: "no registry",
			args: args{
				image: "services-foo:paasta-abc123",
			},
			want:    "foo",
			wantErr: false,
		}, {
			name: "not a service image",
			args: args{
				image: "registry/ubuntu:latest",
			},
			want:    "",
			wantErr: true,
		}, {
			name: "empty",
			args: args{
				image: "",
			},
			want:    "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ServiceFromDockerImage(tt.args.image)
			if (err != nil) != tt.wantErr {
				t.Errorf("ServiceFromDockerImage() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ServiceFromDockerImage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestServiceFromDockerImageInvertsBuild(t *testing.T) {
	services := []string{"foo", "example_service", "crm-server"}
	for _, svc := range services {
		image := BuildDockerImage(svc, "abc123")
		got, err := ServiceFromDockerImage(image)
		if err != nil {
			t.Errorf("ServiceFromDockerImage(%v) unexpected error: %v", image, err)
			continue
		}
		if got != svc {
			t.Errorf("ServiceFromDockerImage(%v) = %v, want %v", image, got, svc)
		}
	}
}
