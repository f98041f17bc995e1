package processor

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

type call struct {
	name string
	args []string
}

// fakeExecutor records calls and writes whisper's text output when asked.
type fakeExecutor struct {
	calls      []call
	transcript string
	failOn     string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	if name == f.failOn {
		return "", errors.New(name + " failed")
	}
	for i, a := range args {
		if a == "--output-file" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".txt", []byte(f.transcript), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func argValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func TestWhisperTranscribe(t *testing.T) {
	cfg := testConfig(t)
	cfg.Whisper.Prompt = "Genesis, Exodus"
	exec := &fakeExecutor{transcript: " Good morning church.\n Turn to Romans.\n\n"}
	tr := NewWhisperTranscriber(cfg, exec, quietLogger())

	got, err := tr.Transcribe(context.Background(), "/media/sunday.mp4")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if want := "Good morning church. Turn to Romans."; got != want {
		t.Errorf("Transcribe() = %q, want %q", got, want)
	}

	if len(exec.calls) != 2 {
		t.Fatalf("executor calls = %d, want 2", len(exec.calls))
	}

	ffmpeg := exec.calls[0]
	if ffmpeg.name != "ffmpeg" || argValue(ffmpeg.args, "-i") != "/media/sunday.mp4" || argValue(ffmpeg.args, "-ar") != "16000" {
		t.Errorf("ffmpeg call = %+v", ffmpeg)
	}

	whisper := exec.calls[1]
	if whisper.name != "whisper-cli" {
		t.Errorf("whisper binary = %q", whisper.name)
	}
	if argValue(whisper.args, "-m") != "model.bin" || argValue(whisper.args, "-l") != "en" || argValue(whisper.args, "-t") != "8" {
		t.Errorf("whisper args = %v", whisper.args)
	}
	if argValue(whisper.args, "--prompt") != "Genesis, Exodus" {
		t.Errorf("whisper prompt missing: %v", whisper.args)
	}
	if argValue(whisper.args, "-f") != ffmpeg.args[len(ffmpeg.args)-1] {
		t.Errorf("whisper input %q is not the extracted audio", argValue(whisper.args, "-f"))
	}

	entries, err := os.ReadDir(cfg.Paths.Temp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("temp dir not cleaned: %d entries left", len(entries))
	}
}

func TestWhisperTranscribeErrors(t *testing.T) {
	tests := []struct {
		name    string
		failOn  string
		wantMsg string
	}{
		{"ffmpeg fails", "ffmpeg", "ffmpeg extract audio"},
		{"whisper fails", "whisper-cli", "whisper transcribe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			exec := &fakeExecutor{failOn: tt.failOn}
			tr := NewWhisperTranscriber(cfg, exec, quietLogger())

			_, err := tr.Transcribe(context.Background(), "a.mp4")
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Transcribe() error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestJoinSegments(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"\n\n", ""},
		{"one", "one"},
		{" one.\n two. \r\nthree", "one. two. three"},
	}
	for _, tt := range tests {
		if got := joinSegments(tt.in); got != tt.want {
			t.Errorf("joinSegments(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
