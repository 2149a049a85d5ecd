package pipeline

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brosephtech/descgen/internal/config"
	"github.com/brosephtech/descgen/internal/logger"
	"github.com/brosephtech/descgen/internal/output"
	"github.com/brosephtech/descgen/internal/transcriber"
	"github.com/brosephtech/descgen/pkg/executor"
)

const fakeSRT = "1\n00:00:00,000 --> 00:00:05,000\nHello\n"

type fakeTranscriber struct {
	calls int
	path  string
	srt   string
	err   error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, videoPath string) (string, error) {
	f.calls++
	f.path = videoPath
	if f.err != nil {
		return "", f.err
	}
	return f.srt, nil
}

// fakeExecutor stands in for ffmpeg: it records the invocation and writes the
// output file named by the last argument so the pipeline has something to
// upload.
type fakeExecutor struct {
	calls [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	out := args[len(args)-1]
	if err := os.WriteFile(out, []byte("wav"), 0644); err != nil {
		return "", err
	}
	return "", nil
}

type fakeDescriber struct {
	calls      int
	transcript string
	text       string
	err        error
}

func (f *fakeDescriber) Describe(ctx context.Context, transcript string) (string, error) {
	f.calls++
	f.transcript = transcript
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func newTestPipeline(cfg *config.Config, ft *fakeTranscriber, fd *fakeDescriber) Pipeline {
	log := logger.New("error")
	return New(cfg, ft, fd, output.New(cfg.Output, log), executor.New(), log)
}

func writeDummyVideo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("not really a video"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	ft := &fakeTranscriber{srt: fakeSRT}
	fd := &fakeDescriber{text: "DESC"}
	p := newTestPipeline(testConfig(), ft, fd)

	videoPath := writeDummyVideo(t)
	outputPath, err := p.Run(context.Background(), videoPath)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := filepath.Join(filepath.Dir(videoPath), "clip_description.txt")
	if outputPath != want {
		t.Errorf("output path = %q, want %q", outputPath, want)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "DESC" {
		t.Errorf("file content = %q, want %q", string(data), "DESC")
	}

	if fd.transcript != fakeSRT {
		t.Errorf("describer received %q, want untrimmed transcript %q", fd.transcript, fakeSRT)
	}
}

func TestRunMissingInput(t *testing.T) {
	ft := &fakeTranscriber{srt: fakeSRT}
	fd := &fakeDescriber{text: "DESC"}
	p := newTestPipeline(testConfig(), ft, fd)

	_, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("error = %v, want ErrInputNotFound", err)
	}

	if ft.calls != 0 {
		t.Errorf("transcriber called %d times, want 0", ft.calls)
	}
	if fd.calls != 0 {
		t.Errorf("describer called %d times, want 0", fd.calls)
	}
}

func TestRunTranscriptionFailureSkipsGeneration(t *testing.T) {
	terr := &transcriber.TranscriptionError{StatusCode: http.StatusBadGateway, Body: "upstream down"}
	ft := &fakeTranscriber{err: terr}
	fd := &fakeDescriber{text: "DESC"}
	p := newTestPipeline(testConfig(), ft, fd)

	_, err := p.Run(context.Background(), writeDummyVideo(t))
	if err == nil {
		t.Fatal("Run() expected error")
	}

	var got *transcriber.TranscriptionError
	if !errors.As(err, &got) {
		t.Fatalf("error = %v, want *TranscriptionError", err)
	}
	if got.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want %d", got.StatusCode, http.StatusBadGateway)
	}

	if fd.calls != 0 {
		t.Errorf("describer called %d times, want 0", fd.calls)
	}
}

func TestRunGenerationFailure(t *testing.T) {
	ft := &fakeTranscriber{srt: fakeSRT}
	fd := &fakeDescriber{err: errors.New("rate limited")}
	p := newTestPipeline(testConfig(), ft, fd)

	videoPath := writeDummyVideo(t)
	if _, err := p.Run(context.Background(), videoPath); err == nil {
		t.Fatal("Run() expected error")
	}

	// No partial output on a failed generation.
	if _, err := os.Stat(filepath.Join(filepath.Dir(videoPath), "clip_description.txt")); !os.IsNotExist(err) {
		t.Error("output file written despite generation failure")
	}
}

func TestRunExtractsAudioWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Transcriber.ExtractAudio = true

	ft := &fakeTranscriber{srt: fakeSRT}
	fd := &fakeDescriber{text: "DESC"}
	fe := &fakeExecutor{}
	log := logger.New("error")
	p := New(cfg, ft, fd, output.New(cfg.Output, log), fe, log)

	videoPath := writeDummyVideo(t)
	if _, err := p.Run(context.Background(), videoPath); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(fe.calls) != 1 || fe.calls[0][0] != "ffmpeg" {
		t.Fatalf("executor calls = %v, want one ffmpeg invocation", fe.calls)
	}

	// The extracted wav is what gets uploaded, not the video.
	wantWav := strings.TrimSuffix(videoPath, ".mp4") + "_temp.wav"
	if ft.path != wantWav {
		t.Errorf("transcriber received %q, want %q", ft.path, wantWav)
	}

	// The temp file is cleaned up after the run.
	if _, err := os.Stat(wantWav); !os.IsNotExist(err) {
		t.Errorf("temp audio file still present after Run: %v", err)
	}
}

func TestRunTrimsLongTranscript(t *testing.T) {
	long := ""
	for len(long) < 200 {
		long += fakeSRT
	}

	cfg := testConfig()
	cfg.Transcript.MaxChars = 50

	ft := &fakeTranscriber{srt: long}
	fd := &fakeDescriber{text: "DESC"}
	p := newTestPipeline(cfg, ft, fd)

	if _, err := p.Run(context.Background(), writeDummyVideo(t)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len([]rune(fd.transcript)) != 50 {
		t.Errorf("describer received %d chars, want 50", len([]rune(fd.transcript)))
	}
	if fd.transcript != long[:50] {
		t.Errorf("describer received %q, want first 50 chars", fd.transcript)
	}
}
