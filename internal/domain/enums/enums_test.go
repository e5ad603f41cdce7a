package enums_test

import (
	"reflect"
	"testing"

	"ytprompt/internal/domain/enums"
)

func TestDownloadTypeOptions(t *testing.T) {
	t.Parallel()

	want := []string{"video(s) with audio", "video(s) without audio", "audio(s) only"}
	if got := enums.DownloadTypeOptions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}

	for _, label := range want {
		dlType, ok := enums.LookupDownloadType(label)
		if !ok {
			t.Fatalf("expected %q to be a known download type", label)
		}
		if dlType.String() != label {
			t.Fatalf("expected round trip of %q, got %q", label, dlType.String())
		}
	}

	if _, ok := enums.LookupDownloadType("Audio(s) Only"); ok {
		t.Fatalf("expected label lookup to be exact")
	}
}

func TestDownloadTypeIsVideo(t *testing.T) {
	t.Parallel()

	if !enums.VideoWithAudio.IsVideo() || !enums.VideoOnly.IsVideo() {
		t.Fatalf("expected video types to report IsVideo")
	}
	if enums.Audio.IsVideo() {
		t.Fatalf("expected audio not to report IsVideo")
	}
}

func TestDownloadQualityOptions(t *testing.T) {
	t.Parallel()

	want := []string{"360p", "480p", "720p", "1024p", "2048p"}
	if got := enums.DownloadQualityOptions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}

	heights := []string{"360", "480", "720", "1024", "2048"}
	for i, label := range want {
		q, ok := enums.LookupDownloadQuality(label)
		if !ok {
			t.Fatalf("expected %q to be a known quality", label)
		}
		if q.String() != label {
			t.Fatalf("expected round trip of %q, got %q", label, q.String())
		}
		if q.Height() != heights[i] {
			t.Fatalf("expected height %q for %q, got %q", heights[i], label, q.Height())
		}
	}

	if _, ok := enums.LookupDownloadQuality("1080p"); ok {
		t.Fatalf("expected 1080p not to be offered")
	}
}
