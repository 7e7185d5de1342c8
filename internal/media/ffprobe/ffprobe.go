package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index         int    `json:"index"`
	CodecName     string `json:"codec_name"`
	CodecType     string `json:"codec_type"`
	Duration      string `json:"duration"`
	BitRate       string `json:"bit_rate"`
	SampleRate    string `json:"sample_rate"`
	Channels      int    `json:"channels"`
	BitsPerSample int    `json:"bits_per_sample"`
	BitsPerRaw    string `json:"bits_per_raw_sample"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// AudioProperties are the fixed technical fields stored on a library record.
// Zero values stand in for anything the probe could not determine.
type AudioProperties struct {
	Length     float64 // seconds
	Bitrate    int64   // bits per second
	Format     string
	SampleRate int64
	BitDepth   int64
	Channels   int64
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// AudioProperties condenses the probe result into the fields a record
// stores, using the first audio stream and falling back to container-level
// values for duration and bitrate.
func (r Result) AudioProperties() AudioProperties {
	props := AudioProperties{
		Length:  positiveFloat(parseFloat(r.Format.Duration)),
		Bitrate: positiveInt(parseFloat(r.Format.BitRate)),
		Format:  primaryFormatName(r.Format.FormatName),
	}

	for _, stream := range r.Streams {
		if !strings.EqualFold(stream.CodecType, "audio") {
			continue
		}
		props.SampleRate = positiveInt(parseFloat(stream.SampleRate))
		props.Channels = int64(stream.Channels)
		props.BitDepth = int64(stream.BitsPerSample)
		if props.BitDepth == 0 {
			props.BitDepth = positiveInt(parseFloat(stream.BitsPerRaw))
		}
		if props.Length == 0 {
			props.Length = positiveFloat(parseFloat(stream.Duration))
		}
		if props.Bitrate == 0 {
			props.Bitrate = positiveInt(parseFloat(stream.BitRate))
		}
		break
	}
	return props
}

// primaryFormatName trims ffprobe's comma-separated demuxer aliases down to
// the leading name ("mov,mp4,m4a,..." becomes "mov").
func primaryFormatName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ','); i >= 0 {
		name = name[:i]
	}
	return name
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}

func positiveFloat(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	return value
}

func positiveInt(value float64) int64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	return int64(value)
}
