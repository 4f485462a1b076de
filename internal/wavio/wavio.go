package wavio

import (
	"encoding/binary"
	"fmt"
	"os"

	"subcue/internal/audioqc"
	"subcue/internal/services"
)

// Decode parses a 16-bit PCM WAV byte stream into a waveform with samples
// scaled to [-1, 1]. Compressed or non-16-bit files are rejected; transcoding
// is the caller's problem.
func Decode(data []byte) (audioqc.Waveform, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return audioqc.Waveform{}, services.Wrap(services.ErrFormat, "wavio", "decode", "not a RIFF/WAVE stream", nil)
	}

	var (
		sampleRate int
		channels   int
		haveFormat bool
		pcm        []byte
	)

	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if body+chunkSize > len(data) {
			return audioqc.Waveform{}, services.Wrap(services.ErrFormat, "wavio", "decode",
				fmt.Sprintf("chunk %q of %d bytes overruns the stream", chunkID, chunkSize), nil)
		}
		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return audioqc.Waveform{}, services.Wrap(services.ErrFormat, "wavio", "decode", "fmt chunk too short", nil)
			}
			audioFormat := binary.LittleEndian.Uint16(data[body : body+2])
			if audioFormat != 1 {
				return audioqc.Waveform{}, services.Wrap(services.ErrFormat, "wavio", "decode",
					fmt.Sprintf("unsupported audio format %d, need PCM", audioFormat), nil)
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bits := binary.LittleEndian.Uint16(data[body+14 : body+16])
			if bits != 16 {
				return audioqc.Waveform{}, services.Wrap(services.ErrFormat, "wavio", "decode",
					fmt.Sprintf("unsupported bit depth %d, need 16", bits), nil)
			}
			haveFormat = true
		case "data":
			pcm = data[body : body+chunkSize]
		}
		// Chunks are word-aligned; odd sizes carry a pad byte.
		offset = body + chunkSize + chunkSize%2
	}

	if !haveFormat {
		return audioqc.Waveform{}, services.Wrap(services.ErrFormat, "wavio", "decode", "missing fmt chunk", nil)
	}
	if pcm == nil {
		return audioqc.Waveform{}, services.Wrap(services.ErrFormat, "wavio", "decode", "missing data chunk", nil)
	}
	if channels < 1 || sampleRate < 1 {
		return audioqc.Waveform{}, services.Wrap(services.ErrFormat, "wavio", "decode",
			fmt.Sprintf("invalid format: %d channels at %d Hz", channels, sampleRate), nil)
	}

	samples := make([]float64, len(pcm)/2)
	for i := range samples {
		raw := int16(binary.LittleEndian.Uint16(pcm[i*2 : i*2+2]))
		samples[i] = float64(raw) / 32768.0
	}
	return audioqc.Waveform{Samples: samples, SampleRate: sampleRate, Channels: channels}, nil
}

// DecodeFile reads and decodes a WAV file, rejecting files over the given
// size ceiling (in megabytes) before touching their contents.
func DecodeFile(path string, maxMegabytes int) (audioqc.Waveform, error) {
	info, err := os.Stat(path)
	if err != nil {
		return audioqc.Waveform{}, services.Wrap(services.ErrInput, "wavio", "decode file",
			fmt.Sprintf("stat %s", path), err)
	}
	if maxMegabytes > 0 && info.Size() > int64(maxMegabytes)*1024*1024 {
		return audioqc.Waveform{}, services.Wrap(services.ErrInput, "wavio", "decode file",
			fmt.Sprintf("%s is %d bytes, over the %dMB ceiling", path, info.Size(), maxMegabytes), nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return audioqc.Waveform{}, services.Wrap(services.ErrInput, "wavio", "decode file",
			fmt.Sprintf("read %s", path), err)
	}
	return Decode(data)
}
