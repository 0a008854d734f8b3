package sound

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gordonklaus/portaudio"
)

// Audio output configuration.
const (
	sampleRate      = 44100
	framesPerBuffer = 1024
)

// ID names one discrete sound effect the game hardware can trigger.
type ID int

const (
	UFO ID = iota
	Shot
	PlayerDie
	InvaderDie
	Fleet1
	Fleet2
	Fleet3
	Fleet4
	UFOHit
	Count // number of sound ids
)

// One WAV file per ID, looked up under the bank's directory. UFO Hit reuses
// the UFO sound.
var soundFiles = [Count]string{
	UFO:        "ufo_highpitch.wav",
	Shot:       "shoot.wav",
	PlayerDie:  "explosion.wav",
	InvaderDie: "invaderkilled.wav",
	Fleet1:     "fleet_1.wav",
	Fleet2:     "fleet_2.wav",
	Fleet3:     "fleet_3.wav",
	Fleet4:     "fleet_4.wav",
	UFOHit:     "ufo_highpitch.wav",
}

// voice is one in-flight playback of a decoded sample buffer.
type voice struct {
	samples []float32
	pos     int
}

// Bank owns the decoded sample buffers and a single PortAudio output stream
// whose callback mixes whatever voices are currently playing.
type Bank struct {
	samples [Count][]float32
	stream  *portaudio.Stream

	mu     sync.Mutex
	voices []*voice
}

// NewBank loads the sound files from dir and starts the output stream.
// A sound file that is missing or won't decode is a warning: its trigger
// plays silence. A failure to open the audio device is an error.
func NewBank(dir string) (*Bank, error) {
	bank := &Bank{}

	for id := ID(0); id < Count; id++ {
		path := filepath.Join(dir, soundFiles[id])
		samples, err := loadWav(path)
		if err != nil {
			log.Printf("Warning: failed to load sound effect %s: %v", path, err)
			continue
		}
		bank.samples[id] = samples
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, framesPerBuffer, bank.callback)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("portaudio open stream: %w", err)
	}
	bank.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("portaudio start stream: %w", err)
	}

	return bank, nil
}

// Play starts one playback of the given sound. Non-blocking; the mixer
// callback consumes the voice. Unloaded sounds are silently skipped.
func (b *Bank) Play(id ID) {
	if id < 0 || id >= Count || b.samples[id] == nil {
		return
	}
	b.mu.Lock()
	b.voices = append(b.voices, &voice{samples: b.samples[id]})
	b.mu.Unlock()
}

// Shutdown stops the stream and tears down PortAudio.
func (b *Bank) Shutdown() {
	if b.stream != nil {
		b.stream.Stop()
		b.stream.Close()
		b.stream = nil
	}
	portaudio.Terminate()
}

// callback fills one output buffer with the sum of the active voices,
// clamped to [-1, 1]. Finished voices are dropped in place.
func (b *Bank) callback(out []float32) {
	for i := range out {
		out[i] = 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	live := b.voices[:0]
	for _, v := range b.voices {
		n := len(v.samples) - v.pos
		if n > len(out) {
			n = len(out)
		}
		for i := 0; i < n; i++ {
			out[i] += v.samples[v.pos+i]
		}
		v.pos += n
		if v.pos < len(v.samples) {
			live = append(live, v)
		}
	}
	b.voices = live

	for i, s := range out {
		if s > 1 {
			out[i] = 1
		} else if s < -1 {
			out[i] = -1
		}
	}
}

// loadWav decodes a WAV file into mono float32 samples at the output rate.
func loadWav(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return monoFloat(buf)
}

// monoFloat folds a decoded PCM buffer down to mono float32 at the output
// sample rate.
func monoFloat(buf *audio.IntBuffer) ([]float32, error) {
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("decode: missing format")
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float32(int(1) << (bitDepth - 1))

	// Fold the channels down to mono.
	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	mono := make([]float32, frames)
	for i := 0; i < frames; i++ {
		sum := float32(0)
		for ch := 0; ch < channels; ch++ {
			sum += float32(buf.Data[i*channels+ch]) / scale
		}
		mono[i] = sum / float32(channels)
	}

	if buf.Format.SampleRate == sampleRate || buf.Format.SampleRate == 0 {
		return mono, nil
	}
	return resample(mono, buf.Format.SampleRate, sampleRate), nil
}

// resample converts between sample rates by linear interpolation. Good
// enough for short arcade effects.
func resample(in []float32, from, to int) []float32 {
	if len(in) == 0 {
		return in
	}
	n := int(float64(len(in)) * float64(to) / float64(from))
	out := make([]float32, n)
	step := float64(from) / float64(to)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= len(in)-1 {
			out[i] = in[len(in)-1]
			continue
		}
		frac := float32(pos - float64(j))
		out[i] = in[j]*(1-frac) + in[j+1]*frac
	}
	return out
}
