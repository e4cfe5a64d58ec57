// Package export provides video and audio exporting codecs behind a
// quality-keyed registry. Codecs are interchangeable variants; picking a
// quality tier picks one video and one audio codec together.
package export

import "github.com/kilianp07/plugkit/core/registry"

// Quality tier keys.
const (
	QualityLow    = "low"
	QualityHigh   = "high"
	QualityMaster = "master"
)

// VideoExporter prepares and exports video data using one codec.
type VideoExporter interface {
	PrepareExport(videoData string) string
	DoExport(folder string) string
}

// AudioExporter prepares and exports audio data using one codec.
type AudioExporter interface {
	PrepareExport(audioData string) string
	DoExport(folder string) string
}

// Exporter pairs the video and audio codecs of one quality tier.
type Exporter struct {
	Video VideoExporter
	Audio AudioExporter
}

// NewRegistry returns a registry with the builtin quality tiers bound:
// low favours speed, high favours quality, master is lossless.
func NewRegistry() *registry.Registry[Exporter] {
	r := registry.New[Exporter]()
	r.MustRegister(QualityLow, func(map[string]any) (Exporter, error) {
		return Exporter{Video: H264BPVideo{}, Audio: AACAudio{}}, nil
	})
	r.MustRegister(QualityHigh, func(map[string]any) (Exporter, error) {
		return Exporter{Video: H264Hi422PVideo{}, Audio: AACAudio{}}, nil
	})
	r.MustRegister(QualityMaster, func(map[string]any) (Exporter, error) {
		return Exporter{Video: LosslessVideo{}, Audio: WAVAudio{}}, nil
	})
	return r
}
