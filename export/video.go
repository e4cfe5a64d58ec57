package export

import "fmt"

// LosslessVideo is the lossless video exporting codec.
type LosslessVideo struct{}

func (LosslessVideo) PrepareExport(string) string {
	return "Preparing video data for lossless export."
}

func (LosslessVideo) DoExport(folder string) string {
	return fmt.Sprintf("Exporting video data in lossless format to %s.", folder)
}

// H264BPVideo is the H.264 video exporting codec with Baseline profile.
type H264BPVideo struct{}

func (H264BPVideo) PrepareExport(string) string {
	return "Preparing video data for H.264 (Baseline) export."
}

func (H264BPVideo) DoExport(folder string) string {
	return fmt.Sprintf("Exporting video data in H.264 (Baseline) format to %s.", folder)
}

// H264Hi422PVideo is the H.264 video exporting codec with Hi422P profile
// (10-bit, 4:2:2 chroma sampling).
type H264Hi422PVideo struct{}

func (H264Hi422PVideo) PrepareExport(string) string {
	return "Preparing video data for H.264 (Hi422P) export."
}

func (H264Hi422PVideo) DoExport(folder string) string {
	return fmt.Sprintf("Exporting video data in H.264 (Hi422P) format to %s.", folder)
}
