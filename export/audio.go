package export

import "fmt"

// AACAudio is the AAC audio exporting codec.
type AACAudio struct{}

func (AACAudio) PrepareExport(string) string {
	return "Preparing audio data for AAC export."
}

func (AACAudio) DoExport(folder string) string {
	return fmt.Sprintf("Exporting audio data in AAC format to %s.", folder)
}

// WAVAudio is the WAV (lossless) audio exporting codec.
type WAVAudio struct{}

func (WAVAudio) PrepareExport(string) string {
	return "Preparing audio data for WAV export."
}

func (WAVAudio) DoExport(folder string) string {
	return fmt.Sprintf("Exporting audio data in WAV format to %s.", folder)
}
