package handlers

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"carelink/services/speech"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxAudioSeconds  = 60
	maxAudioBytes    = 5 * 1024 * 1024
	allowedExtension = ".wav"
)

type waveHeader struct {
	RiffTag       [4]byte
	FileSize      uint32
	WaveTag       [4]byte
	FmtTag        [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataTag       [4]byte
	DataSize      uint32
}

func parseWaveHeader(data []byte) (*waveHeader, error) {
	if len(data) < 44 {
		return nil, errors.New("invalid WAV header length")
	}
	var header waveHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if string(header.RiffTag[:]) != "RIFF" || string(header.WaveTag[:]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE file")
	}
	return &header, nil
}

// validateWave enforces the format the recognizer expects: 16-bit PCM,
// mono, 16 kHz, at most a minute long.
func validateWave(header *waveHeader) error {
	if header.AudioFormat != 1 || header.BitsPerSample != 16 {
		return errors.New("audio must be 16-bit PCM")
	}
	if header.NumChannels != 1 {
		return errors.New("audio must be mono")
	}
	if header.SampleRate != 16000 {
		return fmt.Errorf("sample rate must be 16000Hz, got %d", header.SampleRate)
	}
	if header.ByteRate > 0 && header.DataSize/header.ByteRate > maxAudioSeconds {
		return fmt.Errorf("audio exceeds %d seconds", maxAudioSeconds)
	}
	return nil
}

// SpeechHandler turns spoken symptom descriptions into text for the triage chat.
type SpeechHandler struct {
	Transcriber speech.Transcriber
}

func NewSpeechHandler(t speech.Transcriber) *SpeechHandler {
	return &SpeechHandler{Transcriber: t}
}

// TranscribeHandler accepts a WAV recording and returns its transcript.
func (h *SpeechHandler) TranscribeHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", "en-US")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "audio file is required", err.Error())
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != allowedExtension {
		utils.JSONError(c, http.StatusBadRequest, "invalid file type",
			fmt.Sprintf("expected %s, got %s", allowedExtension, ext))
		return
	}

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read audio file", err.Error())
		return
	}

	wav, err := parseWaveHeader(audio)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid WAV file", err.Error())
		return
	}
	if err := validateWave(wav); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unsupported audio format", err.Error())
		return
	}

	transcript, err := h.Transcriber.Transcribe(c.Request.Context(), audio, language)
	if err != nil {
		getLogger(c).Error("speech recognition failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "speech recognition failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcription": transcript})
}
