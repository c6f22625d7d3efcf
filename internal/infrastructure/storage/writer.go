package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `TVRP` // 4 байта
	// FormatVersion - версия бинарного формата реплея.
	FormatVersion uint32 = 1
	Extension            = ".tvrp"
)

// ReplayFileHeader - точное представление заголовка файла.
// Только массивы и числа, поэтому binary.Write пишет его целиком.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	Width       int32   // 4 байта
	Height      int32   // 4 байта
	ActionCount int32   // 4 байта
}

// ActionHeader - заголовок каждой записи действия.
type ActionHeader struct {
	Turn       int32  // 4
	ActionType uint8  // 1
	Reserved   uint8  // 1
	PayloadLen uint16 // 2
}

// ReplayService сохраняет и читает журналы партий в каталоге SaveDir.
type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Log.WithError(err).WithField("dir", dir).Warn("failed to create replay dir")
	}
	return &ReplayService{SaveDir: dir}
}

// Save пишет журнал в новый файл и возвращает его путь.
func (s *ReplayService) Save(sessionID string, session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%s_%d%s", session.Seed, sessionID, session.Timestamp, Extension)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeBinary(bw, session); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay_storage",
		"path":      path,
		"actions":   len(session.Actions),
	}).Info("Replay saved")
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	header := ReplayFileHeader{
		Version:     FormatVersion,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		Width:       int32(s.Width),
		Height:      int32(s.Height),
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, act := range s.Actions {
		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("action %d: payload too long: %d", i, payloadLen)
		}

		actHeader := ActionHeader{
			Turn:       int32(act.Turn),
			ActionType: uint8(act.Action),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
