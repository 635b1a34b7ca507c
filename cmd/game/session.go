package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/younwookim/mglib/internal/application/input"
	"github.com/younwookim/mglib/internal/application/replay"
)

var errRecordAndReplay = errors.New("-record and -replay cannot be used together")

// inputSession picks where input comes from for a run: the devices, the
// devices while recording them, or a recorded replay.
type inputSession struct {
	poller     input.Poller
	recorder   *replay.Recorder
	replayer   *replay.Replayer
	recordPath string
	logger     *zap.Logger
}

func newInputSession(device input.Poller, recordPath, replayPath string, logger *zap.Logger) (*inputSession, error) {
	s := &inputSession{
		poller:     device,
		recordPath: recordPath,
		logger:     logger,
	}

	switch {
	case recordPath != "" && replayPath != "":
		return nil, errRecordAndReplay
	case replayPath != "":
		data, err := replay.LoadReplay(replayPath)
		if err != nil {
			return nil, err
		}
		s.replayer = replay.NewReplayer(*data)
		s.poller = s.replayer
		logger.Info("replaying input",
			zap.String("file", replayPath),
			zap.String("id", data.ID),
			zap.Int("frames", len(data.Frames)),
		)
	case recordPath != "":
		s.recorder = replay.NewRecorder(device)
		s.poller = s.recorder
		logger.Info("recording input",
			zap.String("file", recordPath),
			zap.String("id", s.recorder.Data().ID),
		)
	}
	return s, nil
}

// Poller returns the poller the engine should read.
func (s *inputSession) Poller() input.Poller {
	return s.poller
}

// Finish saves the recording, if any.
func (s *inputSession) Finish() error {
	if s.recorder == nil {
		return nil
	}
	s.recorder.Stop()
	if err := s.recorder.Save(s.recordPath); err != nil {
		return err
	}
	s.logger.Info("recording saved",
		zap.String("file", s.recordPath),
		zap.Int("frames", s.recorder.FrameCount()),
	)
	return nil
}
