package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/speakwise/analyzer/scoring"
)

type Pipeline struct {
	asr   Transcriber
	store Persister
	log   logrus.FieldLogger
	opts  scoring.Options
	now   func() time.Time
}

// NewPipeline wires the transcriber and an optional store. A nil store means
// reports are never persisted.
func NewPipeline(asr Transcriber, store Persister, log logrus.FieldLogger, opts scoring.Options) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{asr: asr, store: store, log: log, opts: opts, now: time.Now}
}

// Run transcribes audio and scores it. userID is empty for guests.
func (p *Pipeline) Run(ctx context.Context, audio Audio, userID string) (Report, error) {
	if audio.Data == nil {
		return Report{}, ErrMissingAudio
	}
	log := p.log.WithFields(logrus.Fields{"file": audio.Name, "bytes": audio.Size})

	asr, err := p.asr.Transcribe(ctx, audio.Name, audio.Data)
	if err != nil {
		return Report{}, fmt.Errorf("transcribe: %w", err)
	}
	if asr.Empty() {
		log.Warn("transcription returned no result")
		return Report{}, ErrUnintelligible
	}
	return p.Analyze(ctx, asr.Transcript(), toWords(asr), userID)
}

// Analyze scores an existing transcription and persists it for known users.
// A failed save is logged and the report is returned without an ID.
func (p *Pipeline) Analyze(ctx context.Context, transcript string, words []scoring.Word, userID string) (Report, error) {
	if !validTranscript(transcript) {
		return Report{}, ErrInsufficientContent
	}
	log := p.log.WithFields(logrus.Fields{"words": len(words), "user": userID})
	log.WithField("transcript", preview(transcript, 50)).Debug("scoring transcript")

	r := Report{
		UserID:    userID,
		Analysis:  scoring.Analyze(transcript, words, p.opts),
		CreatedAt: p.now().UTC(),
	}

	switch {
	case userID == "":
		log.Info("guest mode: analysis not saved")
	case p.store == nil:
		log.Debug("no store configured: analysis not saved")
	default:
		id, err := p.store.Save(ctx, r)
		if err != nil {
			log.WithError(err).Error("saving report")
			break
		}
		r.ID = id
		log.WithField("report", id).Info("report saved")
	}

	log.WithFields(logrus.Fields{
		"overall": r.OverallScore,
		"wpm":     r.Pace.WordsPerMinute,
	}).Info("analysis complete")
	return r, nil
}
