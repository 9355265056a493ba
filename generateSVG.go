package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// GenerateSVG renders a single frame of ds for the attribute at index.
func GenerateSVG(ds *Dataset, cfg Config, index int) (string, error) {
	session, err := newMapSession(ds, cfg, index)
	if err != nil {
		return "", err
	}
	if index != session.state.Index() {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(session.state.Attributes))
	}
	start := time.Now()
	out := session.scene.Render()
	log.Debugf("Rendered '%s' in %s", session.state.Attribute(), time.Since(start))
	return out, nil
}

// renderOverlayFrames renders the marker overlay of every attribute in order,
// driving the sync engine forward from the first period.
func renderOverlayFrames(session *mapSession) ([]string, error) {
	attributes := session.state.Attributes
	if err := session.controls.Slide(0); err != nil {
		return nil, err
	}
	frames := make([]string, 0, len(attributes))
	for i := range attributes {
		if i > 0 {
			if _, err := session.controls.Forward(); err != nil {
				return nil, fmt.Errorf("advance to '%s': %w", attributes[i], err)
			}
		}
		frames = append(frames, session.scene.RenderOverlay())
	}
	return frames, nil
}
