package view

import (
	"github.com/sirupsen/logrus"

	"stonecrawl/pkg/game/locale"
	"stonecrawl/pkg/logger"
)

func (v *View) screenshot() error {
	if v.hooks.Screenshot == nil {
		return nil
	}
	path, err := v.hooks.Screenshot(v.Frame())
	if err != nil {
		logger.Log.WithError(err).Warn("screenshot failed")
		return err
	}
	v.session.AddMessage(locale.Getf("SCREENSHOT_SAVED", path))
	v.dirty = true
	logger.Log.WithFields(logrus.Fields{"path": path}).Info("screenshot saved")
	return nil
}

func (v *View) mapDump() error {
	if v.hooks.MapDump == nil || !v.session.InQuest() {
		return nil
	}
	path, err := v.hooks.MapDump(v.session)
	if err != nil {
		logger.Log.WithError(err).Warn("map dump failed")
		return err
	}
	logger.Log.WithFields(logrus.Fields{"path": path}).Info("map dumped")
	return nil
}
