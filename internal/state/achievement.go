package state

import "go.uber.org/zap"

// setAchievementProgress writes the achievement's progress clamped to
// [0, total] and recomputes the completed flag. Progress is never raised
// past its target, unlike challenge progress which is stored verbatim.
func (a *App) setAchievementProgress(id string, progress int) error {
	for i := range a.achievements {
		if a.achievements[i].ID != id {
			continue
		}
		if progress < 0 {
			progress = 0
		}
		if progress > a.achievements[i].Total {
			progress = a.achievements[i].Total
		}
		a.achievements[i].Progress = progress
		a.achievements[i].Completed = progress >= a.achievements[i].Total
		if err := saveDoc(a.kv, keyAchievements, a.achievements); err != nil {
			return err
		}
		a.log.Debug("achievement progress set",
			zap.String("id", id),
			zap.Int("progress", progress),
			zap.Bool("completed", a.achievements[i].Completed))
		return nil
	}
	return nil
}
