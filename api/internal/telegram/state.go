package telegram

import "sync"

var thresholds sync.Map // chatID -> float64 (°C)

func (r *Router) threshold(chatID int64) float64 {
	if v, ok := thresholds.Load(chatID); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return r.HotThresholdC
}

func setThreshold(chatID int64, c float64) { thresholds.Store(chatID, c) }
func resetThreshold(chatID int64)          { thresholds.Delete(chatID) }
