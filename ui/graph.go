package ui

import (
	"fmt"

	"portfolio-arcade/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	barWidth   = float32(4) // Standard width for all bars
	barSpacing = float32(6) // Space between score and duration bars
	barAlpha   = uint8(180)
)

func (r *Renderer) drawStatsGraph(stats *manager.GameStats, fontSize int32) {
	g := r.layout.Graph
	rl.DrawRectangleRec(g, rl.DarkGray)

	if stats == nil || stats.GetGamesPlayed() == 0 {
		rl.DrawText("Session stats appear after the first game", int32(g.X)+8, int32(g.Y)+8, fontSize, rl.LightGray)
		return
	}

	summary := fmt.Sprintf("Games: %d   Avg: %.1f   Median: %.1f   Max: %d   Avg Duration: %.1fs",
		stats.GetGamesPlayed(), stats.GetAverageScore(), stats.GetMedianScore(),
		stats.GetMaxScore(), stats.GetAverageDuration())
	rl.DrawText(summary, int32(g.X)+8, int32(g.Y)+6, fontSize, rl.White)

	records := stats.GetStats()

	// Find max values for scaling
	maxScore := 1
	maxDuration := 1.0
	for _, rec := range records {
		maxScore = max(maxScore, rec.MaxScore, rec.Score)
		maxDuration = max(maxDuration, rec.MaxDuration, rec.EndTime.Sub(rec.StartTime).Seconds())
	}

	plotTop := g.Y + float32(fontSize) + 14
	plotHeight := g.Y + g.Height - plotTop - 4
	bottom := plotTop + plotHeight
	scaleY := plotHeight / float32(maxScore)
	durationScaleY := plotHeight / float32(maxDuration)

	pointSpacing := float32(0)
	if len(records) > 1 {
		pointSpacing = (g.Width - 2*barSpacing) / float32(len(records)-1)
	}
	currentX := g.X + barSpacing

	scoreColor := rl.Color{R: 0, G: barAlpha, B: 0, A: barAlpha}
	durationColor := rl.Color{R: barAlpha, G: 0, B: barAlpha, A: barAlpha}

	point := func(rec manager.GameRecord) (scoreY, durationY float32) {
		if rec.CompressionIndex == 0 {
			seconds := float32(rec.EndTime.Sub(rec.StartTime).Seconds())
			return bottom - float32(rec.Score)*scaleY, bottom - seconds*durationScaleY
		}
		return bottom - float32(rec.AverageScore)*scaleY, bottom - float32(rec.AverageDuration)*durationScaleY
	}

	for i, rec := range records {
		scoreX := currentX - barSpacing/2
		durationX := currentX + barSpacing/2
		scoreY, durationY := point(rec)

		if rec.CompressionIndex == 0 {
			drawBar(scoreX, scoreY, bottom-scoreY, scoreColor)
			drawBar(durationX, durationY, bottom-durationY, durationColor)
		} else {
			// min-max range with an average marker
			minScoreY := bottom - float32(rec.MinScore)*scaleY
			maxScoreY := bottom - float32(rec.MaxScore)*scaleY
			drawBar(scoreX, maxScoreY, minScoreY-maxScoreY, scoreColor)
			drawBar(scoreX, scoreY, 2, rl.Green)

			minDurationY := bottom - float32(rec.MinDuration)*durationScaleY
			maxDurationY := bottom - float32(rec.MaxDuration)*durationScaleY
			drawBar(durationX, maxDurationY, minDurationY-maxDurationY, durationColor)
			drawBar(durationX, durationY, 2, rl.Purple)
		}

		if i < len(records)-1 {
			nextX := currentX + pointSpacing
			nextScoreY, nextDurationY := point(records[i+1])
			rl.DrawLine(int32(scoreX), int32(scoreY), int32(nextX-barSpacing/2), int32(nextScoreY), rl.Green)
			rl.DrawLine(int32(durationX), int32(durationY), int32(nextX+barSpacing/2), int32(nextDurationY), rl.Purple)
		}
		currentX += pointSpacing
	}
}

func drawBar(x, top, height float32, color rl.Color) {
	rl.DrawRectangle(int32(x-barWidth/2), int32(top), int32(barWidth), int32(max(height, 1)), color)
}
