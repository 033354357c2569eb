package manager

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GroupSize is the number of records folded into one compressed record.
const GroupSize = 10

// GameStats holds the games finished in this session. Old records are
// compressed in groups so the history stays small; nothing is persisted.
type GameStats struct {
	Games     []GameRecord
	groupSize int
	mutex     sync.RWMutex
}

// GameRecord is a single game (CompressionIndex 0) or a group of games.
type GameRecord struct {
	ID               string    `json:"id"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MedianScore      float64   `json:"medianScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

func NewGameStats(groupSize int) *GameStats {
	if groupSize < 2 {
		groupSize = GroupSize
	}
	return &GameStats{
		Games:     make([]GameRecord, 0),
		groupSize: groupSize,
	}
}

// AddGame records a finished game and returns its record.
func (s *GameStats) AddGame(score int, startTime, endTime time.Time) GameRecord {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	seconds := endTime.Sub(startTime).Seconds()
	game := GameRecord{
		ID:               uuid.New().String(),
		StartTime:        startTime,
		EndTime:          endTime,
		Score:            score,
		CompressionIndex: 0,
		GamesCount:       1,
		AverageScore:     float64(score),
		MedianScore:      float64(score),
		MaxScore:         score,
		MinScore:         score,
		AverageDuration:  seconds,
		MaxDuration:      seconds,
		MinDuration:      seconds,
	}
	s.Games = append(s.Games, game)

	s.groupGames()
	return game
}

// groupGames folds every full group of same-level records into one record
// of the next level.
func (s *GameStats) groupGames() {
	sort.Slice(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex > s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for level := 0; ; level++ {
		records := make([]GameRecord, 0)
		for _, game := range s.Games {
			if game.CompressionIndex == level {
				records = append(records, game)
			}
		}

		if len(records) < s.groupSize {
			break
		}

		var newRecords []GameRecord
		for i := 0; i < len(records); i += s.groupSize {
			end := i + s.groupSize
			if end > len(records) {
				newRecords = append(newRecords, records[i:]...)
				break
			}
			newRecords = append(newRecords, mergeRecords(records[i:end], level+1))
		}

		remaining := make([]GameRecord, 0, len(s.Games))
		for _, game := range s.Games {
			if game.CompressionIndex != level {
				remaining = append(remaining, game)
			}
		}
		s.Games = append(remaining, newRecords...)
	}

	sort.SliceStable(s.Games, func(i, j int) bool {
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})
}

func mergeRecords(group []GameRecord, level int) GameRecord {
	var totalScore, totalDuration float64
	allScores := make([]float64, 0)
	merged := GameRecord{
		ID:               uuid.New().String(),
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	for _, g := range group {
		merged.MaxScore = max(merged.MaxScore, g.MaxScore)
		merged.MinScore = min(merged.MinScore, g.MinScore)
		merged.MaxDuration = max(merged.MaxDuration, g.MaxDuration)
		merged.MinDuration = min(merged.MinDuration, g.MinDuration)
		if g.StartTime.Before(merged.StartTime) {
			merged.StartTime = g.StartTime
		}
		if g.EndTime.After(merged.EndTime) {
			merged.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		merged.GamesCount += g.GamesCount
		for i := 0; i < g.GamesCount; i++ {
			allScores = append(allScores, g.MedianScore)
		}
	}

	merged.AverageScore = totalScore / float64(merged.GamesCount)
	merged.AverageDuration = totalDuration / float64(merged.GamesCount)
	merged.MedianScore = median(allScores)
	merged.Score = merged.MaxScore
	return merged
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}

// GetStats returns a copy of the records, oldest first.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

// GetAverageScore returns the mean score over all games.
func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var totalScore float64
	var totalGames int
	for _, game := range s.Games {
		totalScore += game.AverageScore * float64(game.GamesCount)
		totalGames += game.GamesCount
	}
	if totalGames == 0 {
		return 0
	}
	return totalScore / float64(totalGames)
}

// GetMedianScore returns the median, weighting compressed records by their
// game count.
func (s *GameStats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	allScores := make([]float64, 0)
	for _, game := range s.Games {
		for i := 0; i < game.GamesCount; i++ {
			allScores = append(allScores, game.MedianScore)
		}
	}
	return median(allScores)
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, game := range s.Games {
		maxScore = max(maxScore, game.MaxScore)
	}
	return maxScore
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, game := range s.Games {
		total += game.GamesCount
	}
	return total
}

// GetAverageDuration returns the mean game length in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var totalDuration float64
	var totalGames int
	for _, game := range s.Games {
		totalDuration += game.AverageDuration * float64(game.GamesCount)
		totalGames += game.GamesCount
	}
	if totalGames == 0 {
		return 0
	}
	return totalDuration / float64(totalGames)
}
